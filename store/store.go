// Package store persists chat history for the gateway.
package store

import (
	"context"

	"github.com/nimbus-kallosoft/nimbus-studio-kallossoft-co/domain"
)

// Store defines the interface for chat history persistence.
type Store interface {
	CreateMessage(ctx context.Context, message *domain.ChatMessage) error
	GetMessages(ctx context.Context, userID string, limit int, before string) ([]domain.ChatMessage, error)
	Close() error
}
