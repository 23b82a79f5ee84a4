// Package domain defines the request/response shapes exchanged with the
// Nimbus backend and the UI-facing records derived from them.
package domain

import "time"

// ChatMessage is a persisted chat history entry.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DispatchRequest is the body sent to the Nimbus dispatch endpoint.
type DispatchRequest struct {
	Agent     string `json:"agent"`
	Task      string `json:"task"`
	AsyncMode bool   `json:"async_mode"`
}

// DispatchResult is the raw result of a dispatch. Output is an unstructured
// agent transcript mixing control markers and reply text.
type DispatchResult struct {
	Output string  `json:"output"`
	Agent  string  `json:"agent"`
	Status string  `json:"status"`
	Cost   float64 `json:"cost"`
}

// PresenceData reports backend presence. Status is one of "online",
// "dispatching" or "offline"; an unreachable backend is reported as offline.
type PresenceData struct {
	Status string      `json:"status"`
	Agents []AgentInfo `json:"agents,omitempty"`
}

// CostSummary aggregates spend per agent.
type CostSummary struct {
	Total   float64            `json:"total"`
	ByAgent map[string]float64 `json:"by_agent"`
}

// AgentInfo is the UI-facing record for one agent on the dashboard.
type AgentInfo struct {
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	Status   string   `json:"status"`
	Task     string   `json:"task,omitempty"`
	Cost     *float64 `json:"cost,omitempty"`
	Turns    *int     `json:"turns,omitempty"`
	Duration string   `json:"duration,omitempty"`
}

// agentEmojis maps known agent names to their dashboard glyph.
var agentEmojis = map[string]string{
	"frontend":       "💻",
	"database":       "🗄️",
	"infrastructure": "🚀",
	"testing":        "🧪",
	"orchestrator":   "🎯",
	"api":            "⚡",
	"ui-designer":    "🎨",
	"cleanup-qa":     "✨",
}

// defaultEmoji is used for agent names without a dedicated glyph.
const defaultEmoji = "🤖"

// EmojiFor returns the dashboard glyph for an agent name.
func EmojiFor(name string) string {
	if e, ok := agentEmojis[name]; ok {
		return e
	}
	return defaultEmoji
}
