// Package policy evaluates dispatch requests against a rego policy before
// they are forwarded to the Nimbus backend.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.dispatch_policy.decision"),
		rego.Module("dispatch_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Input describes a dispatch about to be forwarded.
type Input struct {
	UserID string `json:"user_id"`
	Agent  string `json:"agent"`
	Task   string `json:"task"`
}

// Evaluate checks the dispatch policy. Returns "allow" or "block". The
// policy is expected to define a default; an empty result set falls back to
// allow.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return "allow", nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return "allow", nil
}

// DefaultPolicy is the default dispatch policy: everything is allowed except
// tasks carrying obviously destructive shell fragments.
const DefaultPolicy = `
package dispatch_policy

default decision = "allow"

decision = "block" {
	contains(input.task, "rm -rf /")
}

decision = "block" {
	contains(input.task, "DROP TABLE")
}
`
