package domain

import (
	"fmt"
	"math"
)

// taskPreviewLimit caps the length of a stale task preview on the dashboard.
const taskPreviewLimit = 80

// DashboardAgent is one agent record as the Nimbus dashboard endpoint
// reports it.
type DashboardAgent struct {
	Agent          string           `json:"agent"`
	Status         string           `json:"status"`
	CostToday      *float64         `json:"cost_today,omitempty"`
	ActiveDispatch *DispatchPreview `json:"active_dispatch,omitempty"`
	LastDispatch   *DispatchPreview `json:"last_dispatch,omitempty"`
}

// DispatchPreview summarizes a dispatch on the dashboard.
type DispatchPreview struct {
	TaskPreview string   `json:"task_preview"`
	NumTurns    *int     `json:"num_turns,omitempty"`
	DurationMs  *float64 `json:"duration_ms,omitempty"`
}

// DashboardResponse is the raw Nimbus dashboard payload.
type DashboardResponse struct {
	Agents         []DashboardAgent `json:"agents"`
	TotalCostToday *float64         `json:"total_cost_today,omitempty"`
	ActiveCount    *int             `json:"active_count,omitempty"`
}

// DashboardView is the reshaped payload served to the UI.
type DashboardView struct {
	Agents         []AgentInfo `json:"agents"`
	TotalCostToday *float64    `json:"total_cost_today,omitempty"`
	ActiveCount    *int        `json:"active_count,omitempty"`
	Error          string      `json:"error,omitempty"`
}

// ReshapeDashboard converts the backend dashboard payload into AgentInfo
// records. Unrecognized status values become "offline". An agent with an
// active dispatch shows that task preview unmodified; otherwise the last
// dispatch preview is shown truncated to taskPreviewLimit runes.
func ReshapeDashboard(raw DashboardResponse) DashboardView {
	agents := make([]AgentInfo, 0, len(raw.Agents))
	for _, a := range raw.Agents {
		info := AgentInfo{
			Name:   a.Agent,
			Emoji:  EmojiFor(a.Agent),
			Status: normalizeStatus(a.Status),
			Cost:   a.CostToday,
		}
		switch {
		case a.ActiveDispatch != nil:
			info.Task = a.ActiveDispatch.TaskPreview
		case a.LastDispatch != nil:
			info.Task = truncate(a.LastDispatch.TaskPreview, taskPreviewLimit)
		}
		if a.LastDispatch != nil {
			info.Turns = a.LastDispatch.NumTurns
			if a.LastDispatch.DurationMs != nil {
				info.Duration = formatDuration(*a.LastDispatch.DurationMs)
			}
		}
		agents = append(agents, info)
	}

	return DashboardView{
		Agents:         agents,
		TotalCostToday: raw.TotalCostToday,
		ActiveCount:    raw.ActiveCount,
	}
}

func normalizeStatus(status string) string {
	switch status {
	case "active", "idle":
		return status
	default:
		return "offline"
	}
}

// formatDuration renders milliseconds as rounded whole seconds, e.g. 4500 -> "5s".
func formatDuration(ms float64) string {
	return fmt.Sprintf("%ds", int(math.Round(ms/1000)))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
