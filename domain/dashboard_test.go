package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestReshapeDashboardActiveDispatch(t *testing.T) {
	raw := DashboardResponse{
		Agents: []DashboardAgent{
			{
				Agent:          "frontend",
				Status:         "active",
				CostToday:      floatPtr(1.25),
				ActiveDispatch: &DispatchPreview{TaskPreview: "build the settings page"},
			},
		},
	}

	view := ReshapeDashboard(raw)
	assert.Len(t, view.Agents, 1)
	got := view.Agents[0]
	assert.Equal(t, "frontend", got.Name)
	assert.Equal(t, "💻", got.Emoji)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "build the settings page", got.Task)
	assert.Equal(t, 1.25, *got.Cost)
}

func TestReshapeDashboardLastDispatchTruncated(t *testing.T) {
	long := strings.Repeat("x", 120)
	raw := DashboardResponse{
		Agents: []DashboardAgent{
			{
				Agent:        "database",
				Status:       "idle",
				LastDispatch: &DispatchPreview{TaskPreview: long, NumTurns: intPtr(7)},
			},
		},
	}

	view := ReshapeDashboard(raw)
	got := view.Agents[0]
	assert.Equal(t, 80, len([]rune(got.Task)))
	assert.Equal(t, strings.Repeat("x", 80), got.Task)
	assert.Equal(t, 7, *got.Turns)
	assert.Empty(t, got.Duration)
}

func TestReshapeDashboardUnknownStatusAndName(t *testing.T) {
	raw := DashboardResponse{
		Agents: []DashboardAgent{
			{Agent: "mystery", Status: "rebooting"},
		},
	}

	view := ReshapeDashboard(raw)
	got := view.Agents[0]
	assert.Equal(t, "offline", got.Status)
	assert.Equal(t, "🤖", got.Emoji)
	assert.Empty(t, got.Task)
	assert.Nil(t, got.Cost)
}

func TestFormatDurationRoundsHalfUp(t *testing.T) {
	assert.Equal(t, "5s", formatDuration(4500))
	assert.Equal(t, "4s", formatDuration(4499))
	assert.Equal(t, "0s", formatDuration(120))
}

func TestReshapeDashboardPassesTotalsThrough(t *testing.T) {
	raw := DashboardResponse{
		TotalCostToday: floatPtr(3.5),
		ActiveCount:    intPtr(2),
	}

	view := ReshapeDashboard(raw)
	assert.Equal(t, 3.5, *view.TotalCostToday)
	assert.Equal(t, 2, *view.ActiveCount)
	assert.NotNil(t, view.Agents)
	assert.Len(t, view.Agents, 0)
}
