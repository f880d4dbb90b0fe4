package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhaseDisplayRenderProgress(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.RenderProgress("Settling")

	output := buf.String()
	assert.Contains(t, output, SymbolProgress)
	assert.Contains(t, output, "Settling...")
	assert.True(t, strings.HasSuffix(output, "\n"))
	assert.NotContains(t, output, "\r", "headless output never rewrites lines")
}

func TestPhaseDisplayRenderReached(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.RenderReached("Growing circle", 2*time.Second)

	output := buf.String()
	assert.Contains(t, output, SymbolComplete)
	assert.Contains(t, output, "Growing circle")
	assert.Contains(t, output, "+2.0s")
}

func TestPhaseDisplayRenderSuccess(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.RenderSuccess("Run complete", 4*time.Second)

	output := buf.String()
	assert.Contains(t, output, SymbolSuccess)
	assert.Contains(t, output, "(4.0s)")
}

func TestPhaseDisplayRenderSkipped(t *testing.T) {
	tests := []struct {
		name     string
		reason   string
		expected string
	}{
		{"with reason", "at Staggered list", "(at Staggered list)"},
		{"no reason", "", "Run stopped"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPhaseDisplay(&buf).RenderSkipped("Run stopped", tt.reason)

			output := buf.String()
			assert.Contains(t, output, SymbolSkipped)
			assert.Contains(t, output, tt.expected)
		})
	}
}

func TestPhaseDisplaySubStatusAndDivider(t *testing.T) {
	var buf bytes.Buffer
	pd := NewPhaseDisplay(&buf)

	pd.RenderSubStatus(SymbolPending, "run 1234")
	pd.Divider()

	output := buf.String()
	assert.Contains(t, output, "  "+SymbolPending)
	assert.Contains(t, output, "run 1234")
	assert.Contains(t, output, strings.Repeat("━", DividerWidth))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{50 * time.Millisecond, "0.05s"},
		{300 * time.Millisecond, "0.3s"},
		{1250 * time.Millisecond, "1.2s"},
		{4 * time.Second, "4.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestFormatPhase(t *testing.T) {
	assert.Contains(t, FormatPhase(SymbolComplete, ColorSuccess, "Title", ""), "Title")
	assert.Contains(t, FormatPhase(SymbolComplete, ColorSuccess, "Title", "+0.0s"), "+0.0s")
}
