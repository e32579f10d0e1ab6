package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRiskBandColorBoundaries(t *testing.T) {
	cases := []struct {
		Score int
		Color lipgloss.Color
	}{
		{0, bandLow},
		{24, bandLow},
		{25, bandMedium},
		{44, bandMedium},
		{45, bandHigh},
		{69, bandHigh},
		{70, bandCritical},
		{100, bandCritical},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.Color, RiskBandColor(tc.Score), "score %d", tc.Score)
	}
}

func TestRenderRiskMeterProportions(t *testing.T) {
	s := NewStyles(DarkTheme())

	empty := s.RenderRiskMeter(0, 10)
	full := s.RenderRiskMeter(100, 10)
	half := s.RenderRiskMeter(50, 10)

	assert.Equal(t, 0, strings.Count(empty, "█"))
	assert.Equal(t, 10, strings.Count(full, "█"))
	assert.Equal(t, 5, strings.Count(half, "█"))
	assert.Contains(t, half, "50/100")
}

func TestRenderRiskMeterClampsOutOfRangeScores(t *testing.T) {
	s := NewStyles(DarkTheme())

	negative := s.RenderRiskMeter(-20, 10)
	assert.Equal(t, 0, strings.Count(negative, "█"))
	assert.Equal(t, 10, strings.Count(negative, "░"))

	over := s.RenderRiskMeter(250, 10)
	assert.Equal(t, 10, strings.Count(over, "█"))
}
