package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gravitylab/internal/physics"
)

var (
	canvasStyle  = lipgloss.NewStyle().Padding(1, 2)
	statsStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("#1e293b")).Padding(1, 2).Width(panelWidth)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")).Bold(true)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")).Bold(true)
	forceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1f5f9")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")).Bold(true)
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#38bdf8"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569")).MarginTop(1)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))

	earthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60a5fa")).Bold(true)
	moonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399")).Bold(true)
	speedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true)

	recordingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")).Blink(true)
)

// StatusChip renders the orbit status in its fixed colour.
func StatusChip(s physics.Status) string {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(s.Color())).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.Color())).
		Render(s.String())
}

// StabilityBar renders a 0-100 stability index as a filled bar.
func StabilityBar(stability float64, width int) string {
	filled := int(stability / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	st := physics.Decaying
	switch {
	case stability > 85:
		st = physics.Stable
	case stability > 40:
		st = physics.Escaping
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(st.Color())).Render(bar)
}

// RangeBar shows where v sits between lo and hi.
func RangeBar(v, lo, hi float64, width int) string {
	ratio := 0.0
	if hi > lo {
		ratio = (v - lo) / (hi - lo)
	}
	if ratio > 1 {
		ratio = 1
	} else if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// Thousands formats n with comma separators.
func Thousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := []byte{}
	digits := 0
	for {
		if digits > 0 && digits%3 == 0 {
			s = append(s, ',')
		}
		s = append(s, byte('0'+n%10))
		digits++
		n /= 10
		if n == 0 {
			break
		}
	}
	if neg {
		s = append(s, '-')
	}
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}
