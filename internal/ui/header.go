package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// renderHeader renders the top bar: source, buffer fill and realized window.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	source := snap.Source
	if source == "" {
		source = m.source
	}
	parts := []string{
		bg.Render("logdeck", styles.Logo),
		bg.Render(truncateMiddle(source, max(20, m.width/3)), styles.MutedText),
	}

	switch {
	case snap.IsOffline():
		parts = append(parts,
			bg.Render(classifyError(snap.LastError), styles.DangerText)+bg.Space()+
				bg.Render("Retrying...", styles.WarningText.Bold(true)))
	case snap.HasStatus && snap.Status.Running:
		parts = append(parts, bg.Render(fmt.Sprintf("daemon pid %d", snap.Status.PID), styles.SuccessText))
	case snap.HasStatus:
		parts = append(parts, bg.Render("daemon stopped", styles.WarningText))
	}

	buf := m.log.buf
	parts = append(parts,
		bg.Render(fmt.Sprintf("%d/%d lines", buf.Len(), buf.Limit()), styles.Text))
	if first, last := m.log.panel.Window(); first >= 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("rows %d-%d", first+1, last+1), styles.FaintText))
	}
	if ts := m.formatTimestamp(); ts != "" {
		parts = append(parts, bg.Render(ts, styles.FaintText))
	}

	content := bg.Join(parts, "  ")
	return styles.Header.Render(bg.FillLine(content, max(0, m.width-2)))
}

// renderStatus renders the bottom bar: follow and search state, source
// errors and key hints.
func (m Model) renderStatus() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	v := m.log
	width := max(0, m.width-2)

	if v.searching {
		return styles.Header.Render(bg.FillLine(v.input.View(), width))
	}

	var left string
	switch {
	case v.query != "" && len(v.matches) > 0:
		left = bg.Render("/"+truncate(v.query, 30), styles.AccentText) +
			bg.Render(" - ", styles.FaintText) +
			bg.Render(fmt.Sprintf("%d/%d", v.matchIdx+1, len(v.matches)), styles.WarningText) +
			bg.Render(" - Press ", styles.FaintText) +
			bg.Render("n", styles.AccentText) +
			bg.Render(" for next, ", styles.FaintText) +
			bg.Render("N", styles.AccentText) +
			bg.Render(" for previous, ", styles.FaintText) +
			bg.Render("Esc", styles.AccentText) +
			bg.Render(" to clear", styles.FaintText)
	case v.query != "":
		left = bg.Render("Pattern not found: "+truncate(v.query, 30), styles.DangerText)
	default:
		left = m.statusParts(styles, bg)
	}

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(hints)
	if gap < 2 {
		return styles.Header.Render(bg.FillLine(left, width))
	}
	return styles.Header.Render(left + bg.Spaces(gap) + hints)
}

func (m Model) statusParts(styles Styles, bg BgStyle) string {
	v := m.log
	follow := "off"
	if v.follow {
		follow = "on"
	}
	parts := []string{bg.Render("follow "+follow, styles.FaintText)}

	if pan := int(v.scroll.Offset().X); pan > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("col +%d", pan), styles.MutedText))
	}
	if n := m.snapshot.Truncations; n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("restarted %dx", n), styles.WarningText))
	}
	if err := m.snapshot.LastError; err != nil {
		parts = append(parts, bg.Render(truncate(err.Error(), 60), styles.DangerText))
	}
	if v.err != nil {
		parts = append(parts, bg.Render(truncate(v.err.Error(), 40), styles.DangerText))
	}
	parts = append(parts, bg.Render("T:"+m.theme.Name, styles.FaintText))

	sep := bg.Space() + bg.Render("•", styles.FaintText) + bg.Space()
	return strings.Join(parts, sep)
}

func (m Model) formatTimestamp() string {
	updated := m.snapshot.LastUpdated
	if updated.IsZero() {
		return ""
	}
	since := time.Since(updated)
	ts := updated.Format("15:04:05")
	switch {
	case since < time.Minute:
		return ts + " (now)"
	case since < time.Hour:
		return ts + fmt.Sprintf(" (%dm ago)", int(since.Minutes()))
	default:
		return ts
	}
}

// classifyError returns a short label for a source error.
func classifyError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "permission denied"):
		return "NO ACCESS"
	default:
		return "ERROR"
	}
}
