package remote

import (
	"fmt"
	"strings"
	"time"
)

// Format renders an event in the text log format: one header line followed by
// an indented "- label: value" line per non-empty detail.
func Format(evt LogEvent) []string {
	ts := evt.Timestamp
	if parsed := evt.ParsedTime(); !parsed.IsZero() {
		ts = parsed.In(time.Local).Format(timestampLayout)
	}
	level := strings.ToUpper(strings.TrimSpace(evt.Level))
	if level == "" {
		level = "INFO"
	}
	parts := []string{ts, level}
	if component := strings.TrimSpace(evt.Component); component != "" {
		parts = append(parts, fmt.Sprintf("[%s]", component))
	}
	header := strings.Join(parts, " ")
	if subject := composeSubject(evt.ItemID, evt.Stage); subject != "" {
		header += " " + subject
	}
	if message := strings.TrimSpace(evt.Message); message != "" {
		header += " – " + message
	}

	lines := []string{header}
	for _, detail := range evt.Details {
		label := strings.TrimSpace(detail.Label)
		value := strings.TrimSpace(detail.Value)
		if label == "" || value == "" {
			continue
		}
		lines = append(lines, "    - "+label+": "+value)
	}
	return lines
}

// FormatAll renders events in order.
func FormatAll(events []LogEvent) []string {
	if len(events) == 0 {
		return nil
	}
	lines := make([]string, 0, len(events))
	for _, evt := range events {
		lines = append(lines, Format(evt)...)
	}
	return lines
}

func composeSubject(itemID int64, stage string) string {
	stage = strings.TrimSpace(stage)
	switch {
	case itemID > 0 && stage != "":
		return fmt.Sprintf("Item #%d (%s)", itemID, stage)
	case itemID > 0:
		return fmt.Sprintf("Item #%d", itemID)
	default:
		return stage
	}
}
