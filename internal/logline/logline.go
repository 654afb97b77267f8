package logline

import (
	"regexp"
	"strings"
)

// Kind classifies a raw log line.
type Kind int

const (
	// KindEntry is a log record header, or any non-blank line that does not
	// look like a detail continuation.
	KindEntry Kind = iota
	// KindDetail is an indented "- label: value" continuation line.
	KindDetail
	// KindBlank is an empty or whitespace-only line.
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindEntry:
		return "entry"
	case KindDetail:
		return "detail"
	case KindBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// Separator splits the header of an entry from its message.
const Separator = "–"

// Entry is one parsed log line.
type Entry struct {
	Kind      Kind
	Timestamp string
	Level     string
	Component string
	Subject   string
	Message   string

	// Detail lines only.
	Label string
	Value string

	// Raw is the line exactly as read.
	Raw string
}

var (
	headerRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})\s+([A-Za-z]+)\b\s*(.*)$`)
	detailRe = regexp.MustCompile(`^\s+-\s+(.*)$`)
)

// Parse classifies raw and splits it into fields. It never fails: lines that
// match no known shape become entries with the whole text as message.
func Parse(raw string) Entry {
	e := Entry{Raw: raw}
	if strings.TrimSpace(raw) == "" {
		e.Kind = KindBlank
		return e
	}

	if m := detailRe.FindStringSubmatch(raw); m != nil {
		e.Kind = KindDetail
		body := strings.TrimSpace(m[1])
		if label, value, ok := strings.Cut(body, ":"); ok {
			e.Label = strings.TrimSpace(label)
			e.Value = strings.TrimSpace(value)
		} else {
			e.Value = body
		}
		return e
	}

	e.Kind = KindEntry
	m := headerRe.FindStringSubmatch(raw)
	if m == nil {
		e.Message = strings.TrimSpace(raw)
		return e
	}
	e.Timestamp = m[1]
	e.Level = strings.ToUpper(m[2])

	rest := m[3]
	if strings.HasPrefix(rest, "[") {
		if end := strings.Index(rest, "]"); end > 0 {
			e.Component = rest[1:end]
			rest = strings.TrimSpace(rest[end+1:])
		}
	}
	if subject, message, ok := strings.Cut(rest, Separator); ok {
		e.Subject = strings.TrimSpace(subject)
		e.Message = strings.TrimSpace(message)
	} else {
		e.Message = strings.TrimSpace(rest)
	}
	return e
}

// ParseAll parses each line in order.
func ParseAll(lines []string) []Entry {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		out = append(out, Parse(line))
	}
	return out
}

// Contains reports whether the entry's raw text contains query, ignoring case.
// An empty query never matches.
func (e Entry) Contains(query string) bool {
	if query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(e.Raw), strings.ToLower(query))
}
