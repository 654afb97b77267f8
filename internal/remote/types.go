package remote

import "time"

const timestampLayout = "2006-01-02 15:04:05"

// Status mirrors the payload returned by /api/status.
type Status struct {
	Running   bool   `json:"running"`
	PID       int    `json:"pid"`
	LastError string `json:"lastError"`
}

// LogEvent is a single entry from /api/logs.
type LogEvent struct {
	Sequence  uint64        `json:"seq"`
	Timestamp string        `json:"ts"`
	Level     string        `json:"level"`
	Message   string        `json:"msg"`
	Component string        `json:"component"`
	Stage     string        `json:"stage"`
	ItemID    int64         `json:"item_id"`
	Details   []DetailField `json:"details"`
}

// ParsedTime returns the timestamp as time.Time when possible.
func (e LogEvent) ParsedTime() time.Time {
	return parseTime(e.Timestamp)
}

// DetailField is one labelled value attached to an event.
type DetailField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LogBatch is a page of events plus the cursor for the next request.
type LogBatch struct {
	Events []LogEvent `json:"events"`
	Next   uint64     `json:"next"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(timestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
