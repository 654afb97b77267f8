package logline

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Entry
	}{
		{
			name:  "empty line",
			input: "",
			want:  Entry{Kind: KindBlank},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  Entry{Kind: KindBlank, Raw: "   "},
		},
		{
			name:  "detail line",
			input: "    - Progress: 50%",
			want:  Entry{Kind: KindDetail, Label: "Progress", Value: "50%", Raw: "    - Progress: 50%"},
		},
		{
			name:  "detail without label",
			input: "  - just text",
			want:  Entry{Kind: KindDetail, Value: "just text", Raw: "  - just text"},
		},
		{
			name:  "info log with component",
			input: "2025-10-08 21:01:05 INFO [encoder] – starting encoding",
			want: Entry{
				Kind:      KindEntry,
				Timestamp: "2025-10-08 21:01:05",
				Level:     "INFO",
				Component: "encoder",
				Message:   "starting encoding",
				Raw:       "2025-10-08 21:01:05 INFO [encoder] – starting encoding",
			},
		},
		{
			name:  "error log with item",
			input: "2025-10-08 20:05:49 error Item #5 (encoder) – encoding failed",
			want: Entry{
				Kind:      KindEntry,
				Timestamp: "2025-10-08 20:05:49",
				Level:     "ERROR",
				Subject:   "Item #5 (encoder)",
				Message:   "encoding failed",
				Raw:       "2025-10-08 20:05:49 error Item #5 (encoder) – encoding failed",
			},
		},
		{
			name:  "warn log with component and item",
			input: "2025-10-08 21:01:05 WARN [encoder] Item #5 (encoder) – slow progress",
			want: Entry{
				Kind:      KindEntry,
				Timestamp: "2025-10-08 21:01:05",
				Level:     "WARN",
				Component: "encoder",
				Subject:   "Item #5 (encoder)",
				Message:   "slow progress",
				Raw:       "2025-10-08 21:01:05 WARN [encoder] Item #5 (encoder) – slow progress",
			},
		},
		{
			name:  "header without separator",
			input: "2025-10-08 21:01:05 DEBUG tick",
			want: Entry{
				Kind:      KindEntry,
				Timestamp: "2025-10-08 21:01:05",
				Level:     "DEBUG",
				Message:   "tick",
				Raw:       "2025-10-08 21:01:05 DEBUG tick",
			},
		},
		{
			name:  "free text",
			input: "panic: runtime error",
			want:  Entry{Kind: KindEntry, Message: "panic: runtime error", Raw: "panic: runtime error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseAll(t *testing.T) {
	if got := ParseAll(nil); got != nil {
		t.Fatalf("ParseAll(nil) = %v, want nil", got)
	}
	got := ParseAll([]string{
		"2025-10-08 21:01:05 INFO [encoder] – starting encoding",
		"    - Progress: 50%",
		"",
	})
	kinds := []Kind{got[0].Kind, got[1].Kind, got[2].Kind}
	want := []Kind{KindEntry, KindDetail, KindBlank}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
}

func TestEntryContains(t *testing.T) {
	e := Parse("2025-10-08 21:01:05 INFO [encoder] – Starting Encoding")
	if !e.Contains("starting") {
		t.Fatal("expected case-insensitive match")
	}
	if e.Contains("") {
		t.Fatal("empty query must not match")
	}
	if e.Contains("decoder") {
		t.Fatal("unexpected match")
	}
}

func TestKindString(t *testing.T) {
	if KindDetail.String() != "detail" || Kind(7).String() != "unknown" {
		t.Fatalf("unexpected kind names: %s %s", KindDetail, Kind(7))
	}
}
