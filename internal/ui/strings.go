package ui

import "strings"

// truncate shortens a string to the given limit, adding an ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// keeping the start and the end. For paths the file name survives longest.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	const ellipsis = "…"
	if limit <= 3 {
		return string(runes[:limit])
	}

	// Keep the last path element whole when it fits in half the budget.
	if slash := strings.LastIndex(value, "/"); slash >= 0 {
		base := []rune(value[slash:])
		if len(base) < limit/2 {
			head := limit - len(base) - 1
			return string(runes[:head]) + ellipsis + string(base)
		}
	}

	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + ellipsis + string(runes[len(runes)-suffix:])
}
