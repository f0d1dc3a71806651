package utils

import "strings"

const wordsPerMinute = 200

// ReadingTime estimates minutes needed to read content. Never less than one.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
