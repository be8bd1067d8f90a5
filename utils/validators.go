package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const MinContentLength = 10

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidContent requires at least MinContentLength characters after
// trimming, counted in runes.
func IsValidContent(content string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(content)) >= MinContentLength
}

// IsValidStatus accepts the two post status labels.
func IsValidStatus(status string) bool {
	return status == "draft" || status == "published"
}
