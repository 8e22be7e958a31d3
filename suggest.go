package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// classAdvice maps a missing character class to its remediation text,
// keeping the same fixed order as missingClasses
var classAdvice = map[string]string{
	"uppercase letter":  "Add uppercase letters",
	"lowercase letter":  "Add lowercase letters",
	"number":            "Add numbers",
	"special character": "Add special characters",
}

// SuggestImprovements returns formatted remediation text for the
// password: one bullet per unmet structural requirement (length first,
// then missing character classes), or the oracle's own suggestions when
// the structure is already satisfied but the evaluation still flagged
// the password.
func (c *Checker) SuggestImprovements(password string) string {
	result := c.Check(password)

	var suggestions []string

	if utf8.RuneCountInString(password) < minPasswordLength {
		suggestions = append(suggestions,
			fmt.Sprintf("Increase length to at least %d characters", minPasswordLength))
	}

	for _, class := range missingClasses(password) {
		suggestions = append(suggestions, classAdvice[class])
	}

	if len(suggestions) == 0 {
		suggestions = oracleSuggestions(result.Message)
	}

	var sb strings.Builder
	sb.WriteString("Suggested improvements:\n\n")
	for i, s := range suggestions {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(s)
	}
	return sb.String()
}

// oracleSuggestions extracts the oracle's suggestion strings from an
// evaluation message. Messages without a "Suggestions: " marker come
// back whole as a single suggestion.
func oracleSuggestions(message string) []string {
	parts := strings.Split(message, "Suggestions: ")
	return strings.Split(parts[len(parts)-1], ", ")
}
