package main

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// minPasswordLength is the hard floor below which no other check runs
const minPasswordLength = 12

// specialChars is the punctuation set required by the complexity check
const specialChars = `!@#$%^&*(),.?":{}|<>`

// strengthLabels maps an oracle score to its categorical label
var strengthLabels = [5]string{"Very Weak", "Weak", "Moderate", "Strong", "Very Strong"}

// StrengthResult is the outcome of evaluating a single password
type StrengthResult struct {
	Strength string
	Score    int
	Message  string
}

// Checker evaluates password strength through an ordered pipeline:
// length gate, weak-list gate, banned-list gate, oracle scoring,
// complexity override. Results are memoized per exact password, so a
// Checker must not be reconfigured once it has served evaluations;
// swap in a fresh Checker (or clear the cache) instead.
type Checker struct {
	weak   *Wordlist // nil when no weak list is configured
	banned *Wordlist // nil when no banned list is configured
	oracle ScoringOracle
	cache  *ResultCache
}

// NewChecker creates a checker with optional wordlist gates.
// An empty path omits that gate entirely. Returns an error when a
// configured wordlist cannot be loaded or the cache cannot be built.
func NewChecker(store *WordlistStore, weakPath, bannedPath string, oracle ScoringOracle, cacheSize int) (*Checker, error) {
	var weak, banned *Wordlist
	var err error

	if weakPath != "" {
		weak, err = store.Load(weakPath)
		if err != nil {
			return nil, err
		}
	}
	if bannedPath != "" {
		banned, err = store.Load(bannedPath)
		if err != nil {
			return nil, err
		}
	}

	cache, err := NewResultCache(cacheSize)
	if err != nil {
		return nil, err
	}

	slog.Debug("checker initialized",
		"weakList", weakPath,
		"bannedList", bannedPath,
		"cacheSize", cacheSize)

	return &Checker{
		weak:   weak,
		banned: banned,
		oracle: oracle,
		cache:  cache,
	}, nil
}

// Check evaluates the password, returning a memoized result when the
// same exact string has been seen before
func (c *Checker) Check(password string) StrengthResult {
	if cached, ok := c.cache.Get(password); ok {
		return cached
	}

	result := c.evaluate(password)
	c.cache.Put(password, result)
	return result
}

// evaluate runs the full pipeline; the first matching gate wins
func (c *Checker) evaluate(password string) StrengthResult {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return StrengthResult{"Too short", 0, "Password should be at least 12 characters long."}
	}

	if c.weak != nil && c.weak.Contains(password) {
		return StrengthResult{"Weak", 0, "Password is commonly used and easily guessable."}
	}

	if c.banned != nil && c.banned.Contains(password) {
		return StrengthResult{"Banned", 0, "This password is not allowed, as it is commonly found in data leaks."}
	}

	scored := c.oracle.Score(password)
	label := strengthLabels[scored.Score]

	// Character diversity is enforced independently of the entropy
	// estimate: a long passphrase can score 4 and still fail policy.
	if missing := missingClasses(password); len(missing) > 0 {
		return StrengthResult{"Weak", scored.Score,
			fmt.Sprintf("Password lacks complexity. Missing: %s.", strings.Join(missing, ", "))}
	}

	if scored.Score >= 3 {
		return StrengthResult{label, scored.Score,
			fmt.Sprintf("Password meets all the requirements. Score: %d/4", scored.Score)}
	}

	return StrengthResult{label, scored.Score,
		fmt.Sprintf("Password is %s. Suggestions: %s",
			strings.ToLower(label), strings.Join(scored.Suggestions, ", "))}
}

// ClearCache drops all memoized results
func (c *Checker) ClearCache() {
	c.cache.Clear()
}

// CacheSize returns the number of memoized results
func (c *Checker) CacheSize() int {
	return c.cache.Size()
}

// missingClasses returns the names of required character classes the
// password lacks, in fixed order: uppercase letter, lowercase letter,
// number, special character
func missingClasses(password string) []string {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}

	var missing []string
	if !hasUpper {
		missing = append(missing, "uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "number")
	}
	if !hasSpecial {
		missing = append(missing, "special character")
	}
	return missing
}
