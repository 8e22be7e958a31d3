package main

import (
	zxcvbn "github.com/ccojocar/zxcvbn-go"
)

// OracleResult is the outcome of a single oracle invocation
type OracleResult struct {
	Score       int // 0 (very weak) .. 4 (very strong)
	Suggestions []string
}

// ScoringOracle estimates password strength on a 0-4 scale and offers
// improvement suggestions. Implementations must be pure: the same
// password always yields the same result, which is what makes caching
// evaluations safe. The contract has no error return; an oracle backed
// by an external service should fail at construction time, not per call.
type ScoringOracle interface {
	Score(password string) OracleResult
}

// zxcvbnOracle scores passwords with the zxcvbn entropy estimator
type zxcvbnOracle struct{}

// NewZxcvbnOracle returns the default entropy-based scoring oracle
func NewZxcvbnOracle() ScoringOracle {
	return zxcvbnOracle{}
}

// Score runs zxcvbn and derives suggestions from its match sequence.
// The Go port exposes no feedback strings, so advice is synthesized
// from the pattern kinds the estimator matched, the way the upstream
// zxcvbn feedback module does.
func (zxcvbnOracle) Score(password string) OracleResult {
	strength := zxcvbn.PasswordStrength(password, nil)

	score := strength.Score
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}

	var suggestions []string
	if score < 3 {
		seen := make(map[string]struct{})
		for _, m := range strength.MatchSequence {
			advice, ok := patternAdvice[m.Pattern]
			if !ok {
				continue
			}
			if _, dup := seen[advice]; dup {
				continue
			}
			seen[advice] = struct{}{}
			suggestions = append(suggestions, advice)
		}
		suggestions = append(suggestions, "Add another word or two. Uncommon words are better")
	}

	return OracleResult{Score: score, Suggestions: suggestions}
}

// patternAdvice maps zxcvbn match patterns to remediation advice
var patternAdvice = map[string]string{
	"dictionary": "Avoid common words and names",
	"spatial":    "Avoid straight rows and patterns of keys",
	"repeat":     "Avoid repeated characters",
	"sequence":   "Avoid sequences like abc or 6543",
	"date":       "Avoid dates and years that are associated with you",
}
