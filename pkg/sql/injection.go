package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult describes a string literal that failed the
// injection screen.
type InjectionCheckResult struct {
	IsSQLi      bool   // True if an injection pattern was detected
	Fingerprint string // libinjection fingerprint of the detected pattern
	Literal     string // The literal content that was checked
}

// ScreenStringLiterals runs libinjection over every single-quoted string
// literal in a generated query. A prompt-injected model can smuggle a
// second query inside a literal that later reaches dynamic SQL downstream,
// so literals are screened before execution.
//
// Returns one result per flagged literal; an empty slice means clean.
func ScreenStringLiterals(sqlQuery string) []*InjectionCheckResult {
	var results []*InjectionCheckResult
	for _, literal := range extractStringLiterals(sqlQuery) {
		if literal == "" {
			continue
		}
		isSQLi, fingerprint := libinjection.IsSQLi(literal)
		if isSQLi {
			results = append(results, &InjectionCheckResult{
				IsSQLi:      true,
				Fingerprint: string(fingerprint),
				Literal:     literal,
			})
		}
	}
	return results
}

// extractStringLiterals returns the contents of single-quoted literals,
// honoring the SQL standard doubled-quote escape.
func extractStringLiterals(sqlQuery string) []string {
	var literals []string
	var current []rune
	inString := false

	runes := []rune(sqlQuery)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if !inString {
			if ch == '\'' {
				inString = true
				current = current[:0]
			}
			continue
		}

		if ch == '\'' {
			// Doubled quote is an escaped quote inside the literal.
			if i+1 < len(runes) && runes[i+1] == '\'' {
				current = append(current, '\'')
				i++
				continue
			}
			literals = append(literals, string(current))
			inString = false
			continue
		}

		current = append(current, ch)
	}

	return literals
}
