// Package sql guards LLM-generated SQL before it reaches a datasource.
package sql

import "strings"

// CleanGeneratedSQL normalizes raw LLM output into a bare SQL statement:
// markdown code fences are stripped, any preamble before the first SELECT
// is dropped, and the trailing semicolon is removed.
func CleanGeneratedSQL(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```sql", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	// Models occasionally prefix the query with prose; cut to the statement.
	upper := strings.ToUpper(cleaned)
	if pos := strings.Index(upper, "SELECT"); pos > 0 {
		cleaned = cleaned[pos:]
	}

	cleaned = strings.TrimRight(cleaned, " \t\n\r")
	if strings.HasSuffix(cleaned, ";") {
		cleaned = strings.TrimSuffix(cleaned, ";")
		cleaned = strings.TrimRight(cleaned, " \t\n\r")
	}

	return cleaned
}
