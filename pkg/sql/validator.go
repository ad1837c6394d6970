package sql

import (
	"errors"
	"strings"
)

var (
	// ErrMultipleStatements indicates the query contains more than one SQL
	// statement. Only single statements may reach the datasource.
	ErrMultipleStatements = errors.New("multiple SQL statements not allowed; only single statements are permitted")
)

// ValidateSingleStatement returns an error when the (already cleaned) SQL
// contains a statement separator outside of string literals. Callers run
// CleanGeneratedSQL first so a trailing semicolon has been stripped; any
// semicolon left indicates a second statement.
func ValidateSingleStatement(sqlQuery string) error {
	sqlQuery = strings.TrimSpace(sqlQuery)
	if sqlQuery == "" {
		return nil
	}
	if hasSemicolonOutsideStrings(sqlQuery) {
		return ErrMultipleStatements
	}
	return nil
}

const (
	stateNormal = iota
	stateSingleQuote
	stateDoubleQuote
)

// hasSemicolonOutsideStrings scans the query with a small quote-aware
// state machine. Handles both backslash escapes (\') and the SQL standard
// doubled quote (''): the doubled quote exits and immediately re-enters
// the string state, which is equivalent to staying inside it.
func hasSemicolonOutsideStrings(sqlQuery string) bool {
	state := stateNormal
	prev := rune(0)

	for _, ch := range sqlQuery {
		switch state {
		case stateNormal:
			switch ch {
			case ';':
				return true
			case '\'':
				state = stateSingleQuote
			case '"':
				state = stateDoubleQuote
			}
		case stateSingleQuote:
			if ch == '\'' && prev != '\\' {
				state = stateNormal
			}
		case stateDoubleQuote:
			if ch == '"' && prev != '\\' {
				state = stateNormal
			}
		}
		prev = ch
	}

	return false
}
