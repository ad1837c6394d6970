package sql

import (
	"testing"
)

func TestCleanGeneratedSQL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare query untouched",
			input:    "SELECT * FROM sales",
			expected: "SELECT * FROM sales",
		},
		{
			name:     "markdown fences stripped",
			input:    "```sql\nSELECT * FROM sales\n```",
			expected: "SELECT * FROM sales",
		},
		{
			name:     "preamble before select dropped",
			input:    "Here is your query: SELECT total FROM sales",
			expected: "SELECT total FROM sales",
		},
		{
			name:     "trailing semicolon removed",
			input:    "SELECT 1;",
			expected: "SELECT 1",
		},
		{
			name:     "fences preamble and semicolon combined",
			input:    "Sure!\n```sql\nSELECT amount FROM orders;\n```",
			expected: "SELECT amount FROM orders",
		},
		{
			name:     "lowercase select found",
			input:    "query: select id from t",
			expected: "select id from t",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanGeneratedSQL(tt.input)
			if got != tt.expected {
				t.Errorf("CleanGeneratedSQL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidateSingleStatement(t *testing.T) {
	valid := []struct {
		name  string
		input string
	}{
		{"single select", "SELECT 1"},
		{"empty string", ""},
		{"semicolon inside single quotes", "SELECT * FROM users WHERE name = 'a;b'"},
		{"semicolon inside double quoted identifier", `SELECT * FROM "t;name"`},
		{"sql standard escaped quote", "SELECT * FROM users WHERE name = 'O''Brien;'"},
	}
	for _, tt := range valid {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSingleStatement(tt.input); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	invalid := []struct {
		name  string
		input string
	}{
		{"two statements", "SELECT 1; SELECT 2"},
		{"drop after select", "SELECT 1; DROP TABLE users"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateSingleStatement(tt.input); err != ErrMultipleStatements {
				t.Errorf("ValidateSingleStatement() = %v, want ErrMultipleStatements", err)
			}
		})
	}
}

func TestScreenStringLiterals(t *testing.T) {
	t.Run("clean literals pass", func(t *testing.T) {
		results := ScreenStringLiterals("SELECT * FROM orders WHERE region = 'north' AND status = 'shipped'")
		if len(results) != 0 {
			t.Errorf("expected no findings, got %d", len(results))
		}
	})

	t.Run("injection in literal flagged", func(t *testing.T) {
		results := ScreenStringLiterals("SELECT * FROM users WHERE name = '1'' OR ''1''=''1'")
		if len(results) == 0 {
			t.Fatal("expected injection finding")
		}
		if !results[0].IsSQLi {
			t.Error("finding should be marked IsSQLi")
		}
		if results[0].Fingerprint == "" {
			t.Error("finding should carry a fingerprint")
		}
	})

	t.Run("no literals", func(t *testing.T) {
		results := ScreenStringLiterals("SELECT count(*) FROM sales")
		if len(results) != 0 {
			t.Errorf("expected no findings, got %d", len(results))
		}
	})
}

func TestExtractStringLiterals(t *testing.T) {
	got := extractStringLiterals("SELECT 'a', 'O''Brien', x FROM t WHERE y = 'z'")
	want := []string{"a", "O'Brien", "z"}
	if len(got) != len(want) {
		t.Fatalf("got %d literals, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("literal %d = %q, want %q", i, got[i], want[i])
		}
	}
}
