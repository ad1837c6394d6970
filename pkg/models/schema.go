package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaTable is one table of a datasource schema: a name and its columns
// in declaration order.
type SchemaTable struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// Schema is the ordered table list supplied per request. Order matters:
// domain detection flattens tables then columns in this order, and the
// flattened text must be stable for detection to be reproducible.
type Schema []SchemaTable

// Flatten concatenates every table name followed by its column names,
// space-separated and lowercased. This is the text domain detection scores.
func (s Schema) Flatten() string {
	var parts []string
	for _, table := range s {
		parts = append(parts, table.Name)
		parts = append(parts, table.Columns...)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// TableNames returns the table names in declaration order.
func (s Schema) TableNames() []string {
	names := make([]string, len(s))
	for i, table := range s {
		names[i] = table.Name
	}
	return names
}

// TotalColumns returns the column count across all tables.
func (s Schema) TotalColumns() int {
	total := 0
	for _, table := range s {
		total += len(table.Columns)
	}
	return total
}

// MarshalJSON renders the schema as the wire form clients send:
// an object mapping table name to column list, in table order.
func (s Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, table := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(table.Name)
		if err != nil {
			return nil, err
		}
		cols, err := json.Marshal(table.Columns)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(cols)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the {"table": ["col", ...]} wire form while
// preserving key order. A plain map would lose the order the flattening
// contract depends on, so this walks the token stream instead.
func (s *Schema) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("schema must be a JSON object, got %v", tok)
	}

	var tables Schema
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("schema key must be a string, got %v", keyTok)
		}

		var columns []string
		if err := dec.Decode(&columns); err != nil {
			return fmt.Errorf("columns for table %q: %w", name, err)
		}

		tables = append(tables, SchemaTable{Name: name, Columns: columns})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = tables
	return nil
}
