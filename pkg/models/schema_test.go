package models

import (
	"encoding/json"
	"testing"
)

func TestSchemaFlatten(t *testing.T) {
	schema := Schema{
		{Name: "Sales", Columns: []string{"Order_ID", "Amount"}},
		{Name: "stores", Columns: []string{"city"}},
	}

	got := schema.Flatten()
	want := "sales order_id amount stores city"
	if got != want {
		t.Errorf("Flatten() = %q, want %q", got, want)
	}
}

func TestSchemaFlattenEmpty(t *testing.T) {
	if got := (Schema{}).Flatten(); got != "" {
		t.Errorf("Flatten() of empty schema = %q, want empty", got)
	}
}

func TestSchemaUnmarshalPreservesKeyOrder(t *testing.T) {
	// Keys deliberately out of alphabetical order.
	input := `{"zebra": ["z1", "z2"], "alpha": ["a1"], "mango": ["m1"]}`

	var schema Schema
	if err := json.Unmarshal([]byte(input), &schema); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	wantTables := []string{"zebra", "alpha", "mango"}
	if len(schema) != len(wantTables) {
		t.Fatalf("got %d tables, want %d", len(schema), len(wantTables))
	}
	for i, want := range wantTables {
		if schema[i].Name != want {
			t.Errorf("table %d = %s, want %s", i, schema[i].Name, want)
		}
	}

	if schema[0].Columns[1] != "z2" {
		t.Errorf("column order lost: %v", schema[0].Columns)
	}
}

func TestSchemaMarshalRoundTripKeepsOrder(t *testing.T) {
	schema := Schema{
		{Name: "zebra", Columns: []string{"z"}},
		{Name: "alpha", Columns: []string{"a"}},
	}

	data, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back Schema
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if back[0].Name != "zebra" || back[1].Name != "alpha" {
		t.Errorf("order lost through round trip: %v", back.TableNames())
	}
}

func TestSchemaUnmarshalRejectsNonObject(t *testing.T) {
	var schema Schema
	if err := json.Unmarshal([]byte(`["not", "an", "object"]`), &schema); err == nil {
		t.Fatal("expected error for non-object schema")
	}
}

func TestSchemaCounts(t *testing.T) {
	schema := Schema{
		{Name: "a", Columns: []string{"x", "y"}},
		{Name: "b", Columns: []string{"z"}},
	}

	if got := schema.TotalColumns(); got != 3 {
		t.Errorf("TotalColumns() = %d, want 3", got)
	}
	names := schema.TableNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("TableNames() = %v", names)
	}
}
