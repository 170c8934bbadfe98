package models

import "testing"

func TestStringArrayScan(t *testing.T) {
	var arr StringArray
	if err := arr.Scan([]byte(`["Education","Tech"]`)); err != nil {
		t.Fatalf("scan bytes failed: %v", err)
	}
	if len(arr) != 2 || arr[0] != "Education" {
		t.Fatalf("scan bytes mismatch: %+v", arr)
	}

	// Postgres json 列按 string 返回
	if err := arr.Scan(`["Outreach"]`); err != nil {
		t.Fatalf("scan string failed: %v", err)
	}
	if len(arr) != 1 || arr[0] != "Outreach" {
		t.Fatalf("scan string mismatch: %+v", arr)
	}

	if err := arr.Scan(nil); err != nil {
		t.Fatalf("scan nil failed: %v", err)
	}
	if len(arr) != 0 {
		t.Fatalf("scan nil should reset, got %+v", arr)
	}
}

func TestStringArrayValue(t *testing.T) {
	var nilArr StringArray
	value, err := nilArr.Value()
	if err != nil {
		t.Fatalf("nil value failed: %v", err)
	}
	if value != nil {
		t.Fatalf("nil array should store NULL, got %v", value)
	}

	arr := StringArray{"Education"}
	value, err = arr.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if string(value.([]byte)) != `["Education"]` {
		t.Fatalf("value mismatch: %s", value)
	}
}

func TestStringArrayContains(t *testing.T) {
	arr := StringArray{"Education", "Tech"}
	if !arr.Contains("Tech") {
		t.Fatalf("Contains should find existing member")
	}
	if arr.Contains("Te") {
		t.Fatalf("Contains should not match substring")
	}
}
