package sheet

import (
	"bytes"
	"strings"
	"testing"
)

func TestWorkbookRoundTrip(t *testing.T) {
	header := []string{"name", "quantity", "location"}
	rows := [][]interface{}{
		{"Resistor 10k", 250, "Bin 1"},
		{"ESP32", 3, "Drawer 2"},
	}

	data, err := WriteWorkbook("Parts", header, rows, []float64{30, 10, 20})
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	gotHeader, gotRows, err := ReadWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}

	if len(gotHeader) != 3 || gotHeader[0] != "name" || gotHeader[2] != "location" {
		t.Errorf("header = %v", gotHeader)
	}
	if len(gotRows) != 2 {
		t.Fatalf("rows = %d, want 2", len(gotRows))
	}
	if gotRows[0][0] != "Resistor 10k" || gotRows[0][1] != "250" {
		t.Errorf("row 0 = %v", gotRows[0])
	}
	if gotRows[1][2] != "Drawer 2" {
		t.Errorf("row 1 = %v", gotRows[1])
	}
}

func TestReadWorkbook_RaggedRows(t *testing.T) {
	// Trailing empty cells are dropped on read; callers index defensively.
	header := []string{"a", "b", "c"}
	rows := [][]interface{}{
		{"x"},
		{"y", "z", ""},
	}

	data, err := WriteWorkbook("Sheet1", header, rows, nil)
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	_, gotRows, err := ReadWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if len(gotRows) != 2 {
		t.Fatalf("rows = %d, want 2", len(gotRows))
	}
	if len(gotRows[0]) > 1 {
		for _, cell := range gotRows[0][1:] {
			if cell != "" {
				t.Errorf("row 0 = %v, want only %q populated", gotRows[0], "x")
			}
		}
	}
	if gotRows[1][0] != "y" || gotRows[1][1] != "z" {
		t.Errorf("row 1 = %v", gotRows[1])
	}
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	_, _, err := ReadWorkbook(strings.NewReader("definitely not a zip archive"))
	if err == nil {
		t.Fatal("expected error for non-xlsx input")
	}
	if !strings.Contains(err.Error(), "open workbook") {
		t.Errorf("err = %v", err)
	}
}

func TestWriteWorkbook_EmptyRows(t *testing.T) {
	data, err := WriteWorkbook("Empty", []string{"name"}, nil, nil)
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	header, rows, err := ReadWorkbook(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if len(header) != 1 || header[0] != "name" {
		t.Errorf("header = %v", header)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %v, want none", rows)
	}
}
