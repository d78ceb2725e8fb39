package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDataset(t *testing.T) {
	d := Default()

	if d.Period != "90d" {
		t.Errorf("Period = %q, expected 90d", d.Period)
	}
	if len(d.Assets) != 10 {
		t.Fatalf("expected 10 assets, got %d", len(d.Assets))
	}
	if len(d.Matrix) != 10 {
		t.Fatalf("expected 10 matrix rows, got %d", len(d.Matrix))
	}

	// Diagonal entries exist and equal the self-correlation.
	for i := range d.Assets {
		v, ok := d.At(i, i)
		if !ok {
			t.Fatalf("missing diagonal entry at (%d, %d)", i, i)
		}
		if v != 1.0 {
			t.Errorf("diagonal (%d, %d) = %v, expected 1.0", i, i, v)
		}
	}
}

func TestAtBounds(t *testing.T) {
	d := Default()

	tests := []struct {
		name     string
		row, col int
		ok       bool
	}{
		{"origin", 0, 0, true},
		{"lower triangle", 5, 2, true},
		{"last diagonal", 9, 9, true},
		{"above diagonal", 2, 5, false},
		{"just above diagonal", 3, 4, false},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
		{"row out of range", 10, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := d.At(tc.row, tc.col)
			if ok != tc.ok {
				t.Errorf("At(%d, %d) ok = %v, expected %v", tc.row, tc.col, ok, tc.ok)
			}
		})
	}
}

func TestAtAbsentEntry(t *testing.T) {
	d := &Dataset{
		Period: "1d",
		Assets: []string{"A", "B", "C"},
		Matrix: [][]float64{
			{1.0},
			{0.5}, // diagonal entry absent
		},
	}
	if _, ok := d.At(1, 1); ok {
		t.Error("expected absent entry at (1, 1)")
	}
	if v, ok := d.At(1, 0); !ok || v != 0.5 {
		t.Errorf("At(1, 0) = %v, %v, expected 0.5, true", v, ok)
	}
	// Row 2 entirely absent.
	if _, ok := d.At(2, 0); ok {
		t.Error("expected absent entry at (2, 0)")
	}
}

func TestParseRejectsBadShape(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no period", "assets: [A]\nmatrix: [[1.0]]\n"},
		{"no assets", "period: 90d\nmatrix: [[1.0]]\n"},
		{"too many rows", "period: 90d\nassets: [A]\nmatrix: [[1.0], [0.5, 1.0]]\n"},
		{"row too wide", "period: 90d\nassets: [A, B]\nmatrix: [[1.0, 0.5]]\n"},
		{"not yaml", ": :\n-:::\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "period: 30d\nassets: [AAA, BBB]\nmatrix:\n  - [1.0]\n  - [-0.4, 1.0]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Period != "30d" {
		t.Errorf("Period = %q, expected 30d", d.Period)
	}
	if v, ok := d.At(1, 0); !ok || v != -0.4 {
		t.Errorf("At(1, 0) = %v, %v, expected -0.4, true", v, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/dataset.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if d.Period != "90d" {
		t.Errorf("Period = %q, expected embedded default 90d", d.Period)
	}
}

func TestSummarize(t *testing.T) {
	d := Default()
	s := d.Summarize()

	if s.Assets != 10 {
		t.Errorf("Assets = %d, expected 10", s.Assets)
	}
	if s.Cells != 55 {
		t.Errorf("Cells = %d, expected 55 (full lower triangle of 10)", s.Cells)
	}
	if s.Max != 1.0 {
		t.Errorf("Max = %v, expected 1.0", s.Max)
	}
	if s.Min != -0.52 {
		t.Errorf("Min = %v, expected -0.52", s.Min)
	}
}
