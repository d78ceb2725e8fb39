// Package dataset provides the static correlation dataset the viewer
// renders: a period label, an ordered asset list, and a lower-triangular
// matrix of pairwise correlations. Datasets are loaded once and never
// mutated.
package dataset

import "fmt"

// Dataset is an immutable correlation matrix for one observation period.
// Matrix row i holds entries for columns 0..i (lower triangle including the
// diagonal); shorter rows mean the trailing cells are absent. Value-level
// invariants (symmetry, diagonal == 1) are the producer's responsibility and
// are deliberately not checked here.
type Dataset struct {
	Period string      `yaml:"period"`
	Assets []string    `yaml:"assets"`
	Matrix [][]float64 `yaml:"matrix"`
}

// Size returns the number of assets.
func (d *Dataset) Size() int {
	return len(d.Assets)
}

// At returns the correlation for cell (row, col). ok is false for cells
// above the diagonal, out-of-range indices, and absent entries.
func (d *Dataset) At(row, col int) (float64, bool) {
	if row < 0 || row >= len(d.Matrix) || col < 0 || col > row {
		return 0, false
	}
	if col >= len(d.Matrix[row]) {
		return 0, false
	}
	return d.Matrix[row][col], true
}

// Summary aggregates display statistics for the info command.
type Summary struct {
	Period   string
	Assets   int
	Cells    int
	Min, Max float64
}

// Summarize walks the lower triangle and collects counts and extremes.
func (d *Dataset) Summarize() Summary {
	s := Summary{Period: d.Period, Assets: len(d.Assets)}
	first := true
	for i := range d.Matrix {
		for j := range d.Matrix[i] {
			v, ok := d.At(i, j)
			if !ok {
				continue
			}
			s.Cells++
			if first || v < s.Min {
				s.Min = v
			}
			if first || v > s.Max {
				s.Max = v
			}
			first = false
		}
	}
	return s
}

// validate checks structural shape only: the loader rejects files that
// cannot be addressed as a lower triangle, but never inspects values.
func (d *Dataset) validate() error {
	if d.Period == "" {
		return fmt.Errorf("dataset has no period")
	}
	if len(d.Assets) == 0 {
		return fmt.Errorf("dataset has no assets")
	}
	if len(d.Matrix) > len(d.Assets) {
		return fmt.Errorf("matrix has %d rows for %d assets", len(d.Matrix), len(d.Assets))
	}
	for i, row := range d.Matrix {
		if len(row) > i+1 {
			return fmt.Errorf("matrix row %d has %d entries, lower triangle allows %d", i, len(row), i+1)
		}
	}
	return nil
}
