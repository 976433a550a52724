package feature

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// DegenerateFeatureError reports a zero-variance column at fit time. A
// constant column cannot be standardized, and with uniformly drawn training
// data it indicates a broken generator rather than bad luck.
type DegenerateFeatureError struct {
	Column int
}

func (e *DegenerateFeatureError) Error() string {
	return fmt.Sprintf("feature: column %d has zero variance, cannot standardize", e.Column)
}

// ScalingParams carries the per-column mean and population standard
// deviation fitted on the training matrix. Fields are exported for gob.
type ScalingParams struct {
	Means []float64
	Stds  []float64
}

// FitScaler computes scaling parameters over an n×k matrix given as rows.
func FitScaler(matrix [][]float64) (ScalingParams, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return ScalingParams{}, fmt.Errorf("feature: cannot fit scaler on empty matrix")
	}
	cols := len(matrix[0])
	params := ScalingParams{
		Means: make([]float64, cols),
		Stds:  make([]float64, cols),
	}
	col := make([]float64, len(matrix))
	for j := 0; j < cols; j++ {
		for i, row := range matrix {
			col[i] = row[j]
		}
		params.Means[j] = stat.Mean(col, nil)
		params.Stds[j] = stat.PopStdDev(col, nil)
		if params.Stds[j] == 0 {
			return ScalingParams{}, &DegenerateFeatureError{Column: j}
		}
	}
	return params, nil
}

// Transform standardizes one row elementwise: (value - mean) / std. The row
// length must match the fitted column count. Transform never re-fits, so
// repeated calls with the same params and input produce identical output.
func (p ScalingParams) Transform(row []float64) []float64 {
	if len(row) != len(p.Means) {
		panic(fmt.Sprintf("feature: row has %d columns, scaler fitted on %d", len(row), len(p.Means)))
	}
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - p.Means[j]) / p.Stds[j]
	}
	return out
}

// TransformAll standardizes every row of a matrix.
func (p ScalingParams) TransformAll(matrix [][]float64) [][]float64 {
	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		out[i] = p.Transform(row)
	}
	return out
}
