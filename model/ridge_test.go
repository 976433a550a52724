package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

// noiselessData builds rows with y = 2*x0 - 3*x1 + 5 exactly.
func noiselessData(n int, seed uint64) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := range X {
		x0 := rng.Float64() * 10
		x1 := rng.Float64() * 10
		X[i] = []float64{x0, x1}
		y[i] = 2*x0 - 3*x1 + 5
	}
	return X, y
}

func TestFitRidgeRecoversLinearRelation(t *testing.T) {
	X, y := noiselessData(200, 1)

	// Tiny penalty: close to plain least squares on noiseless data.
	params, err := FitRidge(X, y, 1e-9)
	require.NoError(t, err)
	require.Len(t, params.Weights, 2)

	assert.InDelta(t, 2.0, params.Weights[0], 1e-5)
	assert.InDelta(t, -3.0, params.Weights[1], 1e-5)
	assert.InDelta(t, 5.0, params.Intercept, 1e-4)
}

func TestRidgePenaltyShrinksWeights(t *testing.T) {
	X, y := noiselessData(200, 2)

	small, err := FitRidge(X, y, 1e-9)
	require.NoError(t, err)
	large, err := FitRidge(X, y, 1e6)
	require.NoError(t, err)

	assert.Less(t, abs(large.Weights[0]), abs(small.Weights[0]))
	assert.Less(t, abs(large.Weights[1]), abs(small.Weights[1]))
}

func TestPredictDeterministic(t *testing.T) {
	params := RidgeParams{Weights: []float64{1.5, -0.5, 2}, Intercept: 0.25}
	row := []float64{1, 2, 3}
	assert.Equal(t, params.Predict(row), params.Predict(row))
	assert.InDelta(t, 1.5-1+6+0.25, params.Predict(row), 1e-12)
}

func TestFitRidgeInputValidation(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}}
	y := []float64{1, 2}

	_, err := FitRidge(nil, nil, 1)
	assert.Error(t, err, "empty matrix")

	_, err = FitRidge(X, []float64{1}, 1)
	assert.Error(t, err, "label count mismatch")

	_, err = FitRidge(X, y, 0)
	assert.Error(t, err, "zero penalty")

	_, err = FitRidge([][]float64{{1, 2}, {3}}, y, 1)
	assert.Error(t, err, "ragged matrix")
}

func TestEvaluatePerfectFit(t *testing.T) {
	X, _ := noiselessData(50, 3)
	params := RidgeParams{Weights: []float64{2, -3}, Intercept: 5}
	y := make([]float64, len(X))
	for i, row := range X {
		y[i] = params.Predict(row)
	}

	m := Evaluate(params, X, y)
	assert.InDelta(t, 0, m.MSE, 1e-12)
	assert.InDelta(t, 0, m.RMSE, 1e-12)
	assert.InDelta(t, 0, m.MAE, 1e-12)
	assert.InDelta(t, 1, m.R2, 1e-12)
}

func TestEvaluateConstantPrediction(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}}
	y := []float64{1, 2, 3, 4}
	params := RidgeParams{Weights: []float64{0}, Intercept: 2.5}

	m := Evaluate(params, X, y)
	assert.Greater(t, m.MSE, 0.0)
	// Predicting the mean everywhere explains none of the variance.
	assert.InDelta(t, 0, m.R2, 1e-12)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
