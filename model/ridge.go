package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// RidgeParams is a fitted linear model: one weight per feature plus an
// intercept. Fields are exported for gob.
type RidgeParams struct {
	Weights   []float64
	Intercept float64
}

// FitRidge solves min ‖Xw + b − y‖² + alpha‖w‖² for weights w and an
// unpenalized intercept b. X is given as n rows of k features; alpha must be
// positive.
func FitRidge(X [][]float64, y []float64, alpha float64) (RidgeParams, error) {
	n := len(X)
	if n == 0 {
		return RidgeParams{}, fmt.Errorf("model: cannot fit on empty matrix")
	}
	if len(y) != n {
		return RidgeParams{}, fmt.Errorf("model: %d rows but %d labels", n, len(y))
	}
	if alpha <= 0 {
		return RidgeParams{}, fmt.Errorf("model: regularization strength must be positive, got %g", alpha)
	}
	k := len(X[0])

	// Center columns and labels so the intercept stays out of the penalty.
	xbar := make([]float64, k)
	for _, row := range X {
		if len(row) != k {
			return RidgeParams{}, fmt.Errorf("model: ragged feature matrix")
		}
		floats.Add(xbar, row)
	}
	floats.Scale(1/float64(n), xbar)
	ybar := floats.Sum(y) / float64(n)

	xc := mat.NewDense(n, k, nil)
	yc := mat.NewVecDense(n, nil)
	for i, row := range X {
		for j, v := range row {
			xc.Set(i, j, v-xbar[j])
		}
		yc.SetVec(i, y[i]-ybar)
	}

	// Normal equations: (XcᵀXc + alpha·I) w = Xcᵀ yc.
	var gram mat.Dense
	gram.Mul(xc.T(), xc)
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			v := gram.At(i, j)
			if i == j {
				v += alpha
			}
			sym.SetSym(i, j, v)
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return RidgeParams{}, fmt.Errorf("model: normal equations not positive definite")
	}
	rhs := mat.NewVecDense(k, nil)
	rhs.MulVec(xc.T(), yc)
	w := mat.NewVecDense(k, nil)
	if err := chol.SolveVecTo(w, rhs); err != nil {
		return RidgeParams{}, fmt.Errorf("model: solving normal equations: %w", err)
	}

	weights := make([]float64, k)
	copy(weights, w.RawVector().Data)
	return RidgeParams{
		Weights:   weights,
		Intercept: ybar - floats.Dot(weights, xbar),
	}, nil
}

// Predict evaluates the model on one scaled feature row.
func (p RidgeParams) Predict(row []float64) float64 {
	return floats.Dot(p.Weights, row) + p.Intercept
}
