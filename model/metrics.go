package model

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics summarizes fit quality on one split. It is reported for
// observability only; nothing feeds it back into model selection.
type Metrics struct {
	MSE  float64
	RMSE float64
	MAE  float64
	R2   float64
}

// Evaluate computes regression metrics for params over a scaled matrix and
// its labels.
func Evaluate(params RidgeParams, X [][]float64, y []float64) Metrics {
	n := len(X)
	estimates := make([]float64, n)
	var sqSum, absSum float64
	for i, row := range X {
		estimates[i] = params.Predict(row)
		r := estimates[i] - y[i]
		sqSum += r * r
		absSum += math.Abs(r)
	}
	mse := sqSum / float64(n)
	return Metrics{
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAE:  absSum / float64(n),
		R2:   stat.RSquaredFrom(estimates, y, nil),
	}
}
