/*
Package model fits and evaluates the ridge-regularized linear regression
that maps scaled trip feature vectors to arrival minutes.

Fitting solves the penalized normal equations on column-centered data with
an unpenalized intercept. Prediction is a single dot product and is fully
deterministic.
*/
package model
