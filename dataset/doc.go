/*
Package dataset generates the synthetic labeled trip table the arrival-time
model is trained on.

Records are drawn uniformly over fixed vocabularies (bus numbers,
destinations, days of week) and numeric ranges (hour of day, stop sequence),
and labeled by a closed-form time model plus Gaussian noise. Given the same
seed, Generate is reproducible field for field, which the training pipeline
relies on for deterministic retraining.
*/
package dataset
