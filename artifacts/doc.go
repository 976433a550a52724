/*
Package artifacts persists the output of a training run (the three fitted
encoding tables, the scaling parameters, and the model parameters) as one
atomic bundle.

The bundle is written to a temporary file and renamed into place, so a
concurrent or crashed writer can never leave a reader with a half-written
set. Mixing artifacts from different training runs would break the
training/serving feature-space contract, which is why the five parts share a
single file rather than one slot each.
*/
package artifacts
