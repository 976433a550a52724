/*
Package feature holds the two fitted transforms between raw trip records and
the numeric space the regression model operates in: label encoding for the
categorical fields and standardization for the assembled feature vector.

Both transforms are split into an explicit fit phase, producing an immutable
parameter set, and a transform phase that only reads those parameters. The
serving path holds parameter sets fitted at training time and can never
re-fit, which keeps training-time and serving-time feature vectors in the
same numeric space.
*/
package feature
