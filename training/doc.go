/*
Package training wires the full pipeline: synthetic dataset generation,
categorical encoding, standardization, ridge fitting, metrics reporting, and
atomic persistence of the fitted artifact set.

A run either produces a complete, internally consistent artifact file or
produces nothing; there is no partial-success state.
*/
package training
