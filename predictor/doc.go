/*
Package predictor serves arrival-time predictions by replaying the
training-time transforms over a persisted artifact set.

A Service is constructed once at startup from a loaded artifact set and is
immutable afterwards: every prediction encodes, scales, and evaluates with
the exact parameters fitted during training, never re-fitting anything.
Concurrent calls share the Service without locking.
*/
package predictor
