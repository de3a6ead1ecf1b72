// Package presence contains the core domain model of the tracker: the
// per-ship presence record and the rules that turn a stream of noisy
// signal observations into a stable location classification.
//
// The transition logic lives in Rules.Apply, a pure total function from
// (record, observation) to (record, emitted events). It performs no I/O,
// holds no locks and never fails: every observation has a defined
// transition, including sightings at systems outside the route.
package presence
