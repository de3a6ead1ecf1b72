// Package state persists tracked presence records between runs.
// The only implementation stores protojson documents on the local
// filesystem so a restarted server resumes from the last known state
// instead of every ship starting over at NOT_DETECTED.
package state
