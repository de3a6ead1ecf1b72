// Package ingest normalizes raw signal observations before they reach the
// presence core: it resolves ship aliases case-insensitively, rejects
// malformed or untracked input, and suppresses duplicates of the same
// (ship, system, timestamp) tuple within a configurable window.
package ingest
