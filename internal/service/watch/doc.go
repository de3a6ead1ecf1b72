// Package watch implements the console client: it prints the current
// tracker snapshot and then follows the status and notification streams.
package watch
