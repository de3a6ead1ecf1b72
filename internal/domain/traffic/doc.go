// Package traffic estimates commander traffic through the route systems by
// correlating planned routes with confirmed jumps. Counters are best-effort:
// duplicates from multiple relay uploaders are suppressed by timestamp and
// per-uploader windows, and planned departures whose confirmation never
// arrives are counted after a timeout.
package traffic
