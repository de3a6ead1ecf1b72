// Package config loads, validates and persists the YAML settings shared by
// the tracker binaries: relay and API addresses, the two tracked ships with
// their aliases, the enumerated route systems, and the presence thresholds
// (miss count, long absence, dedup window, staleness cutoff).
//
// Optional fields receive defaults during validation, so a minimal settings
// file only needs the addresses, ships and route systems.
package config
