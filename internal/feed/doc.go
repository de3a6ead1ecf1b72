// Package feed maintains the subscription to the upstream event relay.
// It decodes length-prefixed zlib frames, routes messages by schema and
// converts presence scans and commander journal events into observations
// for the tracking service. Connection loss is handled here with capped
// exponential backoff and never touches tracking state.
package feed
