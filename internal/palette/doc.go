// Package palette holds the static color-recommendation data keyed by skin
// tone band and the color-theory helpers built on top of it.
//
// The Recommendation Set is embedded as a CSV table, parsed once at process
// start, and read-only for the process lifetime. Lookup never fails: an
// unrecognized band falls back to Medium with a warning, by design the
// opposite policy of the tone transformer's strict validation.
package palette
