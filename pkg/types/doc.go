// Package types defines the Product entity, the Store interface, the
// purchase session state machine, and the standard error values shared
// across the Stockroom catalog system.
package types
