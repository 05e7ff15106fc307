// Package registry provides a generic, read-only registry for looking up
// items by name. A registry is populated once from an ordered list of
// entries and never changes afterwards, so it can be shared between
// goroutines without locking.
package registry
