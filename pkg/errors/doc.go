// Package errors provides coded errors shared by the converter core and the
// command line shells. Codes are stable and compared by errors.Is, so callers
// can tell a rejected temperature from an unknown conversion without parsing
// messages.
package errors
