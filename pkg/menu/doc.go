// Package menu implements the interactive console shell.
//
// The shell prints a numbered category menu, reads a value and a
// conversion choice, and prints the converted value with two decimals.
// Input is read as whitespace-separated tokens. A malformed token discards
// the rest of its line and returns to the main menu; conversion failures
// are reported as "Error: <message>" and the loop continues.
//
// All I/O is injected, so tests drive the shell with strings.Reader and
// bytes.Buffer.
package menu
