// Package main provides the entry point for the revisor CLI.
//
// revisor checks the formatting of Word documents: fonts and sizes in use,
// page margins, indentation, line spacing, numbered lines and paragraph
// alignment. It writes one plain-text report per document.
//
// Usage:
//
//	revisor analyze [dir|file ...]
//
// See --help for all available options.
package main

// main is the entry point for revisor.
func main() {
	Execute()
}
