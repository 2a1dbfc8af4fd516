package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/citeweight/internal/ccdf"
	"github.com/matsen/citeweight/internal/metadata"
	"github.com/matsen/citeweight/internal/weight"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitCodeFor maps pipeline errors to exit codes.
func exitCodeFor(err error) int {
	if metadata.IsParseError(err) || weight.IsMissingMetadata(err) {
		return ExitDataError
	}
	return ExitError
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// printCCDFHuman prints a CCDF curve as a two-column table.
func printCCDFHuman(label string, points []ccdf.Point) {
	fmt.Printf("%s:\n", label)
	fmt.Printf("  %8s  %s\n", "degree", "ccdf")
	for _, p := range points {
		fmt.Printf("  %8d  %.6f\n", p.Degree, p.Value)
	}
}
