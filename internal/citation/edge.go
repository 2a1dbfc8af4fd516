// Package citation reads and writes citation edge lists of the form
// "<citing_id> ==> <cited_id>", optionally followed by a weight.
package citation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matsen/citeweight/internal/metadata"
)

// Separator joins the citing and cited paper IDs on an edge line.
const Separator = " ==> "

// Edge is a directed citation from Citing to Cited.
type Edge struct {
	Citing string  `json:"citing"`
	Cited  string  `json:"cited"`
	Weight float64 `json:"weight,omitempty"`
}

// ParseLine parses an unweighted "<citing> ==> <cited>" line.
func ParseLine(line string) (Edge, error) {
	parts := strings.Split(strings.TrimSpace(line), Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Edge{}, &metadata.ParseError{Msg: fmt.Sprintf("expected \"<citing>%s<cited>\", got %q", Separator, line)}
	}
	return Edge{Citing: parts[0], Cited: parts[1]}, nil
}

// ParseWeightedLine parses a "<citing> ==> <cited> <weight>" line.
func ParseWeightedLine(line string) (Edge, error) {
	trimmed := strings.TrimSpace(line)
	i := strings.LastIndexByte(trimmed, ' ')
	if i < 0 {
		return Edge{}, &metadata.ParseError{Msg: fmt.Sprintf("missing weight in %q", line)}
	}
	e, err := ParseLine(trimmed[:i])
	if err != nil {
		return Edge{}, err
	}
	w, err := strconv.ParseFloat(trimmed[i+1:], 64)
	if err != nil {
		return Edge{}, &metadata.ParseError{Msg: fmt.Sprintf("invalid weight %q", trimmed[i+1:])}
	}
	e.Weight = w
	return e, nil
}

// FormatWeighted renders an edge as "<citing> ==> <cited> <weight>\n".
// The weight uses the shortest representation that parses back exactly.
func FormatWeighted(e Edge) string {
	return e.Citing + Separator + e.Cited + " " + strconv.FormatFloat(e.Weight, 'g', -1, 64) + "\n"
}
