// Package weight computes composite citation edge weights from publication
// year, annual publication volume and author community signals.
package weight

import (
	"math"

	"github.com/matsen/citeweight/internal/metadata"
)

// Default model parameters.
const (
	DefaultK              = 0.1
	DefaultT0             = 2002
	DefaultCommunityBoost = 1.5
)

// Params tunes the weight model.
type Params struct {
	K              float64 `yaml:"k" json:"k"`                             // logistic steepness
	T0             float64 `yaml:"t0" json:"t0"`                           // logistic center year
	CommunityBoost float64 `yaml:"community_boost" json:"community_boost"` // multiplier for shared communities
}

// DefaultParams returns the standard model parameters.
func DefaultParams() Params {
	return Params{K: DefaultK, T0: DefaultT0, CommunityBoost: DefaultCommunityBoost}
}

// Context bundles the read-only lookup tables the model scores against.
type Context struct {
	Years       metadata.YearMap
	Authors     metadata.AuthorshipMap
	Communities metadata.CommunityMap
	Histogram   metadata.YearHistogram
}

// NewContext builds a Context and derives the year histogram from years.
func NewContext(years metadata.YearMap, authors metadata.AuthorshipMap, communities metadata.CommunityMap) *Context {
	return &Context{
		Years:       years,
		Authors:     authors,
		Communities: communities,
		Histogram:   metadata.NewYearHistogram(years),
	}
}

// Scorer assigns a weight to a citation from citing to cited.
type Scorer interface {
	Weight(citing, cited string) (float64, error)
}

// Model is the composite edge weight function.
type Model struct {
	params Params
	ctx    *Context
}

// NewModel creates a Model over the given lookup tables.
func NewModel(ctx *Context, params Params) *Model {
	return &Model{params: params, ctx: ctx}
}

// Params returns the parameters the model was built with.
func (m *Model) Params() Params {
	return m.params
}

// Context returns the lookup tables the model scores against.
func (m *Model) Context() *Context {
	return m.ctx
}

// Breakdown shows how each signal contributed to an edge weight.
type Breakdown struct {
	Citing        string  `json:"citing"`
	Cited         string  `json:"cited"`
	CitingYear    int     `json:"citing_year"`
	CitedYear     int     `json:"cited_year"`
	Decay         float64 `json:"decay"`
	AnnualCount   int     `json:"annual_count"`
	Normalized    float64 `json:"normalized"`
	SameCommunity bool    `json:"same_community"`
	Weight        float64 `json:"weight"`
}

// Weight returns the composite weight of the citation citing ==> cited.
func (m *Model) Weight(citing, cited string) (float64, error) {
	b, err := m.Explain(citing, cited)
	if err != nil {
		return 0, err
	}
	return b.Weight, nil
}

// Explain computes the weight of citing ==> cited and reports each step.
// The decay uses the cited paper's year and the normalization uses the
// volume of the citing paper's year.
func (m *Model) Explain(citing, cited string) (Breakdown, error) {
	b := Breakdown{Citing: citing, Cited: cited}

	citedYear, ok := m.ctx.Years.Year(cited)
	if !ok {
		return b, &MissingMetadataError{PaperID: cited, Role: RoleCited}
	}
	citingYear, ok := m.ctx.Years.Year(citing)
	if !ok {
		return b, &MissingMetadataError{PaperID: citing, Role: RoleCiting}
	}
	b.CitedYear, b.CitingYear = citedYear, citingYear

	b.Decay = TimeDecay(float64(citedYear), m.params.K, m.params.T0)
	b.AnnualCount = m.ctx.Histogram.Count(citingYear)
	b.Normalized = AnnualNormalization(b.AnnualCount, b.Decay)
	b.Weight = b.Normalized

	citingAuthors, okCiting := m.ctx.Authors[citing]
	citedAuthors, okCited := m.ctx.Authors[cited]
	if okCiting && okCited && CommunityBoost(citingAuthors, citedAuthors, m.ctx.Communities) {
		b.SameCommunity = true
		b.Weight *= m.params.CommunityBoost
	}
	return b, nil
}

// TimeDecay is a logistic curve centered at t0 with steepness k. It rises
// toward 1 for recent years and is strictly within (0, 1) for finite input.
func TimeDecay(year, k, t0 float64) float64 {
	return 1 / (1 + math.Exp(-k*(year-t0)))
}

// AnnualNormalization discounts w by the publication volume of a year,
// correcting for citation inflation in high-volume years.
func AnnualNormalization(count int, w float64) float64 {
	return w / (1 + math.Log(float64(count)+1))
}

// ReferenceNormalization is the normalization factor of a year holding the
// median number of papers. Threshold candidates are fractions of it.
func ReferenceNormalization(median float64) float64 {
	return 1 / (1 + math.Log(median+1))
}

// CommunityBoost reports whether any author of the cited paper shares a
// community with any author of the citing paper. Authors without a known
// community never match.
func CommunityBoost(citingAuthors, citedAuthors []string, communities metadata.CommunityMap) bool {
	citing := make(map[string]struct{}, len(citingAuthors))
	for _, a := range citingAuthors {
		if c, ok := communities[a]; ok {
			citing[c] = struct{}{}
		}
	}
	if len(citing) == 0 {
		return false
	}
	for _, a := range citedAuthors {
		c, ok := communities[a]
		if !ok {
			continue
		}
		if _, shared := citing[c]; shared {
			return true
		}
	}
	return false
}
