package reweight

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matsen/citeweight/internal/citation"
	"github.com/matsen/citeweight/internal/metadata"
	"github.com/matsen/citeweight/internal/weight"
)

// tableScorer returns fixed weights and a missing-metadata error for
// unlisted edges.
type tableScorer struct {
	weights map[[2]string]float64
	calls   int
}

func (s *tableScorer) Weight(citing, cited string) (float64, error) {
	s.calls++
	w, ok := s.weights[[2]string{citing, cited}]
	if !ok {
		return 0, &weight.MissingMetadataError{PaperID: cited, Role: weight.RoleCited}
	}
	return w, nil
}

func writeEdgeList(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func hubFixture(t *testing.T) (string, *tableScorer) {
	t.Helper()
	path := writeEdgeList(t,
		"A ==> H",
		"B ==> H",
		"C ==> H",
		"D ==> H",
		"A ==> X",
		"B ==> X",
		"C ==> Y",
	)
	s := &tableScorer{weights: map[[2]string]float64{
		{"A", "H"}: 0.9,
		{"B", "H"}: 0.5,
		{"C", "H"}: 0.3,
		{"D", "H"}: 0.1,
		{"A", "X"}: 0.2,
		{"B", "X"}: 0.25,
		{"C", "Y"}: 0.6,
	}}
	return path, s
}

func TestRebuild(t *testing.T) {
	edges, scorer := hubFixture(t)
	out := filepath.Join(t.TempDir(), "weighted.txt")

	res, err := Rebuild(edges, out, scorer, 0.4, Options{})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	if res.Total != 7 || res.Retained != 3 || res.Removed != 4 || res.Skipped != 0 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.Retained+res.Removed != res.Total {
		t.Errorf("retained %d + removed %d != total %d", res.Retained, res.Removed, res.Total)
	}
	if want := 4.0 / 7.0; res.RemovedFraction != want {
		t.Errorf("RemovedFraction = %v, want %v", res.RemovedFraction, want)
	}

	if got := res.Old.InDegree("H"); got != 4 {
		t.Errorf("old in-degree of H = %d, want 4", got)
	}
	if got := res.New.InDegree("H"); got != 2 {
		t.Errorf("new in-degree of H = %d, want 2", got)
	}

	// X lost both edges and is reinserted with its largest weight.
	if got := res.New["X"]; !reflect.DeepEqual(got, []float64{0.25}) {
		t.Errorf("reconciled X = %v, want [0.25]", got)
	}
	if res.Reinserted != 1 {
		t.Errorf("Reinserted = %d, want 1", res.Reinserted)
	}
	for id := range res.Old {
		if _, ok := res.New[id]; !ok {
			t.Errorf("paper %s vanished from the pruned distribution", id)
		}
	}
}

func TestRebuild_OutputRoundTrip(t *testing.T) {
	edges, scorer := hubFixture(t)
	out := filepath.Join(t.TempDir(), "weighted.txt")
	threshold := 0.4

	res, err := Rebuild(edges, out, scorer, threshold, Options{})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}

	written, err := citation.ReadWeighted(out)
	if err != nil {
		t.Fatalf("ReadWeighted() error = %v", err)
	}
	if len(written) != res.Retained {
		t.Errorf("wrote %d edges, retained %d", len(written), res.Retained)
	}
	for _, e := range written {
		if e.Weight < threshold {
			t.Errorf("edge %s ==> %s written with weight %v below threshold", e.Citing, e.Cited, e.Weight)
		}
		if want := scorer.weights[[2]string{e.Citing, e.Cited}]; e.Weight != want {
			t.Errorf("edge %s ==> %s weight = %v, want %v", e.Citing, e.Cited, e.Weight, want)
		}
	}
}

func TestRebuild_ThresholdIsInclusive(t *testing.T) {
	edges := writeEdgeList(t, "A ==> B")
	scorer := &tableScorer{weights: map[[2]string]float64{{"A", "B"}: 0.5}}

	res, err := Rebuild(edges, filepath.Join(t.TempDir(), "out.txt"), scorer, 0.5, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Retained != 1 {
		t.Errorf("edge at exactly the threshold should be retained, got %+v", res.Stats)
	}
}

func TestRebuild_SkipMissingMetadata(t *testing.T) {
	edges := writeEdgeList(t, "A ==> B", "A ==> unknown", "C ==> B")
	scorer := &tableScorer{weights: map[[2]string]float64{
		{"A", "B"}: 0.5,
		{"C", "B"}: 0.1,
	}}

	res, err := Rebuild(edges, filepath.Join(t.TempDir(), "out.txt"), scorer, 0.3, Options{Policy: PolicySkip})
	if err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	if res.Skipped != 1 || res.Total != 2 || res.Retained+res.Removed != res.Total {
		t.Errorf("stats = %+v", res.Stats)
	}
	if _, ok := res.Old["unknown"]; ok {
		t.Error("skipped edge should not appear in the degree distribution")
	}
}

func TestRebuild_AbortOnMissingMetadata(t *testing.T) {
	edges := writeEdgeList(t, "A ==> B", "A ==> unknown")
	scorer := &tableScorer{weights: map[[2]string]float64{{"A", "B"}: 0.5}}

	_, err := Rebuild(edges, filepath.Join(t.TempDir(), "out.txt"), scorer, 0.3, Options{Policy: PolicyAbort})
	if !weight.IsMissingMetadata(err) {
		t.Fatalf("Rebuild() error = %v, want missing metadata", err)
	}
}

func TestRebuild_ParseError(t *testing.T) {
	edges := writeEdgeList(t, "A ==> B", "not an edge")
	scorer := &tableScorer{weights: map[[2]string]float64{{"A", "B"}: 0.5}}

	_, err := Rebuild(edges, filepath.Join(t.TempDir(), "out.txt"), scorer, 0.3, Options{})
	if !metadata.IsParseError(err) {
		t.Fatalf("Rebuild() error = %v, want parse error", err)
	}
}

func TestSweep(t *testing.T) {
	edges, scorer := hubFixture(t)
	fractions := []float64{0.1, 0.4, 0.8}

	points, err := Sweep(edges, scorer, 1.0, fractions, Options{})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(points) != len(fractions) {
		t.Fatalf("got %d points, want %d", len(points), len(fractions))
	}

	want := []SweepPoint{
		{Fraction: 0.1, Threshold: 0.1, MaxInDegree: 4, Retained: 7, Removed: 0},
		{Fraction: 0.4, Threshold: 0.4, MaxInDegree: 2, Retained: 3, Removed: 4},
		{Fraction: 0.8, Threshold: 0.8, MaxInDegree: 1, Retained: 1, Removed: 6},
	}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("Sweep() = %+v, want %+v", points, want)
	}

	// Each threshold re-scores the full edge list.
	if scorer.calls != len(fractions)*7 {
		t.Errorf("scorer called %d times, want %d", scorer.calls, len(fractions)*7)
	}
}

func TestSweep_NothingRetained(t *testing.T) {
	edges, scorer := hubFixture(t)

	points, err := Sweep(edges, scorer, 1.0, []float64{1.0}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if points[0].MaxInDegree != 0 || points[0].Retained != 0 {
		t.Errorf("point = %+v, want no retained edges", points[0])
	}
}

func TestSweep_CachedScorerMatches(t *testing.T) {
	edges, scorer := hubFixture(t)
	fractions := []float64{0.2, 0.4}

	plain, err := Sweep(edges, scorer, 1.0, fractions, Options{})
	if err != nil {
		t.Fatal(err)
	}

	counter := &tableScorer{weights: scorer.weights}
	cached, err := weight.NewCached(counter, 64)
	if err != nil {
		t.Fatal(err)
	}
	memo, err := Sweep(edges, cached, 1.0, fractions, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(plain, memo) {
		t.Errorf("cached sweep = %+v, want %+v", memo, plain)
	}
	if counter.calls != 7 {
		t.Errorf("cached sweep scored %d edges, want 7", counter.calls)
	}
}

func TestSweep_WithModel(t *testing.T) {
	years := metadata.YearMap{"A": 2000, "B": 2010, "C": 2010, "D": 1990}
	ctx := weight.NewContext(years, nil, nil)
	model := weight.NewModel(ctx, weight.DefaultParams())
	edges := writeEdgeList(t, "A ==> B", "C ==> B", "D ==> A", "B ==> D")

	ref := Reference(ctx.Histogram)
	points, err := Sweep(edges, model, ref, DefaultFractions, Options{})
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].MaxInDegree > points[i-1].MaxInDegree {
			t.Errorf("max in-degree grew from %d to %d as threshold rose", points[i-1].MaxInDegree, points[i].MaxInDegree)
		}
		if points[i].Threshold != Threshold(ctx.Histogram, DefaultFractions[i]) {
			t.Errorf("threshold %d = %v", i, points[i].Threshold)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    MissingPolicy
		wantErr bool
	}{
		{"", PolicySkip, false},
		{"skip", PolicySkip, false},
		{"abort", PolicyAbort, false},
		{"ignore", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePolicy(%q) = %q, %v", tt.in, got, err)
		}
	}
}
