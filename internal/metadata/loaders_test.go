package metadata

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadYears(t *testing.T) {
	content := "P1\tTitle one\t2000\n" +
		"P2\tTitle two\t\n" +
		"P3\tshort\n" +
		"P4    Spaced title    2010\n" +
		"P1\tTitle one again\t2001\n" +
		"\n"
	path := writeFile(t, "years.txt", content)

	years, err := LoadYears(path)
	if err != nil {
		t.Fatalf("LoadYears() error = %v", err)
	}

	want := YearMap{"P1": 2001, "P4": 2010}
	if !reflect.DeepEqual(years, want) {
		t.Errorf("LoadYears() = %v, want %v", years, want)
	}
}

func TestLoadYears_InvalidYear(t *testing.T) {
	path := writeFile(t, "years.txt", "P1\tTitle\t2000\nP2\tTitle\tnineteen\n")

	_, err := LoadYears(path)
	if err == nil {
		t.Fatal("LoadYears() expected error for non-numeric year")
	}
	if !IsParseError(err) {
		t.Errorf("LoadYears() error = %v, want *ParseError", err)
	}
}

func TestLoadYears_MissingFile(t *testing.T) {
	_, err := LoadYears(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("LoadYears() expected error for missing file")
	}
	if IsParseError(err) {
		t.Errorf("missing file should be an I/O error, got %v", err)
	}
}

func TestLoadAuthorship(t *testing.T) {
	content := "paper\tauthor\taffiliation\n" +
		"P1\ta1\tx\n" +
		"\n" +
		"P1\ta2\ty\n" +
		"P2\ta3\tz\n"
	path := writeFile(t, "authors.txt", content)

	authors, err := LoadAuthorship(path)
	if err != nil {
		t.Fatalf("LoadAuthorship() error = %v", err)
	}

	want := AuthorshipMap{"P1": {"a1", "a2"}, "P2": {"a3"}}
	if !reflect.DeepEqual(authors, want) {
		t.Errorf("LoadAuthorship() = %v, want %v", authors, want)
	}
}

func TestLoadAuthorship_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"two fields", "header\nP1\ta1\n"},
		{"four fields", "header\nP1\ta1\tx\textra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "authors.txt", tt.content)
			_, err := LoadAuthorship(path)
			if !IsParseError(err) {
				t.Fatalf("LoadAuthorship() error = %v, want *ParseError", err)
			}
		})
	}
}

func TestLoadAuthorship_HeaderIsNeverParsed(t *testing.T) {
	// The header has a single field and would be malformed as data.
	path := writeFile(t, "authors.txt", "just-a-header\nP1\ta1\tx\n")

	authors, err := LoadAuthorship(path)
	if err != nil {
		t.Fatalf("LoadAuthorship() error = %v", err)
	}
	if len(authors) != 1 {
		t.Errorf("expected 1 paper, got %d", len(authors))
	}
}

func TestLoadCommunities(t *testing.T) {
	content := "author, community\n" +
		"a1, 7\n" +
		"\n" +
		"a2, 3\n" +
		"a1, 9\n"
	path := writeFile(t, "communities.txt", content)

	communities, err := LoadCommunities(path)
	if err != nil {
		t.Fatalf("LoadCommunities() error = %v", err)
	}

	want := CommunityMap{"a1": "9", "a2": "3"}
	if !reflect.DeepEqual(communities, want) {
		t.Errorf("LoadCommunities() = %v, want %v", communities, want)
	}
}

func TestLoadCommunities_Malformed(t *testing.T) {
	path := writeFile(t, "communities.txt", "author, community\na1,7\n")

	_, err := LoadCommunities(path)
	if !IsParseError(err) {
		t.Fatalf("LoadCommunities() error = %v, want *ParseError", err)
	}
	pe := err.(*ParseError)
	if pe.Line != 2 {
		t.Errorf("ParseError.Line = %d, want 2", pe.Line)
	}
}

func TestLoadYearCounts(t *testing.T) {
	path := writeFile(t, "top.txt", "2001, 4\n1999, 10\n2005, 4\n\n")

	got, err := LoadYearCounts(path)
	if err != nil {
		t.Fatalf("LoadYearCounts() error = %v", err)
	}

	want := []YearCount{{1999, 10}, {2001, 4}, {2005, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadYearCounts() = %v, want %v", got, want)
	}
}
