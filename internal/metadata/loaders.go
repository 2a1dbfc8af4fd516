package metadata

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// MaxLineCapacity is the maximum buffer size for a single input line (1MB).
const MaxLineCapacity = 1024 * 1024

// scanLines calls fn for every line of the file at path with its 0-based
// index. The file is closed on every return path.
func scanLines(path string, fn func(idx int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, MaxLineCapacity)
	scanner.Buffer(buf, MaxLineCapacity)

	idx := 0
	for scanner.Scan() {
		if err := fn(idx, scanner.Text()); err != nil {
			return err
		}
		idx++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// LoadYears reads a tab-separated paper file where field 0 is the paper ID
// and field 2 the publication year. Rows with fewer than three fields or an
// empty year are skipped. A repeated paper ID keeps its last year.
func LoadYears(path string) (YearMap, error) {
	years := make(YearMap)
	err := scanLines(path, func(idx int, line string) error {
		// Some exports indent with four spaces instead of a tab.
		line = strings.ReplaceAll(line, "    ", "\t")
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 3 || parts[2] == "" {
			return nil
		}
		year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return &ParseError{Path: path, Line: idx + 1, Msg: fmt.Sprintf("invalid year %q", parts[2])}
		}
		years[parts[0]] = year
		return nil
	})
	if err != nil {
		return nil, err
	}
	return years, nil
}

// LoadAuthorship reads a tab-separated paper/author file with a header row.
// Every data row must hold exactly three fields: paper ID, author ID and an
// unused affiliation column.
func LoadAuthorship(path string) (AuthorshipMap, error) {
	authors := make(AuthorshipMap)
	err := scanLines(path, func(idx int, line string) error {
		if idx == 0 || strings.TrimSpace(line) == "" {
			return nil
		}
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) != 3 {
			return &ParseError{Path: path, Line: idx + 1, Msg: fmt.Sprintf("expected 3 tab-separated fields, got %d", len(parts))}
		}
		authors[parts[0]] = append(authors[parts[0]], parts[1])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

// LoadCommunities reads "<author_id>, <community_id>" rows following a
// header row. A repeated author keeps its last community.
func LoadCommunities(path string) (CommunityMap, error) {
	communities := make(CommunityMap)
	err := scanLines(path, func(idx int, line string) error {
		if idx == 0 || strings.TrimSpace(line) == "" {
			return nil
		}
		parts := strings.Split(strings.TrimSpace(line), ", ")
		if len(parts) != 2 {
			return &ParseError{Path: path, Line: idx + 1, Msg: fmt.Sprintf("expected \"author, community\", got %q", line)}
		}
		communities[parts[0]] = parts[1]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return communities, nil
}

// LoadYearCounts reads "<year>, <count>" rows, such as the year
// distribution of the most cited papers, and returns them with the
// largest count first. Ties keep ascending year order.
func LoadYearCounts(path string) ([]YearCount, error) {
	byYear := make(map[int]int)
	err := scanLines(path, func(idx int, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		parts := strings.Split(strings.TrimSpace(line), ", ")
		if len(parts) != 2 {
			return &ParseError{Path: path, Line: idx + 1, Msg: fmt.Sprintf("expected \"year, count\", got %q", line)}
		}
		year, err := strconv.Atoi(parts[0])
		if err != nil {
			return &ParseError{Path: path, Line: idx + 1, Msg: fmt.Sprintf("invalid year %q", parts[0])}
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			return &ParseError{Path: path, Line: idx + 1, Msg: fmt.Sprintf("invalid count %q", parts[1])}
		}
		byYear[year] = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]YearCount, 0, len(byYear))
	for y, c := range byYear {
		out = append(out, YearCount{Year: y, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Year < out[j].Year
	})
	return out, nil
}
