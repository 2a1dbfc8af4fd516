package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matsen/citeweight/internal/ccdf"
)

func init() {
	rootCmd.AddCommand(ccdfCmd)
}

var ccdfCmd = &cobra.Command{
	Use:   "ccdf <degrees-file>",
	Short: "Compute the CCDF of a degree sequence",
	Long: `Compute the complementary cumulative distribution of a list of degrees,
one integer per line. Blank lines are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runCCDF,
}

func runCCDF(cmd *cobra.Command, args []string) error {
	degrees, err := readDegrees(args[0])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	points := ccdf.Compute(degrees)
	if humanOutput {
		printCCDFHuman(args[0], points)
		return nil
	}
	if points == nil {
		points = []ccdf.Point{}
	}
	return outputJSON(points)
}

// readDegrees reads one non-negative integer per line.
func readDegrees(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening degrees file: %w", err)
	}
	defer f.Close()

	var degrees []int
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		d, err := strconv.Atoi(line)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%s:%d: invalid degree %q", path, lineNum, line)
		}
		degrees = append(degrees, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading degrees file: %w", err)
	}
	return degrees, nil
}
