package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseFractions(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"0.4,0.45", []float64{0.4, 0.45}, false},
		{" 0.4 , 0.5 ,", []float64{0.4, 0.5}, false},
		{"1", []float64{1}, false},
		{"0", nil, true},
		{"1.5", nil, true},
		{"abc", nil, true},
		{",", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFractions(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFractions(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFractions(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadDegrees(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.txt")
	if err := os.WriteFile(path, []byte("3\n\n1\n 2 \n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readDegrees(path)
	if err != nil {
		t.Fatalf("readDegrees() error = %v", err)
	}
	if want := []int{3, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("readDegrees() = %v, want %v", got, want)
	}
}

func TestReadDegrees_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.txt")
	if err := os.WriteFile(path, []byte("3\n-1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readDegrees(path); err == nil {
		t.Error("readDegrees() expected error for negative degree")
	}
}

func TestSummarize(t *testing.T) {
	got := summarize(map[string]int{"a": 1, "b": 4, "c": 1})
	want := DegreeSummary{Papers: 3, Min: 1, Max: 4, Mean: 2}
	if got != want {
		t.Errorf("summarize() = %+v, want %+v", got, want)
	}
	if got := summarize(nil); got != (DegreeSummary{}) {
		t.Errorf("summarize(nil) = %+v", got)
	}
}
