package ccdf

import (
	"math"
	"reflect"
	"testing"
)

func TestCompute(t *testing.T) {
	got := Compute([]int{1, 1, 2, 3, 1, 2})
	want := []Point{
		{Degree: 1, Value: 1 - 3.0/6},
		{Degree: 2, Value: 1 - 5.0/6},
		{Degree: 3, Value: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("Compute() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Degree != want[i].Degree || math.Abs(got[i].Value-want[i].Value) > 1e-12 {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCompute_NonIncreasing(t *testing.T) {
	degrees := []int{5, 1, 1, 8, 2, 2, 2, 3, 13, 1, 1, 4}
	points := Compute(degrees)

	for i := 1; i < len(points); i++ {
		if points[i].Degree <= points[i-1].Degree {
			t.Errorf("degrees not ascending at %d", i)
		}
		if points[i].Value > points[i-1].Value {
			t.Errorf("CCDF increases at degree %d: %v > %v", points[i].Degree, points[i].Value, points[i-1].Value)
		}
	}
	if last := points[len(points)-1]; last.Value != 0 {
		t.Errorf("CCDF at max degree = %v, want 0", last.Value)
	}
	// Everything but the smallest degree lies to the right of the first point.
	if first := points[0]; math.Abs(first.Value-(1-4.0/12)) > 1e-12 {
		t.Errorf("CCDF at min degree = %v", first.Value)
	}
}

func TestCompute_SingleValue(t *testing.T) {
	want := []Point{{Degree: 4, Value: 0}}
	if got := Compute([]int{4, 4, 4}); !reflect.DeepEqual(got, want) {
		t.Errorf("Compute() = %v, want %v", got, want)
	}
}

func TestCompute_Empty(t *testing.T) {
	if got := Compute(nil); got != nil {
		t.Errorf("Compute(nil) = %v, want nil", got)
	}
}

func TestCompare(t *testing.T) {
	c := Compare([]int{1, 2, 3}, []int{1, 1})
	if len(c.Old) != 3 || len(c.New) != 1 {
		t.Errorf("Compare() = %+v", c)
	}
}
