package utils

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		values   []float64
		expected float64
	}{
		{[]float64{1, 2, 3, 4, 5}, 3.0},
		{[]float64{0.31, 0.33, 0.35}, 0.33},
		{[]float64{0.5}, 0.5},
		{[]float64{}, 0.0},
		{[]float64{-10, 10}, 0.0},
	}

	for _, tt := range tests {
		result := Mean(tt.values)
		if math.Abs(result-tt.expected) > 1e-9 {
			t.Errorf("Mean(%v) = %f, expected %f", tt.values, result, tt.expected)
		}
	}
}

func TestVariance(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	variance := Variance(values)

	// Variance of 1,2,3,4,5 is 2.0
	expected := 2.0
	if math.Abs(variance-expected) > 1e-9 {
		t.Errorf("Variance(%v) = %f, expected %f", values, variance, expected)
	}

	// Empty slice
	emptyVariance := Variance([]float64{})
	if emptyVariance != 0.0 {
		t.Errorf("Variance of empty slice should be 0, got %f", emptyVariance)
	}

	// Identical values have zero spread
	flat := Variance([]float64{0.33, 0.33, 0.33})
	if flat != 0.0 {
		t.Errorf("Variance of identical values should be 0, got %f", flat)
	}
}

func TestStdDev(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	stddev := StdDev(values)

	// StdDev of 1,2,3,4,5 is sqrt(2.0) ≈ 1.414
	expected := math.Sqrt(2.0)
	if math.Abs(stddev-expected) > 1e-9 {
		t.Errorf("StdDev(%v) = %f, expected %f", values, stddev, expected)
	}
}
