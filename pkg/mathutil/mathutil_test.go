package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected float64
	}{
		{name: "Round up", val: 1.006, expected: 1.01},
		{name: "Round down", val: 1.004, expected: 1.0},
		{name: "Negative", val: -1.006, expected: -1.01},
		{name: "Already exact", val: 3.50, expected: 3.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.val); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.val, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{name: "Within", val1: 100.001, val2: 100.002, tolerance: 0.01, expected: true},
		{name: "Exactly at tolerance", val1: 0.0, val2: 0.01, tolerance: 0.01, expected: true},
		{name: "Outside", val1: 1.0, val2: 1.1, tolerance: 0.01, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WithinTolerance(tt.val1, tt.val2, tt.tolerance); got != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v", tt.val1, tt.val2, tt.tolerance, got, tt.expected)
			}
		})
	}
}
