package core

import (
	"math"
	"testing"
)

func TestVec3_ComponentwiseArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); !got.Equals(NewVec3(2, 4, 6)) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); !got.Equals(NewVec3(4, 10, 18)) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := a.AddScalar(1); !got.Equals(NewVec3(2, 3, 4)) {
		t.Errorf("AddScalar: expected (2,3,4), got %v", got)
	}
	if got := a.Negate(); !got.Equals(NewVec3(-1, -2, -3)) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
}

func TestVec3_Lerp(t *testing.T) {
	tests := []struct {
		name     string
		t        float64
		expected Vec3
	}{
		{"At start", 0.0, NewVec3(0, 0, 0)},
		{"At end", 1.0, NewVec3(2, 4, 8)},
		{"Midpoint", 0.5, NewVec3(1, 2, 4)},
	}

	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Lerp(b, tt.t)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_SqrtGuardsNegatives(t *testing.T) {
	v := NewVec3(4, -1, 0).Sqrt()
	if v.X != 2 {
		t.Errorf("Sqrt of 4 should be 2, got %f", v.X)
	}
	if v.Y != 0 {
		t.Errorf("Sqrt of negative should clamp to 0, got %f", v.Y)
	}
	if math.IsNaN(v.Y) {
		t.Error("Sqrt of negative must not produce NaN")
	}
	if v.Z != 0 {
		t.Errorf("Sqrt of 0 should be 0, got %f", v.Z)
	}
}

func TestVec3_ReciprocalGuardsZero(t *testing.T) {
	v := NewVec3(2, 0, -4).Reciprocal()
	if v.X != 0.5 {
		t.Errorf("Reciprocal of 2 should be 0.5, got %f", v.X)
	}
	if v.Y != 0 {
		t.Errorf("Reciprocal of 0 should yield 0, got %f", v.Y)
	}
	if math.IsInf(v.Y, 0) {
		t.Error("Reciprocal of 0 must not produce an infinity")
	}
	if v.Z != -0.25 {
		t.Errorf("Reciprocal of -4 should be -0.25, got %f", v.Z)
	}
}

func TestVec3_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected Vec3
	}{
		{"All in range", NewVec3(0.2, 0.5, 0.8), NewVec3(0.2, 0.5, 0.8)},
		{"Above max", NewVec3(1.5, 0.5, 2.0), NewVec3(1.0, 0.5, 1.0)},
		{"Below min", NewVec3(-0.5, 0.5, -2.0), NewVec3(0.0, 0.5, 0.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.Clamp(0, 1)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_DivideVec(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(2, 0, 6)

	got := a.DivideVec(b)
	if got.X != 0.5 {
		t.Errorf("Expected 0.5, got %f", got.X)
	}
	// Zero divisor maps to zero, not Inf
	if got.Y != 0 {
		t.Errorf("Expected 0 for zero divisor, got %f", got.Y)
	}
	if got.Z != 0.5 {
		t.Errorf("Expected 0.5, got %f", got.Z)
	}
}

func TestVec3_MaxComponent(t *testing.T) {
	if got := NewVec3(0.1, 0.9, 0.5).MaxComponent(); got != 0.9 {
		t.Errorf("Expected 0.9, got %f", got)
	}
	if got := NewVec3(-3, -1, -2).MaxComponent(); got != -1 {
		t.Errorf("Expected -1, got %f", got)
	}
}

func TestVec3_ApproxEquals(t *testing.T) {
	a := NewVec3(1, 1, 1)
	b := NewVec3(1+1e-9, 1-1e-9, 1)

	if !a.ApproxEquals(b, 1e-8) {
		t.Error("Vectors within tolerance should be approximately equal")
	}
	if a.ApproxEquals(b, 1e-10) {
		t.Error("Vectors outside tolerance should not be approximately equal")
	}
}
