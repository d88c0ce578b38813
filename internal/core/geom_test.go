package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF(15.5, 0, 10) = %f, expected 10", got)
	}
	if got := ClampF(5.5, 0, 10); got != 5.5 {
		t.Errorf("ClampF(5.5, 0, 10) = %f, expected 5.5", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		deg  float64
		want Vec2
	}{
		{"zero angle", V(3, 4), 0, V(3, 4)},
		{"quarter turn", V(1, 0), 90, V(0, 1)},
		{"half turn", V(1, 2), 180, V(-1, -2)},
		{"negative quarter", V(0, 1), -90, V(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(DegToRad(tc.deg))
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Rotate(%v, %v°) = %v, expected %v", tc.v, tc.deg, got, tc.want)
			}
		})
	}
}

func TestVec2RotatePreservesLength(t *testing.T) {
	v := V(345, -345)
	for deg := -30; deg <= 30; deg++ {
		got := v.Rotate(DegToRad(float64(deg))).Len()
		if math.Abs(got-v.Len()) > 1e-9 {
			t.Fatalf("Rotate by %d° changed length: %f -> %f", deg, v.Len(), got)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	if got := V(1, 2).Add(V(3, 4)); got != V(4, 6) {
		t.Errorf("Add = %v, expected (4, 6)", got)
	}
	if got := V(1, -2).Scale(3); got != V(3, -6) {
		t.Errorf("Scale = %v, expected (3, -6)", got)
	}
	if got := V(3, 4).Len(); got != 5 {
		t.Errorf("Len = %f, expected 5", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
