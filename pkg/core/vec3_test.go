package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vec3Equals(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vec3Equals(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	if dot := a.Dot(b); dot != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %v", dot)
	}

	cross := a.Cross(b)
	if !vec3Equals(cross, NewVec3(0, 0, 1), tolerance) {
		t.Errorf("Expected x cross y = z, got %v", cross)
	}

	// Cross product is anti-commutative
	reverse := b.Cross(a)
	if !vec3Equals(reverse, NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected y cross x = -z, got %v", reverse)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if length := v.Length(); math.Abs(length-5) > tolerance {
		t.Errorf("Expected length 5, got %v", length)
	}
	if lengthSq := v.LengthSquared(); math.Abs(lengthSq-25) > tolerance {
		t.Errorf("Expected squared length 25, got %v", lengthSq)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if !vec3Equals(v, NewVec3(0.6, 0.8, 0), tolerance) {
		t.Errorf("Expected (0.6, 0.8, 0), got %v", v)
	}

	// Normalizing the zero vector must not produce NaN
	zero := Vec3{}.Normalize()
	if !vec3Equals(zero, Vec3{}, tolerance) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !vec3Equals(v, NewVec3(0, 0.5, 1), tolerance) {
		t.Errorf("Expected (0, 0.5, 1), got %v", v)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1, 0).GammaCorrect(2)
	if !vec3Equals(v, NewVec3(0.5, 1, 0), tolerance) {
		t.Errorf("Expected (0.5, 1, 0), got %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 2))

	point := ray.At(2)
	if !vec3Equals(point, NewVec3(1, 2, 7), tolerance) {
		t.Errorf("Expected (1, 2, 7), got %v", point)
	}

	if ray.TMin != DefaultTMin || ray.TMax != DefaultTMax {
		t.Errorf("Expected default interval [%v, %v], got [%v, %v]",
			DefaultTMin, DefaultTMax, ray.TMin, ray.TMax)
	}
}
