package core

import (
	"math"
	"testing"
)

func TestOrthoNormalBasis_Orthonormality(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(1, 2, 3).Normalize(),
		NewVec3(-0.5, 0.3, -0.8).Normalize(),
	}

	const tolerance = 1e-12
	for _, n := range normals {
		basis := NewOrthoNormalBasis(n)

		if math.Abs(basis.Tangent().Length()-1) > tolerance ||
			math.Abs(basis.Bitangent().Length()-1) > tolerance {
			t.Errorf("Basis axes for %v are not unit length", n)
		}
		if math.Abs(basis.Tangent().Dot(basis.Bitangent())) > tolerance ||
			math.Abs(basis.Tangent().Dot(basis.Normal())) > tolerance ||
			math.Abs(basis.Bitangent().Dot(basis.Normal())) > tolerance {
			t.Errorf("Basis axes for %v are not orthogonal", n)
		}
	}
}

func TestOrthoNormalBasis_LocalZMapsToNormal(t *testing.T) {
	normal := NewVec3(1, -2, 0.5).Normalize()
	basis := NewOrthoNormalBasis(normal)

	result := basis.ToWorld(NewVec3(0, 0, 1))
	if result.Subtract(normal).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", normal, result)
	}
}

func TestOrthoNormalBasis_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		normal Vec3
		vector Vec3
	}{
		{
			name:   "Axis-aligned normal",
			normal: NewVec3(0, 0, 1),
			vector: NewVec3(0.3, -0.4, 0.86),
		},
		{
			name:   "Tilted normal",
			normal: NewVec3(1, 1, 1).Normalize(),
			vector: NewVec3(-0.2, 0.5, 0.7),
		},
		{
			name:   "Near X-axis normal",
			normal: NewVec3(0.95, 0.1, 0.05).Normalize(),
			vector: NewVec3(0.1, 0.9, -0.3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			basis := NewOrthoNormalBasis(tt.normal)
			result := basis.ToLocal(basis.ToWorld(tt.vector))

			const tolerance = 1e-12
			if result.Subtract(tt.vector).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.vector, result)
			}
		})
	}
}
