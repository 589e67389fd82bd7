package core

import "math"

// OrthoNormalBasis is a local shading frame (tangent, bitangent, normal)
// used to map hemisphere-sampled directions into world space.
type OrthoNormalBasis struct {
	tangent   Vec3
	bitangent Vec3
	normal    Vec3
}

// NewOrthoNormalBasis builds a basis around a unit normal.
// Find a vector perpendicular to the normal, avoiding near-parallel picks.
func NewOrthoNormalBasis(normal Vec3) OrthoNormalBasis {
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}

	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return OrthoNormalBasis{tangent: tangent, bitangent: bitangent, normal: normal}
}

// ToWorld transforms a local-frame vector into world space
func (b OrthoNormalBasis) ToWorld(v Vec3) Vec3 {
	return b.tangent.Multiply(v.X).Add(b.bitangent.Multiply(v.Y)).Add(b.normal.Multiply(v.Z))
}

// ToLocal transforms a world-space vector into the local frame
func (b OrthoNormalBasis) ToLocal(v Vec3) Vec3 {
	return NewVec3(v.Dot(b.tangent), v.Dot(b.bitangent), v.Dot(b.normal))
}

// Normal returns the basis normal (local +Z)
func (b OrthoNormalBasis) Normal() Vec3 {
	return b.normal
}

// Tangent returns the basis tangent (local +X)
func (b OrthoNormalBasis) Tangent() Vec3 {
	return b.tangent
}

// Bitangent returns the basis bitangent (local +Y)
func (b OrthoNormalBasis) Bitangent() Vec3 {
	return b.bitangent
}
