// Package brdf defines the BRDF capability consumed by the shading core.
// Concrete BRDF models are supplied by the host; this package only fixes the
// contract they satisfy.
package brdf

import "github.com/nickybu/sunflow/pkg/core"

// Lobe selects a named component of a BRDF's response.
type Lobe int

const (
	lobeInvalid Lobe = iota
	LobeDiffuse
	LobeSpecular
)

// LobeFromName looks up a lobe by its name.
func LobeFromName(name string) Lobe {
	switch name {
	case "diffuse":
		return LobeDiffuse
	case "specular":
		return LobeSpecular
	}

	return lobeInvalid
}

func (l Lobe) String() string {
	switch l {
	case LobeDiffuse:
		return "diffuse"
	case LobeSpecular:
		return "specular"
	}

	return "invalid"
}

// Sample pairs an importance-sampled outgoing direction with its throughput
// weight. Produced by one SampleF call and consumed immediately.
type Sample struct {
	Direction core.Vec3     // Sampled outgoing direction, local frame
	Value     core.Spectrum // Throughput weight correcting for sampling bias
}

// BRDF is a bidirectional reflectance model with independently evaluable
// lobes. Implementations must be safe for concurrent read-only use during
// rendering: the shading core calls them from many rays at once.
type BRDF interface {
	// SampleF importance-samples an outgoing direction for the given unit
	// incident direction and unit surface normal.
	SampleF(incident, normal core.Vec3) Sample

	// F evaluates one lobe for an incident/outgoing direction pair.
	// The second return is false when the model has no such lobe; that is a
	// normal control path, not an error, and is distinct from a zero value.
	F(incident, outgoing core.Vec3, lobe Lobe) (core.Spectrum, bool)
}
