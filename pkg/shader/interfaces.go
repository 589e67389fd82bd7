package shader

import "github.com/nickybu/sunflow/pkg/core"

// ShadingState is the host renderer's view of a single surface interaction.
// The shading core reads it; it never mutates host-owned data.
type ShadingState interface {
	// Point returns the surface position
	Point() core.Vec3

	// Normal returns the shading normal as produced by intersection,
	// before any face-forward correction
	Normal() core.Vec3

	// Ray returns the incident ray that produced this interaction
	Ray() core.Ray

	// CosND returns the cosine between the shading normal and the
	// negated incident direction
	CosND() float64

	// Basis returns the orthonormal basis at the surface point
	Basis() core.OrthoNormalBasis

	// TransformWorldToObject maps a world-space vector into object space
	TransformWorldToObject(v core.Vec3) core.Vec3

	// TransformObjectToWorld maps an object-space vector into world space
	TransformObjectToWorld(v core.Vec3) core.Vec3

	// Sampler returns the keyed uniform random source for this interaction
	Sampler() core.Sampler

	// InitLightSamples populates the direct-lighting sample cache
	InitLightSamples()

	// InitCausticSamples populates the caustic sample cache
	InitCausticSamples()

	// Diffuse runs the host's direct-lighting integration for the given
	// diffuse color and returns the accumulated outgoing radiance
	Diffuse(diffuse core.Color) core.Color

	// TraceReflection traces a reflection ray at the given depth and
	// returns the incoming radiance. Depth bounding is the host's job.
	TraceReflection(ray core.Ray, depth int) core.Color
}

// PhotonStore is the host's photon-map capability: it receives photon
// deposits and continues photon paths. Each continuation is a synchronous
// call back into the host tracer, which may recurse into the scatterer on
// deeper bounces; the host enforces the maximum depth.
type PhotonStore interface {
	// Store deposits a photon at the current point
	Store(dir core.Vec3, power core.Color, diffuse core.Color)

	// TraceDiffusePhoton continues a diffusely scattered photon path.
	// Ownership of the power value transfers to the host.
	TraceDiffusePhoton(ray core.Ray, power core.Color)

	// TraceReflectionPhoton continues a specularly reflected photon path
	TraceReflectionPhoton(ray core.Ray, power core.Color)
}
