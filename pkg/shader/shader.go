// Package shader implements a bidirectional BRDF shading core: backward
// radiance evaluation for camera rays and forward stochastic scattering for
// photon-map construction. Both paths consult a pluggable BRDF model and are
// stateless across invocations, so a host renderer can call them concurrently
// from a worker pool.
package shader

import (
	"fmt"
	"math"

	"github.com/nickybu/sunflow/pkg/brdf"
	"github.com/nickybu/sunflow/pkg/core"
)

// Roulette and hemisphere-elevation draws use distinct sub-streams so the
// two dimensions stay independent and reproducible.
var (
	rouletteKey   = core.StreamKey{Stream: 0, SubStream: 0, Dimension: 1}
	hemisphereKey = core.StreamKey{Stream: 0, SubStream: 1, Dimension: 1}
)

// Shader adapts a BRDF model into the renderer's shading contract. The BRDF
// reference is set once at configuration time and treated as read-only while
// rendering; the shader holds no other state.
type Shader struct {
	brdf   brdf.BRDF
	logger core.Logger
}

// New creates a shader bound to a BRDF model. The model may be nil if a
// later Update call supplies one.
func New(model brdf.BRDF) *Shader {
	return &Shader{brdf: model}
}

// SetLogger installs a logger for degenerate-geometry diagnostics
func (s *Shader) SetLogger(logger core.Logger) {
	s.logger = logger
}

// BRDF returns the configured BRDF model
func (s *Shader) BRDF() brdf.BRDF {
	return s.brdf
}

// Update resolves the shader's BRDF model from a parameter list, keeping the
// previously configured model when the parameter is absent. A shader without
// a model cannot evaluate anything, so that case fails here rather than
// rendering black surfaces later.
func (s *Shader) Update(params *Parameters) error {
	model := params.BRDF(ParamBRDF, s.brdf)
	if model == nil {
		return fmt.Errorf("shader: no BRDF model configured for parameter %q", ParamBRDF)
	}
	s.brdf = model
	return nil
}

// GetRadiance computes the outgoing radiance toward the camera for a single
// surface interaction: diffuse response through the host's direct-lighting
// integrator, plus a Fresnel-weighted specular contribution traced
// recursively when the BRDF has a specular lobe.
func (s *Shader) GetRadiance(state ShadingState) core.Color {
	if s.brdf == nil {
		return core.Color{}
	}

	ray := state.Ray()

	// make sure we are on the right side of the material
	normal, _ := core.FaceForward(state.Normal(), ray.Direction)
	normal, ok := normal.NormalizeChecked()
	if !ok {
		s.logf("shader: degenerate normal at %v, returning black", state.Point())
		return core.Color{}
	}

	// direct lighting
	state.InitLightSamples()
	state.InitCausticSamples()

	inDir, ok := state.TransformWorldToObject(ray.Direction).NormalizeChecked()
	if !ok {
		s.logf("shader: degenerate incident direction at %v, returning black", state.Point())
		return core.Color{}
	}

	sample := s.brdf.SampleF(inDir, normal)
	outDir := sample.Direction.Normalize()
	refDir := state.TransformObjectToWorld(sample.Direction)

	var diffuse core.Spectrum
	if d, ok := s.brdf.F(inDir, outDir, brdf.LobeDiffuse); ok {
		diffuse = d
	}
	// The π factor converts the BRDF value into the convention the host's
	// diffuse integrator expects; its cosine-weighted sampling already
	// carries the matching 1/π.
	lr := state.Diffuse(diffuse.MulScalar(math.Pi).ToColor())

	if _, ok := s.brdf.F(inDir, outDir, brdf.LobeSpecular); !ok {
		// purely diffuse surface
		return lr
	}

	// Blend the sampled throughput toward full reflectance at grazing angles
	weight := fresnelSchlick(state.CosND())
	r := sample.Value
	reflectance := r.Add(core.White().Sub(r).MulScalar(weight))

	refRay := core.NewRay(state.Point(), refDir)
	traced := state.TraceReflection(refRay, 0)
	return lr.Add(reflectance.ToColor().Mul(traced))
}

// ScatterPhoton decides how an incoming photon of the given power continues
// at this surface: diffuse re-emission, specular reflection, or absorption,
// chosen by Russian roulette over per-lobe energy estimates. The photon is
// deposited in the store before the decision, and power is rescaled in place
// so surviving paths stay unbiased.
func (s *Shader) ScatterPhoton(state ShadingState, photons PhotonStore, power *core.Color) {
	if s.brdf == nil {
		return
	}

	ray := state.Ray()

	// make sure we are on the right side of the material
	normal, flipped := core.FaceForward(state.Normal(), ray.Direction)
	normal, ok := normal.NormalizeChecked()
	if !ok {
		s.logf("shader: degenerate normal at %v, absorbing photon", state.Point())
		return
	}

	inDir, ok := state.TransformWorldToObject(ray.Direction).NormalizeChecked()
	if !ok {
		s.logf("shader: degenerate incident direction at %v, absorbing photon", state.Point())
		return
	}

	sample := s.brdf.SampleF(inDir, normal)
	outDir := sample.Direction.Normalize()

	var diffuseSpectrum core.Spectrum
	if d, ok := s.brdf.F(inDir, outDir, brdf.LobeDiffuse); ok {
		diffuseSpectrum = d
	}
	diffuseSpectrum = diffuseSpectrum.MulScalar(math.Pi)
	diffuse := diffuseSpectrum.ToColor()

	// The photon contributes at this bounce whether or not it continues
	photons.Store(ray.Direction, *power, diffuse)

	basis := state.Basis()
	if flipped {
		basis = core.NewOrthoNormalBasis(normal)
	}

	if _, hasSpecular := s.brdf.F(inDir, outDir, brdf.LobeSpecular); !hasSpecular {
		// purely diffuse surface: survive with probability avg
		avg := diffuse.Average()
		rnd := state.Sampler().Get1D(rouletteKey)
		if rnd < avg {
			*power = power.Mul(diffuse).MulScalar(1.0 / avg)
			s.traceDiffusePhoton(state, photons, basis, *power, rnd/avg)
		}
		return
	}

	// Three-way roulette over [0,d) ∪ [d,d+r) ∪ [d+r,1)
	d := diffuseSpectrum.Scalar()
	r := sample.Value.Scalar()
	rnd := state.Sampler().Get1D(rouletteKey)
	switch {
	case rnd < d:
		*power = power.Mul(diffuse).MulScalar(1.0 / d)
		s.traceDiffusePhoton(state, photons, basis, *power, rnd/d)
	case rnd < d+r:
		if d <= 0 {
			// no diffuse energy to renormalize by; absorb instead of
			// propagating Inf through the power
			return
		}
		cos := -normal.Dot(ray.Direction)
		*power = power.Mul(diffuse).MulScalar(1.0 / d)
		dir := ray.Direction.Add(normal.Multiply(2 * cos))
		photons.TraceReflectionPhoton(core.NewRay(state.Point(), dir), *power)
	}
	// otherwise absorbed
}

// traceDiffusePhoton continues a surviving photon along a cosine-weighted
// direction in the local hemisphere. The roulette draw is reused (rescaled
// to [0,1)) for the azimuth angle, so one fresh draw covers the elevation.
func (s *Shader) traceDiffusePhoton(state ShadingState, photons PhotonStore, basis core.OrthoNormalBasis, power core.Color, azimuth float64) {
	u := 2 * math.Pi * azimuth
	v := state.Sampler().Get1D(hemisphereKey)
	sv := math.Sqrt(v)
	w := basis.ToWorld(core.NewVec3(math.Cos(u)*sv, math.Sin(u)*sv, math.Sqrt(1-v)))
	photons.TraceDiffusePhoton(core.NewRay(state.Point(), w), power)
}

// fresnelSchlick computes the Schlick approximation weight c^5, c = 1−cosθ.
// The cosine is clamped to [0,1] so the weight cannot leave [0,1] on
// back-facing or near-grazing geometry.
func fresnelSchlick(cos float64) float64 {
	c := 1 - clamp01(cos)
	c2 := c * c
	return c2 * c2 * c
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func (s *Shader) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
