package shader

import "github.com/nickybu/sunflow/pkg/brdf"

// ParamBRDF is the parameter name the shader resolves its BRDF model from.
const ParamBRDF = "brdf"

// Parameters is a named lookup of configuration values for a shader update.
type Parameters struct {
	brdfs map[string]brdf.BRDF
}

// NewParameters creates an empty parameter list
func NewParameters() *Parameters {
	return &Parameters{brdfs: make(map[string]brdf.BRDF)}
}

// AddBRDF registers a BRDF model under a parameter name
func (p *Parameters) AddBRDF(name string, model brdf.BRDF) {
	p.brdfs[name] = model
}

// BRDF resolves a BRDF model by name, falling back to the given instance
// when the parameter is absent
func (p *Parameters) BRDF(name string, fallback brdf.BRDF) brdf.BRDF {
	if model, ok := p.brdfs[name]; ok {
		return model
	}
	return fallback
}
