package core

// Spectrum is a 3-channel spectral sample (reflectance or radiance).
// Absence of a lobe value is signalled by the (Spectrum, bool) convention at
// call sites, never by a zero Spectrum: a zero value means "defined but
// contributes nothing", which is a different thing.
type Spectrum struct {
	R, G, B float64
}

// NewSpectrum creates a new spectral sample
func NewSpectrum(r, g, b float64) Spectrum {
	return Spectrum{R: r, G: g, B: b}
}

// White returns unit reflectance in every channel
func White() Spectrum {
	return Spectrum{R: 1, G: 1, B: 1}
}

// Add returns the channel-wise sum of two spectra
func (s Spectrum) Add(other Spectrum) Spectrum {
	return Spectrum{s.R + other.R, s.G + other.G, s.B + other.B}
}

// Sub returns the channel-wise difference of two spectra
func (s Spectrum) Sub(other Spectrum) Spectrum {
	return Spectrum{s.R - other.R, s.G - other.G, s.B - other.B}
}

// Mul returns the channel-wise product of two spectra
func (s Spectrum) Mul(other Spectrum) Spectrum {
	return Spectrum{s.R * other.R, s.G * other.G, s.B * other.B}
}

// MulScalar returns the spectrum scaled by a scalar
func (s Spectrum) MulScalar(scalar float64) Spectrum {
	return Spectrum{s.R * scalar, s.G * scalar, s.B * scalar}
}

// Average returns the arithmetic mean of the channels
func (s Spectrum) Average() float64 {
	return (s.R + s.G + s.B) / 3.0
}

// Scalar reduces the spectrum to a single energy estimate using perceptual
// luminance weights: 0.299*R + 0.587*G + 0.114*B
func (s Spectrum) Scalar() float64 {
	return 0.299*s.R + 0.587*s.G + 0.114*s.B
}

// ToColor converts the spectral sample to the renderer color representation
func (s Spectrum) ToColor() Color {
	return Color{R: s.R, G: s.G, B: s.B}
}

// Color is the renderer-facing RGB color representation
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the channel-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// MulScalar returns the color scaled by a scalar
func (c Color) MulScalar(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Average returns the arithmetic mean of the channels
func (c Color) Average() float64 {
	return (c.R + c.G + c.B) / 3.0
}

// ToSpectrum converts the color back to a spectral sample
func (c Color) ToSpectrum() Spectrum {
	return Spectrum{R: c.R, G: c.G, B: c.B}
}
