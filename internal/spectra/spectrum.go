package spectra

import "strings"

// DigestPending is the sentinel digest value meaning "no digest published
// yet". Matching is case-insensitive after trimming whitespace.
const DigestPending = "TBD"

// Intensity bounds. Every intensity that enters the model passes through
// ClampIntensity, so stored values always sit inside this range.
const (
	MinIntensity = 0.40
	MaxIntensity = 1.00
)

// ClampIntensity restricts an intensity value to [MinIntensity, MaxIntensity].
// Out-of-range inputs are normalized silently; this is never an error.
func ClampIntensity(value float64) float64 {
	if value < MinIntensity {
		return MinIntensity
	}
	if value > MaxIntensity {
		return MaxIntensity
	}
	return value
}

// ToneCurveParams adjusts shadow, midtone, and highlight response. 1.0 is
// neutral for all three; values nominally stay within [0.0, 2.0] but the
// range is a convention for pack authors, not enforced here.
type ToneCurveParams struct {
	Lift  float64
	Gamma float64
	Gain  float64
}

// NeutralToneCurve returns tone-curve parameters that leave the image untouched.
func NeutralToneCurve() ToneCurveParams {
	return ToneCurveParams{Lift: 1.0, Gamma: 1.0, Gain: 1.0}
}

// SpectrumPreset is a named intensity variant of a spectrum. A nil ToneCurve
// means the preset inherits the spectrum's curve.
type SpectrumPreset struct {
	ID        string
	Name      string
	Intensity float64
	ToneCurve *ToneCurveParams
}

// Spectrum is a single visual-effect profile. The LUT file named by LUTPath
// is applied by the rendering pipeline; this package only carries the
// reference and never touches the resource itself.
type Spectrum struct {
	ID               string
	DisplayName      string
	Summary          string
	LUTPath          string
	LUTDigest        string
	DefaultIntensity float64
	ToneCurve        *ToneCurveParams
	Presets          []SpectrumPreset
}

// HasUsableDigest reports whether LUTDigest carries a real content hash the
// renderer can verify the LUT resource against. Empty, whitespace-only, and
// DigestPending values all count as "no digest".
func (s Spectrum) HasUsableDigest() bool {
	digest := strings.TrimSpace(s.LUTDigest)
	if digest == "" {
		return false
	}
	return !strings.EqualFold(digest, DigestPending)
}
