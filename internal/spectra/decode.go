package spectra

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout is the strict wire format for updatedAt.
const timestampLayout = time.RFC3339

// DecodeError reports a structurally invalid record: a missing required
// field or a document that does not match the wire shape. Decode errors are
// fatal to the decode operation; no partial value is returned alongside one.
type DecodeError struct {
	Entity string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("decode %s: missing required field %q", e.Entity, e.Field)
	case e.Err != nil:
		return fmt.Sprintf("decode %s: %v", e.Entity, e.Err)
	default:
		return fmt.Sprintf("decode %s: invalid record", e.Entity)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

func missingField(entity, field string) *DecodeError {
	return &DecodeError{Entity: entity, Field: field}
}

// Wire records. Pointer fields distinguish absent from zero-valued input;
// the field names below are the wire contract and must not be renamed.
// Slice fields use omitzero so a present empty list round-trips as [] while
// an absent one stays omitted.
type toneCurveRecord struct {
	Lift  *float64 `json:"lift,omitempty"`
	Gamma *float64 `json:"gamma,omitempty"`
	Gain  *float64 `json:"gain,omitempty"`
}

type presetRecord struct {
	ID        *string          `json:"id,omitempty"`
	Name      *string          `json:"name,omitempty"`
	Intensity *float64         `json:"intensity,omitempty"`
	ToneCurve *toneCurveRecord `json:"toneCurve,omitempty"`
}

type spectrumRecord struct {
	ID               *string          `json:"id,omitempty"`
	DisplayName      *string          `json:"displayName,omitempty"`
	Summary          *string          `json:"summary,omitempty"`
	LUTPath          *string          `json:"lutPath,omitempty"`
	LUTDigest        *string          `json:"lutDigest,omitempty"`
	DefaultIntensity *float64         `json:"defaultIntensity,omitempty"`
	ToneCurve        *toneCurveRecord `json:"toneCurve,omitempty"`
	Presets          []presetRecord   `json:"presets,omitzero"`
}

type packRecord struct {
	ID                *string           `json:"id,omitempty"`
	Name              *string           `json:"name,omitempty"`
	Description       *string           `json:"description,omitempty"`
	Version           *int              `json:"version,omitempty"`
	UpdatedAt         *string           `json:"updatedAt,omitempty"`
	Spectra           []json.RawMessage `json:"spectra,omitzero"`
	DefaultSpectrumID *string           `json:"defaultSpectrumID,omitempty"`
}

// DecodeSpectrum decodes a single spectrum wire record. Required fields are
// id, displayName, summary, lutPath, and defaultIntensity; all intensities
// are clamped on the way in. Cross-spectrum invariants are not checked here.
func DecodeSpectrum(data []byte) (Spectrum, error) {
	var rec spectrumRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Spectrum{}, &DecodeError{Entity: "spectrum", Err: err}
	}
	return spectrumFromRecord(rec)
}

func spectrumFromRecord(rec spectrumRecord) (Spectrum, error) {
	switch {
	case rec.ID == nil:
		return Spectrum{}, missingField("spectrum", "id")
	case rec.DisplayName == nil:
		return Spectrum{}, missingField("spectrum", "displayName")
	case rec.Summary == nil:
		return Spectrum{}, missingField("spectrum", "summary")
	case rec.LUTPath == nil:
		return Spectrum{}, missingField("spectrum", "lutPath")
	case rec.DefaultIntensity == nil:
		return Spectrum{}, missingField("spectrum", "defaultIntensity")
	}

	s := Spectrum{
		ID:               *rec.ID,
		DisplayName:      *rec.DisplayName,
		Summary:          *rec.Summary,
		LUTPath:          *rec.LUTPath,
		DefaultIntensity: ClampIntensity(*rec.DefaultIntensity),
	}
	if rec.LUTDigest != nil {
		s.LUTDigest = *rec.LUTDigest
	}
	if rec.ToneCurve != nil {
		curve := toneCurveFromRecord(*rec.ToneCurve)
		s.ToneCurve = &curve
	}
	if rec.Presets != nil {
		s.Presets = make([]SpectrumPreset, 0, len(rec.Presets))
		for idx, pr := range rec.Presets {
			preset, err := presetFromRecord(pr)
			if err != nil {
				return Spectrum{}, fmt.Errorf("presets[%d]: %w", idx, err)
			}
			s.Presets = append(s.Presets, preset)
		}
	}
	return s, nil
}

func presetFromRecord(rec presetRecord) (SpectrumPreset, error) {
	switch {
	case rec.ID == nil:
		return SpectrumPreset{}, missingField("preset", "id")
	case rec.Name == nil:
		return SpectrumPreset{}, missingField("preset", "name")
	case rec.Intensity == nil:
		return SpectrumPreset{}, missingField("preset", "intensity")
	}

	preset := SpectrumPreset{
		ID:        *rec.ID,
		Name:      *rec.Name,
		Intensity: ClampIntensity(*rec.Intensity),
	}
	if rec.ToneCurve != nil {
		curve := toneCurveFromRecord(*rec.ToneCurve)
		preset.ToneCurve = &curve
	}
	return preset, nil
}

func toneCurveFromRecord(rec toneCurveRecord) ToneCurveParams {
	curve := NeutralToneCurve()
	if rec.Lift != nil {
		curve.Lift = *rec.Lift
	}
	if rec.Gamma != nil {
		curve.Gamma = *rec.Gamma
	}
	if rec.Gain != nil {
		curve.Gain = *rec.Gain
	}
	return curve
}

// DecodePack decodes a pack wire record. Required fields are id, name,
// defaultSpectrumID, and spectra; a failing spectrum element fails the whole
// decode and names the element. version defaults to 1 and is coerced to at
// least 1. A malformed updatedAt degrades to absent rather than failing.
// DecodePack performs no cross-field validation; run Validate afterwards.
func DecodePack(data []byte) (Pack, error) {
	var rec packRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Pack{}, &DecodeError{Entity: "pack", Err: err}
	}

	switch {
	case rec.ID == nil:
		return Pack{}, missingField("pack", "id")
	case rec.Name == nil:
		return Pack{}, missingField("pack", "name")
	case rec.DefaultSpectrumID == nil:
		return Pack{}, missingField("pack", "defaultSpectrumID")
	case rec.Spectra == nil:
		return Pack{}, missingField("pack", "spectra")
	}

	pack := Pack{
		ID:                *rec.ID,
		Name:              *rec.Name,
		Version:           1,
		DefaultSpectrumID: *rec.DefaultSpectrumID,
	}
	if rec.Description != nil {
		pack.Description = *rec.Description
	}
	if rec.Version != nil && *rec.Version > 1 {
		pack.Version = *rec.Version
	}
	if rec.UpdatedAt != nil {
		if ts, err := time.Parse(timestampLayout, *rec.UpdatedAt); err == nil {
			pack.UpdatedAt = ts
		}
	}

	pack.Spectra = make([]Spectrum, 0, len(rec.Spectra))
	for idx, raw := range rec.Spectra {
		s, err := DecodeSpectrum(raw)
		if err != nil {
			return Pack{}, fmt.Errorf("spectra[%d]: %w", idx, err)
		}
		pack.Spectra = append(pack.Spectra, s)
	}
	return pack, nil
}
