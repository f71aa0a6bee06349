package spectra

import (
	"encoding/json"
	"fmt"
)

// Encode serialises the pack back to its wire representation. Absent
// optionals (description, updatedAt, lutDigest, toneCurve, presets) are
// omitted rather than written as zero values, while a present empty list is
// written as [], so decoding the output yields a field-wise equal pack that
// validates identically.
func (p Pack) Encode() ([]byte, error) {
	version := p.Version
	if version < 1 {
		version = 1
	}

	rec := packRecord{
		ID:                &p.ID,
		Name:              &p.Name,
		Version:           &version,
		DefaultSpectrumID: &p.DefaultSpectrumID,
	}
	if p.Description != "" {
		rec.Description = &p.Description
	}
	if !p.UpdatedAt.IsZero() {
		ts := p.UpdatedAt.Format(timestampLayout)
		rec.UpdatedAt = &ts
	}

	rec.Spectra = make([]json.RawMessage, 0, len(p.Spectra))
	for idx, s := range p.Spectra {
		raw, err := json.Marshal(spectrumToRecord(s))
		if err != nil {
			return nil, fmt.Errorf("encode spectra[%d]: %w", idx, err)
		}
		rec.Spectra = append(rec.Spectra, raw)
	}
	return json.Marshal(rec)
}

func spectrumToRecord(s Spectrum) spectrumRecord {
	rec := spectrumRecord{
		ID:               &s.ID,
		DisplayName:      &s.DisplayName,
		Summary:          &s.Summary,
		LUTPath:          &s.LUTPath,
		DefaultIntensity: &s.DefaultIntensity,
	}
	if s.LUTDigest != "" {
		rec.LUTDigest = &s.LUTDigest
	}
	if s.ToneCurve != nil {
		rec.ToneCurve = toneCurveToRecord(*s.ToneCurve)
	}
	if s.Presets != nil {
		rec.Presets = make([]presetRecord, 0, len(s.Presets))
		for idx := range s.Presets {
			rec.Presets = append(rec.Presets, presetToRecord(s.Presets[idx]))
		}
	}
	return rec
}

func presetToRecord(preset SpectrumPreset) presetRecord {
	rec := presetRecord{
		ID:        &preset.ID,
		Name:      &preset.Name,
		Intensity: &preset.Intensity,
	}
	if preset.ToneCurve != nil {
		rec.ToneCurve = toneCurveToRecord(*preset.ToneCurve)
	}
	return rec
}

func toneCurveToRecord(curve ToneCurveParams) *toneCurveRecord {
	return &toneCurveRecord{
		Lift:  &curve.Lift,
		Gamma: &curve.Gamma,
		Gain:  &curve.Gain,
	}
}
