package spectra

import "time"

// Pack is a named collection of Spectra plus a designated default. Version is
// always at least 1; decode coerces anything lower. A zero UpdatedAt means
// the source supplied no usable timestamp.
type Pack struct {
	ID                string
	Name              string
	Description       string
	Version           int
	UpdatedAt         time.Time
	Spectra           []Spectrum
	DefaultSpectrumID string
}

// Spectrum returns the spectrum with the given id. The pack is scanned
// directly on each call; packs are small and immutable, so no index is
// cached. When duplicate ids exist (possible before validation) the last
// entry wins, and the duplication is reported by Validate, not here.
func (p Pack) Spectrum(id string) (Spectrum, bool) {
	var (
		found Spectrum
		ok    bool
	)
	for _, s := range p.Spectra {
		if s.ID == id {
			found = s
			ok = true
		}
	}
	return found, ok
}

// DefaultSpectrum returns the spectrum named by DefaultSpectrumID. It reports
// false rather than erroring when the id is unmatched; surfacing that as a
// failure is Validate's job.
func (p Pack) DefaultSpectrum() (Spectrum, bool) {
	return p.Spectrum(p.DefaultSpectrumID)
}
