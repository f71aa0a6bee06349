package spectra

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrEmptySpectra reports a pack whose spectra list is empty.
var ErrEmptySpectra = errors.New("pack contains no spectra")

// DuplicateSpectrumIDsError reports spectrum ids that appear more than once
// within a pack. IDs is distinct and sorted ascending.
type DuplicateSpectrumIDsError struct {
	IDs []string
}

func (e *DuplicateSpectrumIDsError) Error() string {
	return fmt.Sprintf("duplicate spectrum ids: %s", strings.Join(e.IDs, ", "))
}

// MissingDefaultSpectrumError reports a defaultSpectrumID that matches no
// spectrum in the pack.
type MissingDefaultSpectrumError struct {
	DefaultSpectrumID string
}

func (e *MissingDefaultSpectrumError) Error() string {
	return fmt.Sprintf("default spectrum %q not present in pack", e.DefaultSpectrumID)
}

// Validate checks the pack's structural invariants: spectra non-empty, all
// spectrum ids distinct, and the default id matched. Checks run in that
// order and the first failure wins. On success the pack is returned
// unchanged so callers can chain decode, validate, and use. Validate never
// mutates or reorders anything; a failing pack stays inspectable for
// diagnostics.
func Validate(pack Pack) (Pack, error) {
	if len(pack.Spectra) == 0 {
		return pack, ErrEmptySpectra
	}

	counts := make(map[string]int, len(pack.Spectra))
	for _, s := range pack.Spectra {
		counts[s.ID]++
	}
	var duplicates []string
	for id, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, id)
		}
	}
	if len(duplicates) > 0 {
		slices.Sort(duplicates)
		return pack, &DuplicateSpectrumIDsError{IDs: duplicates}
	}

	if _, ok := pack.Spectrum(pack.DefaultSpectrumID); !ok {
		return pack, &MissingDefaultSpectrumError{DefaultSpectrumID: pack.DefaultSpectrumID}
	}
	return pack, nil
}
