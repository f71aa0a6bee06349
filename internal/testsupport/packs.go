package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"prism/internal/spectra"
)

// SamplePack returns a small pack that passes validation.
func SamplePack() spectra.Pack {
	return spectra.Pack{
		ID:      "infraredFilms",
		Name:    "Infrared Films",
		Version: 2,
		Spectra: []spectra.Spectrum{
			{
				ID:               "classicAerochrome",
				DisplayName:      "Classic Aerochrome",
				Summary:          "Infrared false-colour film emulation",
				LUTPath:          "luts/aerochrome.cube",
				LUTDigest:        "ab12cd34",
				DefaultIntensity: 0.85,
			},
			{
				ID:               "deepMagenta",
				DisplayName:      "Deep Magenta",
				Summary:          "Heavier foliage shift",
				LUTPath:          "luts/deep_magenta.cube",
				DefaultIntensity: 0.70,
			},
		},
		DefaultSpectrumID: "classicAerochrome",
	}
}

// WritePackFile encodes the pack into dir and returns the file path.
func WritePackFile(t testing.TB, dir string, pack spectra.Pack) string {
	t.Helper()

	data, err := pack.Encode()
	if err != nil {
		t.Fatalf("encode pack: %v", err)
	}
	path := filepath.Join(dir, pack.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write pack file: %v", err)
	}
	return path
}
