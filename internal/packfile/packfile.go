// Package packfile reads spectra pack documents from local files.
//
// It is the thin plumbing between the filesystem and the spectra data model:
// read bytes, decode, optionally validate. Fetching packs from anywhere but
// the local filesystem is out of scope.
package packfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"prism/internal/spectra"
)

// Read decodes the pack document at path without validating it. Callers that
// want to inspect a broken pack (for example `pack validate` reporting
// invariant failures) read first and validate separately.
func Read(path string) (spectra.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spectra.Pack{}, fmt.Errorf("read pack file: %w", err)
	}
	pack, err := spectra.DecodePack(data)
	if err != nil {
		return spectra.Pack{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return pack, nil
}

// Load reads, decodes, and validates the pack document at path.
func Load(path string) (spectra.Pack, error) {
	pack, err := Read(path)
	if err != nil {
		return spectra.Pack{}, err
	}
	pack, err = spectra.Validate(pack)
	if err != nil {
		return spectra.Pack{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return pack, nil
}

// List returns the pack document paths under dir, sorted by name. A missing
// directory yields an empty list rather than an error so a fresh install can
// run `pack list` before any packs exist.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read pack directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
