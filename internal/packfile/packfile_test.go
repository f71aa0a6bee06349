package packfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"prism/internal/packfile"
	"prism/internal/spectra"
	"prism/internal/testsupport"
)

func TestLoadValidPack(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WritePackFile(t, dir, testsupport.SamplePack())

	pack, err := packfile.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if pack.ID != "infraredFilms" || len(pack.Spectra) != 2 {
		t.Fatalf("unexpected pack: %+v", pack)
	}
}

func TestLoadSurfacesValidationError(t *testing.T) {
	dir := t.TempDir()
	broken := testsupport.SamplePack()
	broken.DefaultSpectrumID = "missing"
	path := testsupport.WritePackFile(t, dir, broken)

	_, err := packfile.Load(path)
	var missingErr *spectra.MissingDefaultSpectrumError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingDefaultSpectrumError, got %v", err)
	}

	// Read leaves validation to the caller.
	pack, err := packfile.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if pack.DefaultSpectrumID != "missing" {
		t.Fatalf("unexpected pack: %+v", pack)
	}
}

func TestReadRejectsMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := packfile.Read(path)
	var decodeErr *spectra.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.json", "a.JSON", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := packfile.List(dir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 pack files, got %v", paths)
	}
	if filepath.Base(paths[0]) != "a.JSON" || filepath.Base(paths[1]) != "b.json" {
		t.Fatalf("unexpected order: %v", paths)
	}
}

func TestListMissingDirectory(t *testing.T) {
	paths, err := packfile.List(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if paths != nil {
		t.Fatalf("expected nil, got %v", paths)
	}
}
