package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"prism/internal/testsupport"
)

func TestPackValidateSuccess(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	path := testsupport.WritePackFile(t, dir, testsupport.SamplePack())

	out, _, err := runCLI(t, "pack", "validate", path)
	if err != nil {
		t.Fatalf("pack validate: %v", err)
	}
	requireContains(t, out, `Pack "infraredFilms" is valid`)
	requireContains(t, out, "2 spectra")
}

func TestPackValidateReportsDuplicates(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	pack := testsupport.SamplePack()
	pack.Spectra = append(pack.Spectra, pack.Spectra[0])
	path := testsupport.WritePackFile(t, dir, pack)

	_, _, err := runCLI(t, "pack", "validate", path)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	requireContains(t, err.Error(), "duplicates")
	requireContains(t, err.Error(), "classicAerochrome")
}

func TestPackValidateReportsMissingDefault(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	pack := testsupport.SamplePack()
	pack.DefaultSpectrumID = "ghost"
	path := testsupport.WritePackFile(t, dir, pack)

	_, _, err := runCLI(t, "pack", "validate", path)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	requireContains(t, err.Error(), `"ghost"`)
}

func TestPackValidateRejectsMalformedFile(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte(`{"id":"p"}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, _, err := runCLI(t, "pack", "validate", path)
	if err == nil {
		t.Fatal("expected decode failure")
	}
	requireContains(t, err.Error(), "missing required field")
}

func TestPackShowSpectrum(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	path := testsupport.WritePackFile(t, dir, testsupport.SamplePack())

	out, _, err := runCLI(t, "pack", "show", path, "--spectrum", "classicAerochrome")
	if err != nil {
		t.Fatalf("pack show: %v", err)
	}
	requireContains(t, out, "Classic Aerochrome")
	requireContains(t, out, "luts/aerochrome.cube")
	requireContains(t, out, "ab12cd34")
}

func TestPackShowJSON(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	path := testsupport.WritePackFile(t, dir, testsupport.SamplePack())

	out, _, err := runCLI(t, "pack", "show", path, "--json")
	if err != nil {
		t.Fatalf("pack show --json: %v", err)
	}
	var view packView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("unmarshal output: %v\n%s", err, out)
	}
	if view.ID != "infraredFilms" || !view.Valid || view.SpectrumCount != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
	// deepMagenta has no digest, so it must be reported unusable.
	for _, s := range view.Spectra {
		if s.ID == "deepMagenta" && s.DigestUsable {
			t.Fatalf("expected deepMagenta digest unusable: %+v", s)
		}
	}
}

func TestPackListSpectraTable(t *testing.T) {
	setupHome(t)
	dir := t.TempDir()
	path := testsupport.WritePackFile(t, dir, testsupport.SamplePack())

	out, _, err := runCLI(t, "pack", "list", path)
	if err != nil {
		t.Fatalf("pack list: %v", err)
	}
	requireContains(t, out, "classicAerochrome")
	requireContains(t, out, "Classic Aerochrome *")
	requireContains(t, out, "pending")
}

func TestPackListDirectory(t *testing.T) {
	home := setupHome(t)
	packDir := filepath.Join(home, "packs")
	testsupport.WritePackFile(t, packDir, testsupport.SamplePack())

	broken := testsupport.SamplePack()
	broken.ID = "brokenPack"
	broken.DefaultSpectrumID = "ghost"
	testsupport.WritePackFile(t, packDir, broken)

	out, _, err := runCLI(t, "pack", "list")
	if err != nil {
		t.Fatalf("pack list: %v", err)
	}
	requireContains(t, out, "infraredFilms")
	requireContains(t, out, "brokenPack")
	requireContains(t, out, "invalid")
}
