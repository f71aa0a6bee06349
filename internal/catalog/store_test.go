package catalog_test

import (
	"context"
	"testing"

	"prism/internal/catalog"
	"prism/internal/testsupport"
)

func TestOpenCreatesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if store.Path() == "" {
		t.Fatal("expected database path")
	}
	imports, err := store.ListImports(context.Background())
	if err != nil {
		t.Fatalf("ListImports failed: %v", err)
	}
	if len(imports) != 0 {
		t.Fatalf("expected empty catalog, got %d imports", len(imports))
	}
}

func TestRecordAndListImports(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	pack := testsupport.SamplePack()
	imp, err := store.RecordImport(ctx, pack, "/packs/infrared.json")
	if err != nil {
		t.Fatalf("RecordImport failed: %v", err)
	}
	if imp.ID == "" {
		t.Fatal("expected import id to be assigned")
	}
	if imp.PackID != "infraredFilms" || imp.SpectrumCount != 2 {
		t.Fatalf("unexpected import record: %+v", imp)
	}

	imports, err := store.ListImports(ctx)
	if err != nil {
		t.Fatalf("ListImports failed: %v", err)
	}
	if len(imports) != 1 || imports[0].ID != imp.ID {
		t.Fatalf("unexpected imports: %+v", imports)
	}
	if !imports[0].ImportedAt.Equal(imp.ImportedAt) {
		t.Fatalf("timestamp mismatch: %v vs %v", imports[0].ImportedAt, imp.ImportedAt)
	}
}

func TestLatestForPack(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	pack := testsupport.SamplePack()
	if _, err := store.RecordImport(ctx, pack, "/packs/v2.json"); err != nil {
		t.Fatalf("RecordImport failed: %v", err)
	}
	pack.Version = 3
	second, err := store.RecordImport(ctx, pack, "/packs/v3.json")
	if err != nil {
		t.Fatalf("RecordImport failed: %v", err)
	}

	latest, err := store.LatestForPack(ctx, "infraredFilms")
	if err != nil {
		t.Fatalf("LatestForPack failed: %v", err)
	}
	if latest == nil || latest.ID != second.ID || latest.Version != 3 {
		t.Fatalf("unexpected latest import: %+v", latest)
	}

	missing, err := store.LatestForPack(ctx, "unknownPack")
	if err != nil {
		t.Fatalf("LatestForPack failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown pack, got %+v", missing)
	}
}

func TestStoreReopens(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := catalog.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	pack := testsupport.SamplePack()
	if _, err := store.RecordImport(context.Background(), pack, "/packs/a.json"); err != nil {
		t.Fatalf("RecordImport failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close catalog: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	imports, err := reopened.ListImports(context.Background())
	if err != nil {
		t.Fatalf("ListImports failed: %v", err)
	}
	if len(imports) != 1 {
		t.Fatalf("expected persisted import, got %d", len(imports))
	}
}
