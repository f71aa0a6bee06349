package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"prism/internal/spectra"
)

// Import is one recorded pack import.
type Import struct {
	ID                string
	PackID            string
	PackName          string
	Version           int
	SpectrumCount     int
	DefaultSpectrumID string
	SourcePath        string
	ImportedAt        time.Time
}

// RecordImport inserts an import row for a validated pack. The caller is
// responsible for having run spectra.Validate first; the catalog stores
// whatever pack it is handed.
func (s *Store) RecordImport(ctx context.Context, pack spectra.Pack, sourcePath string) (Import, error) {
	imp := Import{
		ID:                uuid.NewString(),
		PackID:            pack.ID,
		PackName:          pack.Name,
		Version:           pack.Version,
		SpectrumCount:     len(pack.Spectra),
		DefaultSpectrumID: pack.DefaultSpectrumID,
		SourcePath:        sourcePath,
		ImportedAt:        time.Now().UTC(),
	}

	err := s.execWithRetry(
		ctx,
		`INSERT INTO imports (
            id, pack_id, pack_name, version, spectrum_count,
            default_spectrum_id, source_path, imported_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		imp.ID,
		imp.PackID,
		imp.PackName,
		imp.Version,
		imp.SpectrumCount,
		imp.DefaultSpectrumID,
		imp.SourcePath,
		imp.ImportedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Import{}, fmt.Errorf("insert import: %w", err)
	}
	return imp, nil
}

// ListImports returns all recorded imports, most recent first.
func (s *Store) ListImports(ctx context.Context) ([]Import, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, pack_id, pack_name, version, spectrum_count,
		        default_spectrum_id, source_path, imported_at
		 FROM imports ORDER BY imported_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("query imports: %w", err)
	}
	defer rows.Close()

	var imports []Import
	for rows.Next() {
		imp, err := scanImport(rows)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate imports: %w", err)
	}
	return imports, nil
}

// LatestForPack returns the most recent import of the given pack id, or nil
// when the pack has never been imported.
func (s *Store) LatestForPack(ctx context.Context, packID string) (*Import, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, pack_id, pack_name, version, spectrum_count,
		        default_spectrum_id, source_path, imported_at
		 FROM imports WHERE pack_id = ?
		 ORDER BY imported_at DESC, id LIMIT 1`, packID)

	imp, err := scanImport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &imp, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImport(row rowScanner) (Import, error) {
	var (
		imp        Import
		importedAt string
	)
	err := row.Scan(
		&imp.ID,
		&imp.PackID,
		&imp.PackName,
		&imp.Version,
		&imp.SpectrumCount,
		&imp.DefaultSpectrumID,
		&imp.SourcePath,
		&importedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Import{}, err
		}
		return Import{}, fmt.Errorf("scan import: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, importedAt)
	if err != nil {
		return Import{}, fmt.Errorf("parse imported_at %q: %w", importedAt, err)
	}
	imp.ImportedAt = ts
	return imp, nil
}
