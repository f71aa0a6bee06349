package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"prism/internal/catalog"
	"prism/internal/packfile"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Record and inspect validated pack imports",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <pack-file>",
		Short: "Validate a pack file and record it in the import catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			pack, err := packfile.Load(args[0])
			if err != nil {
				return err
			}

			return ctx.withStore(cmd, func(store *catalog.Store) error {
				imp, err := store.RecordImport(cmd.Context(), pack, args[0])
				if err != nil {
					return err
				}
				logger.Info("pack imported",
					"component", "catalog",
					"import", imp.ID,
					"pack", imp.PackID,
					"version", imp.Version,
					"spectra", imp.SpectrumCount,
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Imported pack %q version %d (%d spectra) as %s\n",
					imp.PackID, imp.Version, imp.SpectrumCount, imp.ID)
				return nil
			})
		},
	}
}

type importView struct {
	ID                string `json:"id"`
	PackID            string `json:"packId"`
	PackName          string `json:"packName"`
	Version           int    `json:"version"`
	SpectrumCount     int    `json:"spectrumCount"`
	DefaultSpectrumID string `json:"defaultSpectrumId"`
	SourcePath        string `json:"sourcePath"`
	ImportedAt        string `json:"importedAt"`
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded pack imports, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd, func(store *catalog.Store) error {
				imports, err := store.ListImports(cmd.Context())
				if err != nil {
					return err
				}

				views := make([]importView, 0, len(imports))
				for _, imp := range imports {
					views = append(views, importView{
						ID:                imp.ID,
						PackID:            imp.PackID,
						PackName:          imp.PackName,
						Version:           imp.Version,
						SpectrumCount:     imp.SpectrumCount,
						DefaultSpectrumID: imp.DefaultSpectrumID,
						SourcePath:        imp.SourcePath,
						ImportedAt:        imp.ImportedAt.Format(time.RFC3339),
					})
				}
				if asJSON {
					return writeJSON(cmd, views)
				}
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No imports recorded")
					return nil
				}

				rows := make([][]string, 0, len(views))
				for _, view := range views {
					rows = append(rows, []string{
						view.ImportedAt,
						view.PackID,
						fmt.Sprintf("%d", view.Version),
						fmt.Sprintf("%d", view.SpectrumCount),
						view.DefaultSpectrumID,
						view.SourcePath,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Imported", "Pack", "Version", "Spectra", "Default", "Source"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
