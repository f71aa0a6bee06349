package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"prism/internal/packfile"
	"prism/internal/spectra"
)

func newPackCommand(ctx *commandContext) *cobra.Command {
	packCmd := &cobra.Command{
		Use:         "pack",
		Short:       "Inspect and validate spectra pack files",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}

	packCmd.AddCommand(newPackValidateCommand())
	packCmd.AddCommand(newPackShowCommand())
	packCmd.AddCommand(newPackListCommand(ctx))

	return packCmd
}

func newPackValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <pack-file>",
		Short: "Validate a spectra pack file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := packfile.Read(args[0])
			if err != nil {
				return err
			}
			if _, err := spectra.Validate(pack); err != nil {
				return describeValidationError(args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pack %q is valid: %d spectra, default %q\n",
				pack.ID, len(pack.Spectra), pack.DefaultSpectrumID)
			return nil
		},
	}
}

// describeValidationError keeps the tier-2 detail (duplicate id list, the
// unmatched default) in the message shown to the operator.
func describeValidationError(path string, err error) error {
	base := filepath.Base(path)
	var dupErr *spectra.DuplicateSpectrumIDsError
	if errors.As(err, &dupErr) {
		return fmt.Errorf("%s: spectrum ids must be unique, found duplicates: %v", base, dupErr.IDs)
	}
	var missingErr *spectra.MissingDefaultSpectrumError
	if errors.As(err, &missingErr) {
		return fmt.Errorf("%s: defaultSpectrumID %q does not match any spectrum", base, missingErr.DefaultSpectrumID)
	}
	return fmt.Errorf("%s: %w", base, err)
}

type toneCurveView struct {
	Lift  float64 `json:"lift"`
	Gamma float64 `json:"gamma"`
	Gain  float64 `json:"gain"`
}

type presetView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Intensity float64        `json:"intensity"`
	ToneCurve *toneCurveView `json:"toneCurve,omitempty"`
}

type spectrumView struct {
	ID               string         `json:"id"`
	DisplayName      string         `json:"displayName"`
	Summary          string         `json:"summary"`
	LUTPath          string         `json:"lutPath"`
	LUTDigest        string         `json:"lutDigest,omitempty"`
	DigestUsable     bool           `json:"digestUsable"`
	DefaultIntensity float64        `json:"defaultIntensity"`
	ToneCurve        *toneCurveView `json:"toneCurve,omitempty"`
	Presets          []presetView   `json:"presets,omitempty"`
}

type packView struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Version           int            `json:"version"`
	UpdatedAt         string         `json:"updatedAt,omitempty"`
	DefaultSpectrumID string         `json:"defaultSpectrumID"`
	SpectrumCount     int            `json:"spectrumCount"`
	Valid             bool           `json:"valid"`
	ValidationError   string         `json:"validationError,omitempty"`
	Spectra           []spectrumView `json:"spectra"`
}

func newPackShowCommand() *cobra.Command {
	var spectrumID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <pack-file>",
		Short: "Display pack metadata or a single spectrum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := packfile.Read(args[0])
			if err != nil {
				return err
			}

			if spectrumID != "" {
				s, ok := pack.Spectrum(spectrumID)
				if !ok {
					return fmt.Errorf("spectrum %q not found in pack %q", spectrumID, pack.ID)
				}
				if asJSON {
					return writeJSON(cmd, spectrumToView(s))
				}
				printSpectrum(cmd, s)
				return nil
			}

			view := packToView(pack)
			if asJSON {
				return writeJSON(cmd, view)
			}
			printPack(cmd, pack, view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&spectrumID, "spectrum", "s", "", "Show a single spectrum by id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of text")
	return cmd
}

func packToView(pack spectra.Pack) packView {
	view := packView{
		ID:                pack.ID,
		Name:              pack.Name,
		Description:       pack.Description,
		Version:           pack.Version,
		DefaultSpectrumID: pack.DefaultSpectrumID,
		SpectrumCount:     len(pack.Spectra),
		Valid:             true,
	}
	if !pack.UpdatedAt.IsZero() {
		view.UpdatedAt = pack.UpdatedAt.Format(time.RFC3339)
	}
	if _, err := spectra.Validate(pack); err != nil {
		view.Valid = false
		view.ValidationError = err.Error()
	}
	view.Spectra = make([]spectrumView, 0, len(pack.Spectra))
	for _, s := range pack.Spectra {
		view.Spectra = append(view.Spectra, spectrumToView(s))
	}
	return view
}

func spectrumToView(s spectra.Spectrum) spectrumView {
	view := spectrumView{
		ID:               s.ID,
		DisplayName:      displayTitle(s),
		Summary:          s.Summary,
		LUTPath:          s.LUTPath,
		LUTDigest:        s.LUTDigest,
		DigestUsable:     s.HasUsableDigest(),
		DefaultIntensity: s.DefaultIntensity,
	}
	if s.ToneCurve != nil {
		view.ToneCurve = &toneCurveView{Lift: s.ToneCurve.Lift, Gamma: s.ToneCurve.Gamma, Gain: s.ToneCurve.Gain}
	}
	for _, preset := range s.Presets {
		pv := presetView{ID: preset.ID, Name: preset.Name, Intensity: preset.Intensity}
		if preset.ToneCurve != nil {
			pv.ToneCurve = &toneCurveView{Lift: preset.ToneCurve.Lift, Gamma: preset.ToneCurve.Gamma, Gain: preset.ToneCurve.Gain}
		}
		view.Presets = append(view.Presets, pv)
	}
	return view
}

func printPack(cmd *cobra.Command, pack spectra.Pack, view packView) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pack:    %s (%s)\n", pack.Name, pack.ID)
	if pack.Description != "" {
		fmt.Fprintf(out, "About:   %s\n", pack.Description)
	}
	fmt.Fprintf(out, "Version: %d\n", pack.Version)
	if view.UpdatedAt != "" {
		fmt.Fprintf(out, "Updated: %s\n", view.UpdatedAt)
	}
	fmt.Fprintf(out, "Spectra: %d, default %q\n", len(pack.Spectra), pack.DefaultSpectrumID)
	if view.Valid {
		fmt.Fprintln(out, "Status:  valid")
	} else {
		fmt.Fprintf(out, "Status:  INVALID (%s)\n", view.ValidationError)
	}
}

func printSpectrum(cmd *cobra.Command, s spectra.Spectrum) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Spectrum:  %s (%s)\n", displayTitle(s), s.ID)
	fmt.Fprintf(out, "Summary:   %s\n", s.Summary)
	fmt.Fprintf(out, "LUT:       %s (digest %s)\n", s.LUTPath, formatDigest(s))
	fmt.Fprintf(out, "Intensity: %s\n", formatIntensity(s.DefaultIntensity))
	fmt.Fprintf(out, "Curve:     %s\n", formatToneCurve(s.ToneCurve))
	for _, preset := range s.Presets {
		fmt.Fprintf(out, "Preset:    %s (%s) intensity %s curve %s\n",
			preset.Name, preset.ID, formatIntensity(preset.Intensity), formatToneCurve(preset.ToneCurve))
	}
}

func newPackListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [pack-file]",
		Short: "List spectra in a pack, or packs in the configured directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return listSpectra(cmd, args[0], asJSON)
			}
			return listPackDir(cmd, ctx, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func listSpectra(cmd *cobra.Command, path string, asJSON bool) error {
	pack, err := packfile.Read(path)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(cmd, packToView(pack))
	}

	rows := make([][]string, 0, len(pack.Spectra))
	for _, s := range pack.Spectra {
		name := displayTitle(s)
		if s.ID == pack.DefaultSpectrumID {
			name += " *"
		}
		rows = append(rows, []string{
			s.ID,
			name,
			formatIntensity(s.DefaultIntensity),
			formatDigest(s),
			fmt.Sprintf("%d", len(s.Presets)),
			formatToneCurve(s.ToneCurve),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "Name", "Intensity", "Digest", "Presets", "Curve"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
	))
	return nil
}

type packFileView struct {
	Path          string `json:"path"`
	PackID        string `json:"packId,omitempty"`
	Name          string `json:"name,omitempty"`
	Version       int    `json:"version,omitempty"`
	SpectrumCount int    `json:"spectrumCount,omitempty"`
	Status        string `json:"status"`
}

func listPackDir(cmd *cobra.Command, ctx *commandContext, asJSON bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	paths, err := packfile.List(cfg.Paths.PackDir)
	if err != nil {
		return err
	}

	views := make([]packFileView, 0, len(paths))
	for _, path := range paths {
		view := packFileView{Path: path, Status: "valid"}
		pack, err := packfile.Read(path)
		if err != nil {
			view.Status = "decode failed"
			views = append(views, view)
			continue
		}
		view.PackID = pack.ID
		view.Name = pack.Name
		view.Version = pack.Version
		view.SpectrumCount = len(pack.Spectra)
		if _, err := spectra.Validate(pack); err != nil {
			view.Status = "invalid"
		}
		views = append(views, view)
	}

	if asJSON {
		return writeJSON(cmd, views)
	}
	if len(views) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No pack files found in %s\n", cfg.Paths.PackDir)
		return nil
	}
	rows := make([][]string, 0, len(views))
	for _, view := range views {
		rows = append(rows, []string{
			filepath.Base(view.Path),
			view.PackID,
			view.Name,
			fmt.Sprintf("%d", view.Version),
			fmt.Sprintf("%d", view.SpectrumCount),
			view.Status,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"File", "Pack", "Name", "Version", "Spectra", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
	return nil
}
