package main

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"prism/internal/spectra"
)

// displayTitle returns the spectrum's display name, deriving a readable
// title from the identifier when the pack author left the name blank.
func displayTitle(s spectra.Spectrum) string {
	if name := strings.TrimSpace(s.DisplayName); name != "" {
		return name
	}
	return titleFromID(s.ID)
}

func titleFromID(id string) string {
	var spaced strings.Builder
	prevLower := false
	for _, r := range id {
		switch {
		case unicode.IsUpper(r) && prevLower:
			spaced.WriteByte(' ')
			spaced.WriteRune(r)
			prevLower = false
		case r == '-' || r == '_' || r == '.':
			spaced.WriteByte(' ')
			prevLower = false
		default:
			spaced.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsNumber(r)
		}
	}
	title := strings.Join(strings.Fields(spaced.String()), " ")
	if title == "" {
		return id
	}
	return cases.Title(language.Und).String(title)
}

func formatIntensity(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func formatDigest(s spectra.Spectrum) string {
	if s.HasUsableDigest() {
		return strings.TrimSpace(s.LUTDigest)
	}
	return "pending"
}

func formatToneCurve(curve *spectra.ToneCurveParams) string {
	if curve == nil {
		return "-"
	}
	return fmt.Sprintf("lift %.2f / gamma %.2f / gain %.2f", curve.Lift, curve.Gamma, curve.Gain)
}
