// Package spectra defines the data model for packs of visual-effect profiles.
//
// A Spectrum is one named film-emulation profile: identity, a LUT resource
// reference with an optional content digest, a clamped default intensity, and
// optional tone-curve and preset overrides. A Pack aggregates an ordered list
// of Spectra with pack metadata and a designated default profile.
//
// # Lifecycle
//
// Raw JSON records are decoded with DecodePack/DecodeSpectrum, checked with
// Validate, then held read-only for the life of the consuming session. All
// types are immutable value records after decoding, so a decoded pack is safe
// to share across concurrent readers without synchronization. "Updating" a
// pack means decoding and validating a new one.
//
// # Errors
//
// Decoding and validation fail with distinct error tiers. Structural problems
// (a missing required field, a malformed document) surface as *DecodeError
// and abort the decode. Invariant violations (empty pack, duplicate spectrum
// ids, unmatched default id) are only reported by Validate, which runs as an
// explicit separate step and never during decoding or lookup. The one
// deliberate exception is updatedAt: a malformed timestamp degrades to absent
// instead of failing the decode, so a stale pack still loads.
//
// # Entry Points
//
// DecodePack / DecodeSpectrum: decode wire records.
// Validate: check pack invariants, returning the pack unchanged on success.
// Pack.Spectrum / Pack.DefaultSpectrum: id lookup.
// Pack.Encode: serialise back to the wire shape.
// ClampIntensity: the shared intensity normalization.
package spectra
