// Package config loads, normalizes, and validates prism configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the PRISM_PACK_DIR environment
// fallback. The Config type centralizes every knob the CLI needs, so pack,
// catalog, and log directories are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
