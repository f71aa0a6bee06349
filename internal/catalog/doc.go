// Package catalog persists a history of validated pack imports.
//
// The catalog is a small SQLite database under the configured catalog
// directory. Each successful `prism catalog import` records one row: a uuid
// import id, the pack's identity and version, how many spectra it carried,
// its default spectrum, and where the pack file came from. The renderer does
// not read the catalog; it exists so operators can see which pack versions
// have been vetted and when.
//
// A file lock next to the database serializes concurrent CLI imports.
package catalog
