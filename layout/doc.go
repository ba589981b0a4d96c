// Package layout describes key panels as data: rows of typed keys decoded
// from TOML.
//
// The built-in Devanagari and Tamil panels are embedded in the binary. Users
// may add their own panels as TOML files with the same shape.
package layout
