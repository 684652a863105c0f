// Package model defines the output table structure produced by table
// extraction: a rectangular grid of string cells with named, optionally
// typed columns.
//
// [NewTable] validates width consistency between rows and columns, so a
// malformed extraction (rows of varying widths) fails at construction
// rather than producing a silently ragged table. Column types are
// descriptors only; no value coercion is performed.
package model
