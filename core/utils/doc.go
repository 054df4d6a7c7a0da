// Package utils provides type coercion helpers for loosely typed feed values.
//
// The upstream B2B feed serializes most scalars inconsistently: ids arrive as
// numbers or numeric strings, booleans as true/1/"1", dates as epoch
// timestamps or textual formats. These helpers normalize such values without
// ever raising: a value that cannot be coerced degrades to the zero value
// (or nil for dates), which the import engine treats as "absent".
package utils
