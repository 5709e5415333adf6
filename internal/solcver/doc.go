// Package solcver infers which solc releases could have produced a piece of
// bytecode from the shape of its metadata trailer.
//
// The trailer went through three eras:
//
//	< 0.4.7          no trailer at all
//	0.4.7 .. 0.5.8   trailer present, compiler version not recorded
//	>= 0.5.9         trailer records the exact version under "solc"
//
// Infer never fails. Anything that does not decode as a trailer is treated as
// the first era, because "no metadata" and "metadata we cannot read" imply the
// same thing about the compiler.
package solcver
