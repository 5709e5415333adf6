// Package metadata owns the CBOR metadata trailer that solc appends to
// contract bytecode.
//
// Ownership boundary:
// - trailing length field primitives
// - payload extraction (tail anchored)
// - CBOR decode/encode of the payload
// - typed view over the recognised keys
package metadata
