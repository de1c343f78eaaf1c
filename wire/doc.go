// Package wire implements the length-prefixed JSON message framing used by
// the network driver: each message is a 4-byte little-endian length
// prefix, a JSON header describing the payload, then the payload itself.
//
// Message types form a dense enumeration partitioned into request/response
// pairs (load model, set endpoint, set obstacles, find path); Encode and
// Decode move a Header plus arbitrary JSON-able payload across an
// io.Writer/io.Reader pair.
package wire
