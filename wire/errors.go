package wire

import "errors"

// Sentinel errors returned by the wire package.
var (
	// ErrMissingHeaderField indicates a decoded header was missing one of
	// content_encoding or byteorder.
	ErrMissingHeaderField = errors.New("wire: header missing required field")

	// ErrUnsupportedEncoding indicates content_encoding named something
	// other than "utf-8", the only payload encoding this package writes
	// or understands.
	ErrUnsupportedEncoding = errors.New("wire: unsupported content_encoding")
)
