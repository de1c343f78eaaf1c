package wire

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const protoHeaderLength = 4

// Encode writes one framed message to w: a 4-byte little-endian length of
// the JSON header, the header itself, then the JSON-encoded payload.
func Encode(w io.Writer, msgType MessageType, payload any) error {
	contentBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("wire: marshal payload: %w", err)
	}

	header := Header{
		MessageType:     msgType,
		ContentEncoding: "utf-8",
		ByteOrder:       "little",
		ContentLength:   len(contentBytes),
	}
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("wire: marshal header: %w", err)
	}

	var protoHeader [protoHeaderLength]byte
	binary.LittleEndian.PutUint32(protoHeader[:], uint32(len(headerBytes)))

	if _, err := w.Write(protoHeader[:]); err != nil {
		return fmt.Errorf("wire: write proto header: %w", err)
	}
	if _, err := w.Write(headerBytes); err != nil {
		return fmt.Errorf("wire: write header: %w", err)
	}
	if _, err := w.Write(contentBytes); err != nil {
		return fmt.Errorf("wire: write payload: %w", err)
	}
	return nil
}

// Decode reads one framed message from r, returning its header and raw
// payload bytes. Callers decode the payload themselves via DecodePayload
// once they know the expected type from header.MessageType.
func Decode(r io.Reader) (Header, []byte, error) {
	var protoHeader [protoHeaderLength]byte
	if _, err := io.ReadFull(r, protoHeader[:]); err != nil {
		return Header{}, nil, fmt.Errorf("wire: read proto header: %w", err)
	}
	headerLen := binary.LittleEndian.Uint32(protoHeader[:])

	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return Header{}, nil, fmt.Errorf("wire: read header: %w", err)
	}

	var header Header
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return Header{}, nil, fmt.Errorf("wire: unmarshal header: %w", err)
	}
	if header.ContentEncoding == "" || header.ByteOrder == "" {
		return Header{}, nil, ErrMissingHeaderField
	}
	if header.ContentEncoding != "utf-8" {
		return Header{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, header.ContentEncoding)
	}

	payload := make([]byte, header.ContentLength)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Header{}, nil, fmt.Errorf("wire: read payload: %w", err)
	}
	return header, payload, nil
}

// DecodePayload unmarshals raw payload bytes (as returned by Decode) into
// v, which should be a pointer to the struct matching the header's
// MessageType.
func DecodePayload(payload []byte, v any) error {
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("wire: unmarshal payload: %w", err)
	}
	return nil
}
