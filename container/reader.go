package container

import (
	"fmt"

	"go.zeroproto.dev/zeroproto/compress"
	"go.zeroproto.dev/zeroproto/errs"
)

// Reader opens a ZPAK container buffer and exposes its individual packed
// message buffers by index. The payload region is decompressed once, at
// Open, not lazily per entry — callers needing to defer decompression
// should hold the raw container bytes themselves and call Open only when
// ready to unpack.
type Reader struct {
	manifest Manifest
	payload  []byte
}

// Open parses buf as a container: header, entry table, then decompresses
// the payload region according to the stored compression id.
func Open(buf []byte) (Reader, error) {
	manifest, payloadStart, err := readHeader(buf)
	if err != nil {
		return Reader{}, err
	}

	codec, err := compress.GetCodec(manifest.Compression)
	if err != nil {
		return Reader{}, fmt.Errorf("container: %w", err)
	}

	payload, err := codec.Decompress(buf[payloadStart:])
	if err != nil {
		return Reader{}, fmt.Errorf("container: decompressing payload: %w", err)
	}

	return Reader{manifest: manifest, payload: payload}, nil
}

// Len returns the number of packed message buffers.
func (r Reader) Len() int { return len(r.manifest.Entries) }

// Compression reports the container's stored compression algorithm.
func (r Reader) Compression() CompressionType { return r.manifest.Compression }

// Entry returns the raw entry table row at index i, without decoding it.
func (r Reader) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(r.manifest.Entries) {
		return Entry{}, fmt.Errorf("container: entry %d: %w", i, errs.ErrOutOfBounds)
	}

	return r.manifest.Entries[i], nil
}

// At returns the i-th packed message buffer as a sub-slice of the
// decompressed payload. The digest recorded at pack time is verified
// against the slice's actual content; a mismatch indicates a corrupted or
// truncated container.
func (r Reader) At(i int) ([]byte, error) {
	e, err := r.Entry(i)
	if err != nil {
		return nil, err
	}

	start, end := int(e.Offset), int(e.Offset)+int(e.Length)
	if end > len(r.payload) {
		return nil, fmt.Errorf("container: entry %d: payload out of bounds: %w", i, errs.ErrOutOfBounds)
	}

	msg := r.payload[start:end]
	if digestOf(msg) != e.Digest {
		return nil, fmt.Errorf("container: entry %d: digest mismatch: %w", i, errs.ErrInvalidMessage)
	}

	return msg, nil
}

// All returns every packed message buffer in order, verifying each entry's
// digest. Prefer At for large containers where only a few entries are
// needed; All allocates one slice for the result.
func (r Reader) All() ([][]byte, error) {
	out := make([][]byte, r.Len())
	for i := range out {
		msg, err := r.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = msg
	}

	return out, nil
}
