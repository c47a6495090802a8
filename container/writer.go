package container

import (
	"fmt"

	"go.zeroproto.dev/zeroproto/compress"
	"go.zeroproto.dev/zeroproto/internal/pool"
)

// Writer packs a sequence of independently-finished message buffers (see
// package message's Builder.Finish) into a single ZPAK container, optionally
// compressing the whole packed payload region with one codec.
//
// A Writer is not safe for concurrent use by multiple goroutines.
type Writer struct {
	compression CompressionType
	payload     *pool.ByteBuffer
	entries     []Entry
	done        bool
}

// NewWriter creates an empty Writer that will compress its payload region
// with compression once Finish is called.
func NewWriter(compression CompressionType) *Writer {
	return &Writer{
		compression: compression,
		payload:     pool.GetContainerBuffer(),
	}
}

// Add appends one finished message buffer to the container. msg is copied
// into the writer's internal payload buffer; the caller may reuse or discard
// it afterward.
func (w *Writer) Add(msg []byte) error {
	if w.done {
		panic("container: Add called after Finish")
	}

	offset := w.payload.Len()
	w.entries = append(w.entries, Entry{
		Digest: digestOf(msg),
		Offset: uint32(offset),
		Length: uint32(len(msg)),
	})
	w.payload.MustWrite(msg)

	return nil
}

// Len reports how many entries have been added so far.
func (w *Writer) Len() int { return len(w.entries) }

// Finish compresses the accumulated payload region (if the Writer's
// compression is not CompressionNone) and returns the final container
// buffer: header, entry table, then the (possibly compressed) payload.
//
// The Writer must not be used again after Finish.
func (w *Writer) Finish() ([]byte, error) {
	if w.done {
		panic("container: Finish called twice")
	}
	w.done = true

	codec, err := compress.GetCodec(w.compression)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}

	payload, err := codec.Compress(w.payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("container: compressing payload: %w", err)
	}

	n := len(w.entries)
	tableSize := headerSize + n*entrySize
	buf := make([]byte, tableSize+len(payload))

	offset := writeHeader(buf, 0, FormatVersion, w.compression, n)
	for _, e := range w.entries {
		offset = writeEntry(buf, offset, e)
	}
	copy(buf[offset:], payload)

	pool.PutContainerBuffer(w.payload)
	w.payload = nil

	return buf, nil
}
