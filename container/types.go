// Package container implements ZPAK, a batching format that packs many
// independently-finished message buffers (see package message) into one
// framed, optionally compressed blob.
//
// A container is orthogonal to the wire format: it never looks inside the
// message buffers it carries, and a message buffer is byte-identical
// whether read from a standalone file or unpacked from a container entry.
// This mirrors how the teacher's blob set format sits alongside its
// individual blob format — one frames many of the other without coupling
// to its internals.
package container

import "go.zeroproto.dev/zeroproto/compress"

// CompressionType identifies how a container's payload region is encoded.
// It is an alias of compress.CompressionType: the compress package owns the
// closed set of algorithms, and container only ever stores/reads the id.
type CompressionType = compress.CompressionType

const (
	CompressionNone = compress.CompressionNone
	CompressionZstd = compress.CompressionZstd
	CompressionS2   = compress.CompressionS2
	CompressionLZ4  = compress.CompressionLZ4
)

// FormatVersion is the current ZPAK container format version.
const FormatVersion uint8 = 1

// magic identifies a buffer as a ZPAK container.
var magic = [4]byte{'Z', 'P', 'A', 'K'}

// Header field widths, in bytes.
const (
	magicSize       = 4
	versionSize     = 1
	compressionSize = 1
	entryCountSize  = 4

	headerSize = magicSize + versionSize + compressionSize + entryCountSize

	// entrySize is the width of one entry table row: an 8-byte LE xxHash64
	// digest of the entry's uncompressed bytes, a 4-byte LE offset into the
	// (decompressed) payload region, and a 4-byte LE length.
	entrySize = 8 + 4 + 4
)

// Entry describes one packed message's position within a container's
// payload region, plus a content digest usable to detect corruption or
// confirm a match without decoding the message itself.
type Entry struct {
	Digest uint64
	Offset uint32
	Length uint32
}
