package container

import (
	"fmt"

	"go.zeroproto.dev/zeroproto/errs"
	"go.zeroproto.dev/zeroproto/internal/hash"
	"go.zeroproto.dev/zeroproto/wire"
)

// Manifest is a parsed container header plus its entry table. Writer builds
// one incrementally; Reader parses one out of an existing container buffer.
type Manifest struct {
	Version     uint8
	Compression CompressionType
	Entries     []Entry
}

func writeHeader(buf []byte, offset int, version uint8, compression CompressionType, entryCount int) int {
	copy(buf[offset:], magic[:])
	offset += magicSize

	buf[offset] = version
	offset += versionSize

	buf[offset] = byte(compression)
	offset += compressionSize

	wire.WriteU32(uint32(entryCount), buf, offset)
	offset += entryCountSize

	return offset
}

func writeEntry(buf []byte, offset int, e Entry) int {
	wire.WriteU64(e.Digest, buf, offset)
	offset += 8
	wire.WriteU32(e.Offset, buf, offset)
	offset += 4
	wire.WriteU32(e.Length, buf, offset)
	offset += 4

	return offset
}

func readHeader(buf []byte) (Manifest, int, error) {
	if len(buf) < headerSize {
		return Manifest{}, 0, fmt.Errorf("container: buffer shorter than header: %w", errs.ErrInvalidMessage)
	}
	if buf[0] != magic[0] || buf[1] != magic[1] || buf[2] != magic[2] || buf[3] != magic[3] {
		return Manifest{}, 0, fmt.Errorf("container: bad magic: %w", errs.ErrInvalidMessage)
	}

	offset := magicSize
	version := buf[offset]
	offset += versionSize

	compression := CompressionType(buf[offset])
	offset += compressionSize

	count := int(wire.ReadU32(buf, offset))
	offset += entryCountSize

	need := offset + count*entrySize
	if len(buf) < need {
		return Manifest{}, 0, fmt.Errorf("container: buffer shorter than entry table (need %d, have %d): %w", need, len(buf), errs.ErrInvalidMessage)
	}

	entries := make([]Entry, count)
	for i := range entries {
		entries[i] = Entry{
			Digest: wire.ReadU64(buf, offset),
			Offset: wire.ReadU32(buf, offset+8),
			Length: wire.ReadU32(buf, offset+12),
		}
		offset += entrySize
	}

	return Manifest{Version: version, Compression: compression, Entries: entries}, offset, nil
}

// digestOf computes the content digest an Entry stores for one message's
// uncompressed bytes.
func digestOf(msg []byte) uint64 {
	return hash.ID(string(msg))
}
