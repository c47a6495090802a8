package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; each one keeps internal
// state that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4SizePrefix is the width of the little-endian uncompressed-size header
// this codec prepends to every LZ4 block it produces.
const lz4SizePrefix = 8

// NewLZ4Compressor returns a Codec that compresses a container's whole
// packed payload region with LZ4 block mode, favoring fast decompression
// over compression ratio.
//
// LZ4 block mode has no embedded uncompressed-size header of its own — a
// columnar encoder compressing many small same-shaped chunks can get away
// with guessing and retrying at a geometric buffer size, but a container's
// payload region is a single opaque blob this codec alone produces and
// consumes, so instead this codec prepends its own 8-byte uncompressed-size
// header ahead of the block and reads it back, allocating the exact
// decompression buffer in one shot.
func NewLZ4Compressor() Codec {
	return funcCodec{
		compress:   lz4Compress,
		decompress: lz4Decompress,
	}
}

func lz4Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4SizePrefix+lz4.CompressBlockBound(len(data)))
	binary.LittleEndian.PutUint64(dst[:lz4SizePrefix], uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[lz4SizePrefix:])
	if err != nil {
		return nil, err
	}

	return dst[:lz4SizePrefix+n], nil
}

func lz4Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < lz4SizePrefix {
		return nil, fmt.Errorf("lz4: compressed payload shorter than its size header")
	}

	size := binary.LittleEndian.Uint64(data[:lz4SizePrefix])
	dst := make([]byte, size)

	n, err := lz4.UncompressBlock(data[lz4SizePrefix:], dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
