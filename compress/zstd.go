package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders across containers. klauspost/compress/zstd
// is explicitly designed for decoder reuse ("The decoder has been designed
// to operate without allocations after a warmup"), and a long-running
// process packing or unpacking many containers benefits from amortizing
// that warmup across calls rather than paying it once per container.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// zstdEncoderPool mirrors zstdDecoderPool for the encoder side.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// NewZstdCompressor returns a Codec that compresses a container's whole
// packed payload region with Zstandard. Zstd gives the best compression
// ratio of the supported codecs at the cost of more CPU time per call;
// prefer it for archival containers that are written once and read rarely.
func NewZstdCompressor() Codec {
	return funcCodec{
		compress:   zstdCompress,
		decompress: zstdDecompress,
	}
}

func zstdCompress(data []byte) ([]byte, error) {
	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

func zstdDecompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
