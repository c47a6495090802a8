// Package compress provides compression and decompression codecs for zeroproto
// container payloads.
//
// A zeroproto container (see package container) batches one or more finished
// message buffers behind a single entry table. The wire format produced by
// package message is never compressed in place — compression, when wanted,
// is applied once to the whole packed payload region by the container writer,
// and reversed once by the container reader before any message buffer inside
// is opened.
//
// # Supported algorithms
//
//   - None: no compression, data passes through unchanged.
//   - Zstd: best compression ratio, moderate speed. Good default for
//     archival or network transfer of container files.
//   - S2: balanced compression and speed.
//   - LZ4: fastest decompression, moderate compression ratio.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Use CreateCodec or GetCodec to obtain a Codec for a container.CompressionType
// read from (or about to be written to) a container header.
package compress
