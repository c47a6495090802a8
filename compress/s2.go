package compress

import s2lib "github.com/klauspost/compress/s2"

// NewS2Compressor returns a Codec that compresses a container's whole
// packed payload region with the S2 algorithm, a Snappy variant tuned for
// throughput over ratio. S2's one-shot Encode/Decode functions already do
// their own internal buffering, so this codec needs nothing beyond a thin
// adapter — there is no encoder/decoder object to keep alive between the
// single Compress call at Writer.Finish and the single Decompress call at
// Reader.Open.
func NewS2Compressor() Codec {
	return funcCodec{
		compress: func(data []byte) ([]byte, error) {
			if len(data) == 0 {
				return nil, nil
			}
			return s2lib.Encode(nil, data), nil
		},
		decompress: func(data []byte) ([]byte, error) {
			if len(data) == 0 {
				return nil, nil
			}
			return s2lib.Decode(nil, data)
		},
	}
}
