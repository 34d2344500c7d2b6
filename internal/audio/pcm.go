package audio

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

// PCMReader encodes a beep.Streamer as interleaved signed 16-bit
// little-endian stereo, the format ebiten's audio player consumes.
type PCMReader struct {
	src beep.Streamer
	buf [][2]float64
	eof bool
}

// NewPCMReader wraps src.
func NewPCMReader(src beep.Streamer) *PCMReader {
	return &PCMReader{src: src, buf: make([][2]float64, 512)}
}

// bytesPerFrame is two channels of two bytes each.
const bytesPerFrame = 4

func (r *PCMReader) Read(p []byte) (int, error) {
	if r.eof {
		return 0, io.EOF
	}
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if frames > len(r.buf) {
		frames = len(r.buf)
	}
	n, ok := r.src.Stream(r.buf[:frames])
	for i := 0; i < n; i++ {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint16(p[off:], uint16(toInt16(r.buf[i][0])))
		binary.LittleEndian.PutUint16(p[off+2:], uint16(toInt16(r.buf[i][1])))
	}
	if !ok {
		r.eof = true
		if err := r.src.Err(); err != nil {
			return n * bytesPerFrame, err
		}
		if n == 0 {
			return 0, io.EOF
		}
	}
	return n * bytesPerFrame, nil
}

func toInt16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= 1:
		return math.MaxInt16
	case v <= -1:
		return -math.MaxInt16
	}
	return int16(v * math.MaxInt16)
}
