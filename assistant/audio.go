package assistant

import (
	"encoding/base64"
	"encoding/binary"
	"math"
)

// The voice channel carries raw little-endian PCM16: 16 kHz mono upstream
// from the microphone, 24 kHz mono downstream from the model.
const (
	InputSampleRate  = 16000
	OutputSampleRate = 24000
)

// EncodePCM16 converts float samples in [-1, 1] to a base64 PCM16 blob.
// Out-of-range samples are clamped.
func EncodePCM16(samples []float32) string {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(math.Round(float64(s) * 32767))
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodePCM16 converts a base64 PCM16 blob back to float samples, using
// the same 32767 scale as EncodePCM16 so a round trip stays within one
// quantization step. A trailing odd byte is dropped.
func DecodePCM16(data string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, err
	}
	n := len(raw) / 2
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[i*2:]))
		samples[i] = float32(v) / 32767
	}
	return samples, nil
}

// Duration returns the playback length in seconds of a sample buffer,
// used to schedule back-to-back chunks without gaps.
func Duration(samples []float32, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(len(samples)) / float64(sampleRate)
}
