package services

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToneWAVHeader(t *testing.T) {
	t.Parallel()
	wav := GenerateToneWAV(440, 2)

	dataSize := 44100 * 2 * 2
	require.Len(t, wav, 44+dataSize)

	le := binary.LittleEndian
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+dataSize), le.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "fmt ", string(wav[12:16]))
	assert.Equal(t, uint16(1), le.Uint16(wav[20:22]), "PCM format")
	assert.Equal(t, uint16(1), le.Uint16(wav[22:24]), "mono")
	assert.Equal(t, uint32(44100), le.Uint32(wav[24:28]))
	assert.Equal(t, uint16(16), le.Uint16(wav[34:36]), "bits per sample")
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(dataSize), le.Uint32(wav[40:44]))
}

func TestGenerateToneWAVSamples(t *testing.T) {
	t.Parallel()
	wav := GenerateToneWAV(440, 1)

	// First sample is sin(0) = 0.
	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(wav[44:46])))

	// Amplitude stays within the 0.1 envelope.
	peak := int16(0)
	for i := 44; i < len(wav); i += 2 {
		s := int16(binary.LittleEndian.Uint16(wav[i : i+2]))
		if s > peak {
			peak = s
		}
	}
	assert.Greater(t, peak, int16(2000))
	assert.LessOrEqual(t, peak, int16(3277))
}
