package services

import (
	"encoding/binary"
	"math"
)

const (
	toneSampleRate = 44100
	toneAmplitude  = 0.1 // low volume, matches the catalog's generated sources
)

// GenerateToneWAV renders a mono 16-bit PCM sine tone as a complete WAV
// file: 44-byte RIFF header followed by the samples.
func GenerateToneWAV(frequency float64, durationSeconds int) []byte {
	numSamples := toneSampleRate * durationSeconds
	dataSize := numSamples * 2
	buf := make([]byte, 44+dataSize)

	le := binary.LittleEndian
	copy(buf[0:4], "RIFF")
	le.PutUint32(buf[4:8], uint32(36+dataSize))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	le.PutUint32(buf[16:20], 16)                 // format chunk size
	le.PutUint16(buf[20:22], 1)                  // PCM
	le.PutUint16(buf[22:24], 1)                  // mono
	le.PutUint32(buf[24:28], toneSampleRate)
	le.PutUint32(buf[28:32], toneSampleRate*2)   // byte rate
	le.PutUint16(buf[32:34], 2)                  // block align
	le.PutUint16(buf[34:36], 16)                 // bits per sample
	copy(buf[36:40], "data")
	le.PutUint32(buf[40:44], uint32(dataSize))

	for i := 0; i < numSamples; i++ {
		t := float64(i) / toneSampleRate
		sample := math.Sin(2*math.Pi*frequency*t) * toneAmplitude
		le.PutUint16(buf[44+i*2:], uint16(int16(math.Round(sample*32767))))
	}
	return buf
}
