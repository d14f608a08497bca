package capture

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"math"
	"time"
)

// Shutter beep parameters.
const (
	ShutterFrequency = 800 // Hz
	ShutterDuration  = 100 * time.Millisecond
	ShutterGainStart = 0.3
	ShutterGainEnd   = 0.01

	// DefaultSampleRate is the sample rate of the synthesized beep.
	DefaultSampleRate = 44100
)

// Player plays WAV encoded audio. Playback is best effort: a Booth ignores
// Play errors because sound is optional.
type Player interface {
	Play(ctx context.Context, wav []byte) error
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(ctx context.Context, wav []byte) error

// Play calls f(ctx, wav).
func (f PlayerFunc) Play(ctx context.Context, wav []byte) error {
	return f(ctx, wav)
}

// ShutterTone synthesizes the shutter beep as signed 16-bit mono PCM: an
// 800 Hz sine whose gain ramps exponentially from 0.3 to 0.01 over 100 ms.
// A non-positive sampleRate uses DefaultSampleRate.
func ShutterTone(sampleRate int) []int16 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	n := int(math.Round(ShutterDuration.Seconds() * float64(sampleRate)))
	samples := make([]int16, n)

	ratio := ShutterGainEnd / ShutterGainStart
	dur := ShutterDuration.Seconds()
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		gain := ShutterGainStart * math.Pow(ratio, t/dur)
		v := gain * math.Sin(2*math.Pi*ShutterFrequency*t)
		samples[i] = int16(math.Round(v * math.MaxInt16))
	}
	return samples
}

// ShutterWAV returns the shutter beep as a WAV file at DefaultSampleRate.
func ShutterWAV() []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail.
	_ = WriteWAV(&buf, ShutterTone(DefaultSampleRate), DefaultSampleRate)
	return buf.Bytes()
}

// WriteWAV writes samples as a 16-bit mono PCM WAV stream.
func WriteWAV(w io.Writer, samples []int16, sampleRate int) error {
	const (
		channels      = 1
		bitsPerSample = 16
		blockAlign    = channels * bitsPerSample / 8
	)
	dataLen := uint32(len(samples) * blockAlign)

	header := struct {
		RIFF          [4]byte
		ChunkSize     uint32
		WAVE          [4]byte
		Fmt           [4]byte
		FmtSize       uint32
		AudioFormat   uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		Data          [4]byte
		DataSize      uint32
	}{
		RIFF:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataLen,
		WAVE:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1, // PCM
		Channels:      channels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: bitsPerSample,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataLen,
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, samples)
}
