package capture

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestShutterTone(t *testing.T) {
	samples := ShutterTone(8000)
	if len(samples) != 800 {
		t.Fatalf("len = %d, want 800 (100ms at 8kHz)", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %d, want 0 (sine starts at zero)", samples[0])
	}

	peak := func(from, to int) float64 {
		var m float64
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(float64(s)))
		}
		return m / math.MaxInt16
	}
	// One 800 Hz period is 10 samples at 8 kHz.
	if p := peak(0, 10); p < 0.25 || p > 0.3 {
		t.Errorf("initial peak = %.3f, want about 0.3", p)
	}
	if p := peak(790, 800); p < 0.005 || p > 0.015 {
		t.Errorf("final peak = %.3f, want about 0.01", p)
	}
	if peak(0, 10) <= peak(400, 410) || peak(400, 410) <= peak(790, 800) {
		t.Error("gain does not decay")
	}
}

func TestShutterToneDefaultRate(t *testing.T) {
	if got := len(ShutterTone(0)); got != DefaultSampleRate/10 {
		t.Errorf("len = %d, want %d", got, DefaultSampleRate/10)
	}
}

func TestWriteWAVHeader(t *testing.T) {
	samples := []int16{0, 1000, -1000, 32767}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, samples, 22050); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
	b := buf.Bytes()
	if len(b) != 44+len(samples)*2 {
		t.Fatalf("len = %d, want %d", len(b), 44+len(samples)*2)
	}

	le := binary.LittleEndian
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"RIFF", string(b[0:4]), "RIFF"},
		{"chunk size", le.Uint32(b[4:8]), uint32(36 + 8)},
		{"WAVE", string(b[8:12]), "WAVE"},
		{"fmt", string(b[12:16]), "fmt "},
		{"pcm", le.Uint16(b[20:22]), uint16(1)},
		{"channels", le.Uint16(b[22:24]), uint16(1)},
		{"rate", le.Uint32(b[24:28]), uint32(22050)},
		{"byte rate", le.Uint32(b[28:32]), uint32(44100)},
		{"bits", le.Uint16(b[34:36]), uint16(16)},
		{"data", string(b[36:40]), "data"},
		{"data size", le.Uint32(b[40:44]), uint32(8)},
		{"sample 3", int16(le.Uint16(b[50:52])), int16(32767)},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestShutterWAV(t *testing.T) {
	wav := ShutterWAV()
	if !bytes.HasPrefix(wav, []byte("RIFF")) {
		t.Fatal("missing RIFF header")
	}
	if want := 44 + 2*DefaultSampleRate/10; len(wav) != want {
		t.Errorf("len = %d, want %d", len(wav), want)
	}
}
