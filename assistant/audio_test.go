package assistant

import (
	"math"
	"testing"
)

func TestPCM16RoundTrip(t *testing.T) {
	in := []float32{0, 0.5, -0.5, 0.999, -0.999}
	out, err := DecodePCM16(EncodePCM16(in))
	if err != nil {
		t.Fatalf("DecodePCM16: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	for i := range in {
		if math.Abs(float64(out[i]-in[i])) > 1.0/32768 {
			t.Errorf("sample %d: %f -> %f", i, in[i], out[i])
		}
	}
}

func TestEncodeClampsOutOfRange(t *testing.T) {
	out, err := DecodePCM16(EncodePCM16([]float32{2, -2}))
	if err != nil {
		t.Fatal(err)
	}
	if out[0] < 0.99 || out[1] > -0.99 {
		t.Errorf("clamping failed: %v", out)
	}
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	if _, err := DecodePCM16("not base64!!!"); err == nil {
		t.Error("invalid base64 accepted")
	}
}

func TestDuration(t *testing.T) {
	samples := make([]float32, OutputSampleRate/2)
	if d := Duration(samples, OutputSampleRate); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("Duration = %f, want 0.5", d)
	}
	if d := Duration(samples, 0); d != 0 {
		t.Errorf("Duration with zero rate = %f", d)
	}
}
