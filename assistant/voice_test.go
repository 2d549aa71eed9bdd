package assistant

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
)

func audioFrame(t *testing.T, seconds float64) []byte {
	t.Helper()
	data := EncodePCM16(make([]float32, int(seconds*OutputSampleRate)))
	frame, err := json.Marshal(map[string]any{
		"serverContent": map[string]any{
			"modelTurn": map[string]any{
				"parts": []map[string]any{
					{"inlineData": map[string]any{"mimeType": "audio/pcm", "data": data}},
				},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return frame
}

func TestAnnotateAudioFrameSchedulesGaplessly(t *testing.T) {
	out, next := annotateAudioFrame(audioFrame(t, 1.0), 0)

	var stamped struct {
		PlaybackOffset float64 `json:"playbackOffset"`
		Duration       float64 `json:"duration"`
	}
	if err := json.Unmarshal(out, &stamped); err != nil {
		t.Fatalf("annotated frame not JSON: %v", err)
	}
	if stamped.PlaybackOffset != 0 {
		t.Errorf("playbackOffset = %f, want 0", stamped.PlaybackOffset)
	}
	if math.Abs(stamped.Duration-1.0) > 1e-6 {
		t.Errorf("duration = %f, want 1.0", stamped.Duration)
	}
	if math.Abs(next-1.0) > 1e-6 {
		t.Fatalf("next offset = %f, want 1.0", next)
	}

	// The second chunk starts exactly where the first one ends.
	out, next = annotateAudioFrame(audioFrame(t, 0.5), next)
	if err := json.Unmarshal(out, &stamped); err != nil {
		t.Fatal(err)
	}
	if math.Abs(stamped.PlaybackOffset-1.0) > 1e-6 {
		t.Errorf("playbackOffset = %f, want 1.0", stamped.PlaybackOffset)
	}
	if math.Abs(next-1.5) > 1e-6 {
		t.Errorf("next offset = %f, want 1.5", next)
	}
}

func TestAnnotatePassesThroughNonAudio(t *testing.T) {
	for _, frame := range [][]byte{
		[]byte(`{"setupComplete":{}}`),
		[]byte(`{"serverContent":{"turnComplete":true}}`),
		[]byte("not json"),
	} {
		out, next := annotateAudioFrame(frame, 2.5)
		if !bytes.Equal(out, frame) {
			t.Errorf("frame %s rewritten to %s", frame, out)
		}
		if next != 2.5 {
			t.Errorf("frame %s moved the offset to %f", frame, next)
		}
	}
}
