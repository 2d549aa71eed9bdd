package assistant

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1 << 14,
	WriteBufferSize: 1 << 14,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const liveEndpoint = "wss://generativelanguage.googleapis.com/ws/" +
	"google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

// Voice bridges the browser's microphone stream to the live voice model.
// The client sends and receives JSON frames whose audio fields are base64
// PCM16. Upstream frames pass through untouched; downstream audio frames
// are annotated with playbackOffset/duration seconds so the client can
// queue chunks gaplessly. When the upstream cannot be reached the client
// gets one fallback frame and the socket closes.
func Voice(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	client, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("voice upgrade failed: %v", err)
		return
	}
	defer client.Close()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		sendVoiceFallback(client)
		return
	}

	upstream, _, err := websocket.DefaultDialer.Dial(
		fmt.Sprintf("%s?key=%s", liveEndpoint, apiKey), nil)
	if err != nil {
		log.Printf("voice upstream dial failed: %v", err)
		sendVoiceFallback(client)
		return
	}
	defer upstream.Close()

	errc := make(chan error, 2)
	go pumpUpstream(client, upstream, errc)
	go pumpDownstream(upstream, client, errc)
	<-errc
}

func pumpUpstream(src, dst *websocket.Conn, errc chan<- error) {
	for {
		msgType, msg, err := src.ReadMessage()
		if err != nil {
			errc <- err
			return
		}
		if err := dst.WriteMessage(msgType, msg); err != nil {
			errc <- err
			return
		}
	}
}

func pumpDownstream(src, dst *websocket.Conn, errc chan<- error) {
	offset := 0.0
	for {
		msgType, msg, err := src.ReadMessage()
		if err != nil {
			errc <- err
			return
		}
		if msgType == websocket.TextMessage {
			msg, offset = annotateAudioFrame(msg, offset)
		}
		if err := dst.WriteMessage(msgType, msg); err != nil {
			errc <- err
			return
		}
	}
}

// annotateAudioFrame measures the inline PCM of a downstream frame and
// stamps it with the second offset at which the client should start
// playback plus the chunk duration. Frames without audio, and frames we
// cannot parse, pass through unchanged.
func annotateAudioFrame(frame []byte, offset float64) ([]byte, float64) {
	var msg map[string]json.RawMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		return frame, offset
	}
	raw, ok := msg["serverContent"]
	if !ok {
		return frame, offset
	}

	var content struct {
		ModelTurn struct {
			Parts []struct {
				InlineData struct {
					Data string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"modelTurn"`
	}
	if err := json.Unmarshal(raw, &content); err != nil {
		return frame, offset
	}

	total := 0.0
	for _, p := range content.ModelTurn.Parts {
		if p.InlineData.Data == "" {
			continue
		}
		samples, err := DecodePCM16(p.InlineData.Data)
		if err != nil {
			continue
		}
		total += Duration(samples, OutputSampleRate)
	}
	if total == 0 {
		return frame, offset
	}

	msg["playbackOffset"], _ = json.Marshal(offset)
	msg["duration"], _ = json.Marshal(total)
	out, err := json.Marshal(msg)
	if err != nil {
		return frame, offset
	}
	return out, offset + total
}

func sendVoiceFallback(conn *websocket.Conn) {
	// A short silent tail keeps audio-only clients' playback queues
	// well-formed when the session degrades to text.
	frame, _ := json.Marshal(map[string]any{
		"type":  "fallback",
		"text":  FallbackReply,
		"audio": EncodePCM16(make([]float32, OutputSampleRate/5)),
	})
	_ = conn.WriteMessage(websocket.TextMessage, frame)
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "unavailable"))
}
