package assistant

import (
	"encoding/json"
	"log"
	"net/http"

	"monbillet/utils"

	"github.com/julienschmidt/httprouter"
)

// Chat answers one message from the floating assistant widget. Any model
// failure degrades to the static fallback instead of an error status, so
// the widget never shows a broken state.
func Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Message string `json:"message"`
		History []Turn `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Message == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	reply, err := defaultClient.generate(r.Context(), input.History, input.Message)
	if err != nil {
		log.Printf("assistant chat fallback: %v", err)
		reply = FallbackReply
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
