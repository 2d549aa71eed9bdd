package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const systemPrompt = `Tu es l'assistant virtuel de MON BILLET SECURISE, la plateforme ivoirienne
de billets de car, de location de vehicules et de services de voyage.
Tu reponds en francais, avec chaleur et concision, comme un agent de gare
d'Adjame. Tu aides a chercher des trajets (par exemple Abidjan - Korhogo),
a choisir un siege, a payer par Wave, Orange Money, MTN ou Moov, et a
retrouver ou annuler un billet. Si la question sort du voyage, ramene
poliment la conversation au voyage.`

// FallbackReply is served whenever the model is unreachable, so the chat
// widget always answers something.
const FallbackReply = "Je suis desole, je n'arrive pas a joindre le service " +
	"pour le moment. Vous pouvez chercher un trajet depuis la page d'accueil, " +
	"ou consulter vos billets dans la rubrique Mes Billets."

type geminiClient struct {
	apiKey string
	model  string
	http   *http.Client
}

func newGeminiClient() *geminiClient {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiClient{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

var defaultClient = newGeminiClient()

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

var errNoAPIKey = errors.New("gemini api key not configured")

// Turn is one prior exchange in the chat history.
type Turn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

func (c *geminiClient) generate(ctx context.Context, history []Turn, message string) (string, error) {
	if c.apiKey == "" {
		return "", errNoAPIKey
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, t := range history {
		role := t.Role
		if role != "model" {
			role = "user"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: t.Text}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: message}}})

	body, err := json.Marshal(geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents:          contents,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned %s", resp.Status)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty model response")
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}
