package contentapi

import (
	"encoding/json"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
)

type listEnvelope struct {
	Data []content.Item `json:"data"`
}

type itemEnvelope struct {
	Data *content.Item `json:"data"`
}

type categoriesEnvelope struct {
	Data struct {
		News     []string `json:"news"`
		Projects []string `json:"projects"`
		Journals []string `json:"journals"`
	} `json:"data"`
}

type levelsEnvelope struct {
	Data map[levels.LevelID]levels.Level `json:"data"`
}

type mutationEnvelope struct {
	Message string        `json:"message"`
	Data    *content.Item `json:"data,omitempty"`
}

func decodeJSON(body []byte, v any) error {
	return json.Unmarshal(body, v)
}

// serverMessage extracts the "message" field from an error body, returning
// the empty string when the body is not a JSON message payload.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
