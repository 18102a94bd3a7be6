package dto

import (
	"encoding/json"
	"time"
)

// UpdateSettingRequest body para PUT /api/settings/:id. El valor es JSON
// arbitrario que se persiste tal cual.
type UpdateSettingRequest struct {
	Value json.RawMessage `json:"value"`
}

// SettingResponse bloque de contenido en respuestas.
type SettingResponse struct {
	ID        int64           `json:"id"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
