package dto

import "time"

// CreateImageRequest body para POST /api/images. El archivo ya fue subido al
// host de assets por el colaborador externo; acá llega su URL y publicId.
type CreateImageRequest struct {
	URL         string `json:"url"`
	Alt         string `json:"alt,omitempty"`
	Tag         string `json:"tag,omitempty"`
	Observation string `json:"observation,omitempty"`
	PublicID    string `json:"publicId,omitempty"`
}

// UpdateImageRequest body para PUT /api/images/:id.
type UpdateImageRequest struct {
	Alt         *string `json:"alt,omitempty"`
	Tag         *string `json:"tag,omitempty"`
	Observation *string `json:"observation,omitempty"`
}

// ImageResponse imagen en respuestas.
type ImageResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Alt       string    `json:"alt,omitempty"`
	Tag       string    `json:"tag,omitempty"`
	PublicID  string    `json:"publicId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
