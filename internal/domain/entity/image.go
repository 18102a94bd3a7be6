package entity

import "time"

// Image es el registro de un asset ya subido al host externo de imágenes.
// La subida en sí es responsabilidad de un colaborador externo; acá solo se
// persisten URL e identificador público para poder referenciarla y borrarla.
type Image struct {
	ID          int64
	URL         string
	Alt         string
	Tag         string
	Observation string
	PublicID    string // identificador en el host de assets
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
