package repository

import "github.com/premiarte/premiarte-api/internal/domain/entity"

// SettingRepository puerto de persistencia del contenido de páginas (CMS legado).
type SettingRepository interface {
	GetByID(id int64) (*entity.Setting, error)
	GetByKey(key string) (*entity.Setting, error)
	List() ([]*entity.Setting, error)
	Update(setting *entity.Setting) error
}
