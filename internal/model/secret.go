package model

// Категории секретов, известные UI. Хранилище трактует категорию как
// произвольную строку, список открыт для расширения.
const (
	CategoryPassword = "password"
	CategoryAPIKey   = "api_key"
	CategoryNote     = "note"
)

// Secret — запись внутри проекта. Content всегда шифртекст: открытый текст
// в хранилище не попадает, расшифровка — отдельная явная операция.
type Secret struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	// Ссылка на проект без FK-ограничения: целостность при удалении
	// проекта — ответственность вызывающего кода.
	ProjectID string `gorm:"not null;index" json:"projectId"`

	Title    string `gorm:"not null" json:"title"` // открытый текст, участвует в поиске
	Category string `gorm:"not null;index" json:"category"`

	Content []byte `json:"content"` // шифртекст AES-GCM
	Nonce   []byte `json:"nonce"`   // nonce конверта, не секретен

	IsDeleted bool   `gorm:"not null;default:false;index" json:"isDeleted"`
	DeletedAt *int64 `json:"deletedAt,omitempty"`

	CreatedAt int64 `gorm:"not null" json:"createdAt"`
	UpdatedAt int64 `gorm:"not null" json:"updatedAt"`
}
