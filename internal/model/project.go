package model

// Project — группа секретов пользователя.
type Project struct {
	ID   string `gorm:"primaryKey;type:uuid" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// Теги хранятся одной JSON-колонкой; порядок вставки сохраняется.
	Tags Tags `gorm:"type:text" json:"tags"`

	IsPinned bool `gorm:"not null;default:false" json:"isPinned"`

	// Unix-миллисекунды; используется только для сортировки.
	CreatedAt int64 `gorm:"not null" json:"createdAt"`
}
