package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"SecretVault/internal/model"
)

// Backup — формат файла экспорта: оба списка плюс момент выгрузки.
// Содержимое секретов остаётся шифртекстом, экспорт его не расшифровывает.
// По соглашению файл имеет расширение .env, хотя содержимое — JSON.
type Backup struct {
	Projects  []model.Project `json:"projects"`
	Secrets   []model.Secret  `json:"secrets"`
	Timestamp int64           `json:"timestamp"`
}

// ImportSummary — итог импорта: сколько записей принято и какие пропущены.
type ImportSummary struct {
	Projects int
	Secrets  int
	Skipped  []string
}

// Export собирает снимок хранилища: все проекты и все секреты,
// включая корзину.
func (v *VaultService) Export(ctx context.Context) (*Backup, error) {
	projects, err := v.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export projects: %w", err)
	}
	// корзина и секреты удалённых проектов выгружаются тоже
	secrets, err := v.secrets.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export secrets: %w", err)
	}
	return &Backup{
		Projects:  projects,
		Secrets:   secrets,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// WriteBackupFile сериализует снимок в JSON и пишет его в файл.
func WriteBackupFile(b *Backup, path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// ReadBackupFile читает и разбирает файл экспорта.
func ReadBackupFile(path string) (*Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	return &b, nil
}

// Import добавляет записи снимка через обычный путь создания, по одной.
// Межзаписной транзакции нет: упавшие записи (например, дубликаты id)
// пропускаются и перечисляются в итоге. Шифртекст не перешифровывается —
// импортированные секреты расшифруются только фразой, которой были
// зашифрованы изначально.
func (v *VaultService) Import(ctx context.Context, b *Backup) (ImportSummary, error) {
	var sum ImportSummary
	for i := range b.Projects {
		p := b.Projects[i]
		if err := v.projects.Create(ctx, &p); err != nil {
			v.logger.Warnw("import: project skipped", "id", p.ID, "error", err)
			sum.Skipped = append(sum.Skipped, "project "+p.ID)
			continue
		}
		sum.Projects++
	}
	for i := range b.Secrets {
		s := b.Secrets[i]
		if err := v.secrets.Create(ctx, &s); err != nil {
			v.logger.Warnw("import: secret skipped", "id", s.ID, "error", err)
			sum.Skipped = append(sum.Skipped, "secret "+s.ID)
			continue
		}
		sum.Secrets++
	}
	return sum, nil
}
