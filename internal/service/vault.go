package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"SecretVault/internal/crypto"
	"SecretVault/internal/model"
	"SecretVault/internal/repo"
	"SecretVault/internal/session"
)

var (
	// ErrValidation возвращается при пустых обязательных полях.
	ErrValidation = errors.New("validation failed")
	// ErrConflict возвращается при недопустимом переходе жизненного цикла
	// (например, purge активного секрета: он доступен только из корзины).
	ErrConflict = errors.New("operation not allowed in current state")
)

// VaultService — движок хранилища: оркестрирует шифрование и репозитории.
// Содержимое секретов шифруется перед записью и остаётся шифртекстом во всех
// листингах; расшифровка — отдельная операция Reveal.
type VaultService struct {
	projects repo.ProjectRepository
	secrets  repo.SecretRepository
	logger   *zap.SugaredLogger
}

// NewVaultService создаёт движок поверх переданных репозиториев.
func NewVaultService(p repo.ProjectRepository, s repo.SecretRepository, logger *zap.SugaredLogger) *VaultService {
	return &VaultService{projects: p, secrets: s, logger: logger}
}

// CreateProject создаёт проект и возвращает его id.
func (v *VaultService) CreateProject(ctx context.Context, name string, tags []string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: project name is required", ErrValidation)
	}
	p := &model.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Tags:      model.Tags(tags),
		IsPinned:  false,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := v.projects.Create(ctx, p); err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	v.logger.Infow("project created", "id", p.ID)
	return p.ID, nil
}

// ListProjects возвращает проекты: закреплённые первыми, затем новые первыми.
func (v *VaultService) ListProjects(ctx context.Context) ([]model.Project, error) {
	return v.projects.ListAll(ctx)
}

// GetProject возвращает проект по id.
func (v *VaultService) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return v.projects.GetByID(ctx, id)
}

// TogglePin переключает закрепление проекта. Несуществующий id — тихий no-op.
func (v *VaultService) TogglePin(ctx context.Context, id string) error {
	return v.projects.TogglePin(ctx, id)
}

// UpdateTags целиком заменяет теги проекта. Несуществующий id — тихий no-op.
func (v *VaultService) UpdateTags(ctx context.Context, id string, tags []string) error {
	return v.projects.UpdateTags(ctx, id, tags)
}

// DeleteProject жёстко удаляет проект. Секреты проекта не трогаются:
// хранилище не поддерживает ссылочную целостность, это зона вызывающего.
func (v *VaultService) DeleteProject(ctx context.Context, id string) error {
	return v.projects.Delete(ctx, id)
}

// CreateSecret шифрует содержимое ключом сессии и сохраняет секрет.
// Возвращает id новой записи.
func (v *VaultService) CreateSecret(ctx context.Context, sess *session.Session, projectID, title, category, content string) (string, error) {
	if projectID == "" {
		return "", fmt.Errorf("%w: project id is required", ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: secret title is required", ErrValidation)
	}
	if content == "" {
		return "", fmt.Errorf("%w: secret content is required", ErrValidation)
	}
	if category == "" {
		category = model.CategoryPassword
	}
	key, err := sess.Key()
	if err != nil {
		return "", err
	}
	env, err := crypto.Encrypt([]byte(content), key)
	if err != nil {
		return "", fmt.Errorf("encrypt content: %w", err)
	}
	now := time.Now().UnixMilli()
	s := &model.Secret{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Title:     title,
		Category:  category,
		Content:   env.Content,
		Nonce:     env.Nonce,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := v.secrets.Create(ctx, s); err != nil {
		return "", fmt.Errorf("create secret: %w", err)
	}
	v.logger.Infow("secret created", "id", s.ID, "project_id", projectID)
	return s.ID, nil
}

// UpdateSecret заново шифрует содержимое текущим ключом сессии и обновляет
// запись. ID, ProjectID и CreatedAt неизменяемы; UpdatedAt обновляется.
func (v *VaultService) UpdateSecret(ctx context.Context, sess *session.Session, id, title, category, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: secret title is required", ErrValidation)
	}
	if content == "" {
		return fmt.Errorf("%w: secret content is required", ErrValidation)
	}
	cur, err := v.secrets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == "" {
		category = cur.Category
	}
	key, err := sess.Key()
	if err != nil {
		return err
	}
	env, err := crypto.Encrypt([]byte(content), key)
	if err != nil {
		return fmt.Errorf("encrypt content: %w", err)
	}
	cur.Title = title
	cur.Category = category
	cur.Content = env.Content
	cur.Nonce = env.Nonce
	cur.UpdatedAt = time.Now().UnixMilli()
	if err := v.secrets.Update(ctx, cur); err != nil {
		return fmt.Errorf("update secret: %w", err)
	}
	return nil
}

// ListSecrets возвращает неудалённые секреты проекта; содержимое остаётся
// шифртекстом.
func (v *VaultService) ListSecrets(ctx context.Context, projectID string) ([]model.Secret, error) {
	return v.secrets.ListByProject(ctx, projectID)
}

// GetSecret возвращает секрет по id (шифртекст).
func (v *VaultService) GetSecret(ctx context.Context, id string) (*model.Secret, error) {
	return v.secrets.GetByID(ctx, id)
}

// Reveal — явная операция расшифровки содержимого одного секрета.
// Неверная фраза сессии даёт crypto.ErrDecryptionFailed.
func (v *VaultService) Reveal(sess *session.Session, s *model.Secret) (string, error) {
	key, err := sess.Key()
	if err != nil {
		return "", err
	}
	plain, err := crypto.Decrypt(crypto.Envelope{Nonce: s.Nonce, Content: s.Content}, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// SoftDelete отправляет секрет в корзину. Несуществующий id — тихий no-op.
func (v *VaultService) SoftDelete(ctx context.Context, id string) error {
	return v.secrets.SoftDelete(ctx, id)
}

// RestoreSecret возвращает секрет из корзины в его исходный проект.
func (v *VaultService) RestoreSecret(ctx context.Context, id string) error {
	return v.secrets.Restore(ctx, id)
}

// PermanentDelete необратимо удаляет секрет. Допустим только из корзины:
// для активного секрета возвращается ErrConflict.
func (v *VaultService) PermanentDelete(ctx context.Context, id string) error {
	s, err := v.secrets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.IsDeleted {
		return fmt.Errorf("%w: secret is not in trash", ErrConflict)
	}
	if err := v.secrets.PermanentDelete(ctx, id); err != nil {
		return err
	}
	v.logger.Infow("secret purged", "id", id)
	return nil
}

// ListTrash возвращает все soft-deleted секреты.
func (v *VaultService) ListTrash(ctx context.Context) ([]model.Secret, error) {
	return v.secrets.ListDeleted(ctx)
}

// Search ищет подстроку в title/category неудалённых секретов всех проектов.
func (v *VaultService) Search(ctx context.Context, query string) ([]model.Secret, error) {
	return v.secrets.Search(ctx, query)
}
