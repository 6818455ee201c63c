package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"SecretVault/internal/model"
)

// SecretRepository определяет контракт доступа к секретам, включая
// жизненный цикл корзины (soft delete / restore / permanent delete).
type SecretRepository interface {
	// Create сохраняет новый секрет (содержимое уже зашифровано).
	Create(ctx context.Context, s *model.Secret) error

	// GetByID возвращает секрет по id или ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Secret, error)

	// Update обновляет изменяемые поля записи: title, category,
	// content/nonce и updated_at. ID, ProjectID и CreatedAt не трогаются.
	Update(ctx context.Context, s *model.Secret) error

	// ListByProject возвращает неудалённые секреты проекта.
	ListByProject(ctx context.Context, projectID string) ([]model.Secret, error)

	// ListAll возвращает все секреты, включая корзину (используется экспортом).
	ListAll(ctx context.Context) ([]model.Secret, error)

	// ListDeleted возвращает корзину: все soft-deleted секреты.
	ListDeleted(ctx context.Context) ([]model.Secret, error)

	// Search ищет подстроку (без учёта регистра) в title/category
	// среди неудалённых секретов всех проектов.
	Search(ctx context.Context, query string) ([]model.Secret, error)

	// SoftDelete помечает секрет удалённым. Несуществующий id — no-op.
	SoftDelete(ctx context.Context, id string) error

	// Restore снимает пометку удаления; projectId сохраняется.
	// Несуществующий id — no-op.
	Restore(ctx context.Context, id string) error

	// PermanentDelete необратимо удаляет запись. Несуществующий id — ErrNotFound.
	PermanentDelete(ctx context.Context, id string) error
}

type secretRepo struct {
	db *gorm.DB
}

// NewSecretRepository создаёт gorm-реализацию репозитория секретов.
func NewSecretRepository(db *gorm.DB) SecretRepository {
	return &secretRepo{db: db}
}

func (r *secretRepo) Create(ctx context.Context, s *model.Secret) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *secretRepo) GetByID(ctx context.Context, id string) (*model.Secret, error) {
	var s model.Secret
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *secretRepo) Update(ctx context.Context, s *model.Secret) error {
	tx := r.db.WithContext(ctx).Model(&model.Secret{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"title":      s.Title,
			"category":   s.Category,
			"content":    s.Content,
			"nonce":      s.Nonce,
			"updated_at": s.UpdatedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *secretRepo) ListByProject(ctx context.Context, projectID string) ([]model.Secret, error) {
	var res []model.Secret
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("updated_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *secretRepo) ListAll(ctx context.Context) ([]model.Secret, error) {
	var res []model.Secret
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *secretRepo) ListDeleted(ctx context.Context) ([]model.Secret, error) {
	var res []model.Secret
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", true).
		Order("deleted_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *secretRepo) Search(ctx context.Context, query string) ([]model.Secret, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var res []model.Secret
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND (LOWER(title) LIKE ? OR LOWER(category) LIKE ?)",
			false, pattern, pattern).
		Order("updated_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *secretRepo) SoftDelete(ctx context.Context, id string) error {
	now := time.Now().UnixMilli()
	return r.db.WithContext(ctx).Model(&model.Secret{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"deleted_at": now,
		}).Error
}

func (r *secretRepo) Restore(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Secret{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": false,
			"deleted_at": nil,
		}).Error
}

func (r *secretRepo) PermanentDelete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&model.Secret{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
