package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"SecretVault/internal/model"
)

// ProjectRepository определяет контракт доступа к проектам.
type ProjectRepository interface {
	// Create сохраняет новый проект.
	Create(ctx context.Context, p *model.Project) error

	// GetByID возвращает проект по id или ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// ListAll возвращает все проекты: закреплённые первыми,
	// внутри группы — новые первыми.
	ListAll(ctx context.Context) ([]model.Project, error)

	// TogglePin переключает признак закрепления. Несуществующий id — no-op.
	TogglePin(ctx context.Context, id string) error

	// UpdateTags целиком заменяет набор тегов. Несуществующий id — no-op.
	UpdateTags(ctx context.Context, id string, tags []string) error

	// Delete жёстко удаляет проект. Несуществующий id — ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepository создаёт gorm-реализацию репозитория проектов.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListAll(ctx context.Context) ([]model.Project, error) {
	var res []model.Project
	err := r.db.WithContext(ctx).
		Order("is_pinned DESC, created_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *projectRepo) TogglePin(ctx context.Context, id string) error {
	// lenient get-then-put: отсутствие записи не считается ошибкой
	p, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).Model(p).Update("is_pinned", !p.IsPinned).Error
}

func (r *projectRepo) UpdateTags(ctx context.Context, id string, tags []string) error {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).Model(p).Update("tags", model.Tags(tags)).Error
}

func (r *projectRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
