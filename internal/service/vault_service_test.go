package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"SecretVault/internal/model"
	"SecretVault/internal/repo"
	"SecretVault/internal/session"
)

// Моки для ProjectRepository и SecretRepository
type mockProjectRepo struct{ mock.Mock }

func (m *mockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*model.Project, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Project); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectRepo) ListAll(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Project); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProjectRepo) TogglePin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *mockProjectRepo) UpdateTags(ctx context.Context, id string, tags []string) error {
	args := m.Called(ctx, id, tags)
	return args.Error(0)
}
func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.ProjectRepository = (*mockProjectRepo)(nil)

type mockSecretRepo struct{ mock.Mock }

func (m *mockSecretRepo) Create(ctx context.Context, s *model.Secret) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *mockSecretRepo) GetByID(ctx context.Context, id string) (*model.Secret, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSecretRepo) Update(ctx context.Context, s *model.Secret) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *mockSecretRepo) ListByProject(ctx context.Context, projectID string) ([]model.Secret, error) {
	args := m.Called(ctx, projectID)
	if v, ok := args.Get(0).([]model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSecretRepo) ListAll(ctx context.Context) ([]model.Secret, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSecretRepo) ListDeleted(ctx context.Context) ([]model.Secret, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSecretRepo) Search(ctx context.Context, query string) ([]model.Secret, error) {
	args := m.Called(ctx, query)
	if v, ok := args.Get(0).([]model.Secret); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSecretRepo) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *mockSecretRepo) Restore(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *mockSecretRepo) PermanentDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.SecretRepository = (*mockSecretRepo)(nil)

func newMockedVault() (*VaultService, *mockProjectRepo, *mockSecretRepo) {
	pr := new(mockProjectRepo)
	sr := new(mockSecretRepo)
	return NewVaultService(pr, sr, zap.NewNop().Sugar()), pr, sr
}

func unlockedSession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.New(0)
	salt := make([]byte, 16)
	if err := sess.Unlock("test passphrase", salt); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	return sess
}

func TestCreateProject_Validation(t *testing.T) {
	svc, pr, _ := newMockedVault()
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, "", nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.CreateProject(ctx, "   ", nil)
	assert.ErrorIs(t, err, ErrValidation)
	pr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateProject_AssignsIDAndDefaults(t *testing.T) {
	svc, pr, _ := newMockedVault()
	ctx := context.Background()

	pr.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Project) bool {
		return p.ID != "" && p.Name == "infra" && !p.IsPinned && p.CreatedAt > 0
	})).Return(nil).Once()

	id, err := svc.CreateProject(ctx, "infra", []string{"prod"})
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	pr.AssertExpectations(t)
}

func TestCreateSecret_Validation(t *testing.T) {
	svc, _, sr := newMockedVault()
	ctx := context.Background()
	sess := unlockedSession(t)

	cases := []struct {
		name                         string
		project, title, cat, content string
	}{
		{"empty project", "", "t", "", "c"},
		{"empty title", "p", "", "", "c"},
		{"blank title", "p", "  ", "", "c"},
		{"empty content", "p", "t", "", ""},
	}
	for _, tc := range cases {
		_, err := svc.CreateSecret(ctx, sess, tc.project, tc.title, tc.cat, tc.content)
		assert.ErrorIs(t, err, ErrValidation, tc.name)
	}
	sr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSecret_LockedSession(t *testing.T) {
	svc, _, sr := newMockedVault()
	ctx := context.Background()

	sess := session.New(0) // заблокирована
	_, err := svc.CreateSecret(ctx, sess, "p1", "title", "", "content")
	assert.ErrorIs(t, err, session.ErrLocked)
	sr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSecret_EncryptsBeforePersist(t *testing.T) {
	svc, _, sr := newMockedVault()
	ctx := context.Background()
	sess := unlockedSession(t)

	sr.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Secret) bool {
		// в репозиторий уходит только шифртекст
		return string(s.Content) != "plaintext value" &&
			len(s.Nonce) > 0 &&
			s.Category == model.CategoryPassword && // default
			!s.IsDeleted &&
			s.CreatedAt == s.UpdatedAt
	})).Return(nil).Once()

	id, err := svc.CreateSecret(ctx, sess, "p1", "title", "", "plaintext value")
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	sr.AssertExpectations(t)
}

func TestPermanentDelete_OnlyFromTrash(t *testing.T) {
	svc, _, sr := newMockedVault()
	ctx := context.Background()

	active := &model.Secret{ID: "s1", IsDeleted: false}
	sr.On("GetByID", mock.Anything, "s1").Return(active, nil).Once()

	err := svc.PermanentDelete(ctx, "s1")
	assert.ErrorIs(t, err, ErrConflict)
	sr.AssertNotCalled(t, "PermanentDelete", mock.Anything, mock.Anything)

	trashed := &model.Secret{ID: "s2", IsDeleted: true}
	sr.On("GetByID", mock.Anything, "s2").Return(trashed, nil).Once()
	sr.On("PermanentDelete", mock.Anything, "s2").Return(nil).Once()

	assert.NoError(t, svc.PermanentDelete(ctx, "s2"))
	sr.AssertExpectations(t)
}

func TestPermanentDelete_Missing(t *testing.T) {
	svc, _, sr := newMockedVault()
	ctx := context.Background()

	sr.On("GetByID", mock.Anything, "nope").Return(nil, repo.ErrNotFound).Once()
	err := svc.PermanentDelete(ctx, "nope")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestToggles_PassThrough(t *testing.T) {
	svc, pr, sr := newMockedVault()
	ctx := context.Background()

	pr.On("TogglePin", mock.Anything, "p1").Return(nil).Once()
	pr.On("UpdateTags", mock.Anything, "p1", []string{"a"}).Return(nil).Once()
	sr.On("SoftDelete", mock.Anything, "s1").Return(nil).Once()
	sr.On("Restore", mock.Anything, "s1").Return(nil).Once()

	assert.NoError(t, svc.TogglePin(ctx, "p1"))
	assert.NoError(t, svc.UpdateTags(ctx, "p1", []string{"a"}))
	assert.NoError(t, svc.SoftDelete(ctx, "s1"))
	assert.NoError(t, svc.RestoreSecret(ctx, "s1"))
	pr.AssertExpectations(t)
	sr.AssertExpectations(t)
}
