package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"SecretVault/internal/model"
)

func addProject(t *testing.T, r ProjectRepository, name string, pinned bool, createdAt int64) string {
	t.Helper()
	p := &model.Project{
		ID:        uuid.NewString(),
		Name:      name,
		IsPinned:  pinned,
		CreatedAt: createdAt,
	}
	if err := r.Create(context.Background(), p); err != nil {
		t.Fatalf("create project %s: %v", name, err)
	}
	return p.ID
}

func TestProjectRepo_ListAll_PinnedThenNewest(t *testing.T) {
	r := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	// (pinned=false, t=100), (pinned=true, t=50), (pinned=true, t=90)
	addProject(t, r, "old-unpinned", false, 100)
	addProject(t, r, "old-pinned", true, 50)
	addProject(t, r, "new-pinned", true, 90)

	list, err := r.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("want 3 projects, got %d", len(list))
	}
	want := []string{"new-pinned", "old-pinned", "old-unpinned"}
	for i, name := range want {
		if list[i].Name != name {
			t.Fatalf("position %d: want %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestProjectRepo_TogglePin(t *testing.T) {
	r := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	id := addProject(t, r, "proj", false, 1)
	if err := r.TogglePin(ctx, id); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	p, err := r.GetByID(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsPinned {
		t.Fatalf("expected pinned after toggle")
	}
	if err := r.TogglePin(ctx, id); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	p, _ = r.GetByID(ctx, id)
	if p.IsPinned {
		t.Fatalf("expected unpinned after second toggle")
	}
}

func TestProjectRepo_MissingID_SilentNoop(t *testing.T) {
	r := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	existing := addProject(t, r, "keep", false, 1)

	// переключатели по несуществующему id не ошибаются и ничего не меняют
	if err := r.TogglePin(ctx, "no-such-id"); err != nil {
		t.Fatalf("toggle missing: %v", err)
	}
	if err := r.UpdateTags(ctx, "no-such-id", []string{"x"}); err != nil {
		t.Fatalf("tags missing: %v", err)
	}
	p, err := r.GetByID(ctx, existing)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsPinned || len(p.Tags) != 0 {
		t.Fatalf("existing record must stay unchanged: %+v", p)
	}
}

func TestProjectRepo_UpdateTags_WholesaleReplace(t *testing.T) {
	r := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	id := addProject(t, r, "proj", false, 1)
	if err := r.UpdateTags(ctx, id, []string{"infra", "prod"}); err != nil {
		t.Fatalf("update tags: %v", err)
	}
	p, _ := r.GetByID(ctx, id)
	if len(p.Tags) != 2 || p.Tags[0] != "infra" || p.Tags[1] != "prod" {
		t.Fatalf("tags mismatch: %v", p.Tags)
	}

	// замена целиком, не слияние
	if err := r.UpdateTags(ctx, id, []string{"dev"}); err != nil {
		t.Fatalf("replace tags: %v", err)
	}
	p, _ = r.GetByID(ctx, id)
	if len(p.Tags) != 1 || p.Tags[0] != "dev" {
		t.Fatalf("tags must be replaced wholesale: %v", p.Tags)
	}
}

func TestProjectRepo_GetAndDelete_NotFound(t *testing.T) {
	r := NewProjectRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := r.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing: want ErrNotFound, got %v", err)
	}
	if err := r.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: want ErrNotFound, got %v", err)
	}

	id := addProject(t, r, "doomed", false, 1)
	if err := r.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetByID(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete: want ErrNotFound, got %v", err)
	}
}
