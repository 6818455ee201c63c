package commands

import (
	"context"
	"fmt"
	"time"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type trashCmd struct{}

func (trashCmd) Name() string        { return "trash" }
func (trashCmd) Description() string { return "Показать корзину" }
func (trashCmd) Usage() string       { return "trash" }

func (trashCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.ListTrash(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Корзина пуста")
		return nil
	}
	for _, s := range list {
		when := ""
		if s.DeletedAt != nil {
			when = "  deleted=" + time.UnixMilli(*s.DeletedAt).Format(time.DateTime)
		}
		fmt.Fprintf(Out, "- %s  title=%s  project=%s%s\n", s.ID, s.Title, s.ProjectID, when)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(trashCmd{}) }
