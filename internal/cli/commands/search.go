package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type searchCmd struct{}

func (searchCmd) Name() string { return "search" }
func (searchCmd) Description() string {
	return "Искать секреты по названию/категории во всех проектах"
}
func (searchCmd) Usage() string { return "search <query>" }

func (searchCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.Search(ctx, args[0])
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Ничего не найдено")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(Out, "- %s  title=%s  category=%s  project=%s\n", s.ID, s.Title, s.Category, s.ProjectID)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
