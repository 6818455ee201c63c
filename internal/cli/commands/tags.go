package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type tagsCmd struct{}

func (tagsCmd) Name() string { return "tags" }
func (tagsCmd) Description() string {
	return "Заменить теги проекта (без аргументов — очистить)"
}
func (tagsCmd) Usage() string { return "tags <project-id> [tag ...]" }

func (tagsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.UpdateTags(ctx, args[0], args[1:]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "OK")
	return nil
}

func init() { RegisterCmd(tagsCmd{}) }
