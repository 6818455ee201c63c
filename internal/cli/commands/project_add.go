package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type projectAddCmd struct{}

func (projectAddCmd) Name() string { return "project-add" }
func (projectAddCmd) Description() string {
	return "Создать проект (опционально сразу с тегами)"
}
func (projectAddCmd) Usage() string { return "project-add <name> [tag ...]" }

func (projectAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	name := args[0]
	tags := args[1:]

	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	id, err := svc.CreateProject(ctx, name, tags)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:   %s\n", id)
	fmt.Fprintf(Out, "  name: %s\n", name)
	if len(tags) > 0 {
		fmt.Fprintf(Out, "  tags: %v\n", tags)
	}
	return nil
}

func init() { RegisterCmd(projectAddCmd{}) }
