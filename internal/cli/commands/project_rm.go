package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type projectRmCmd struct{}

func (projectRmCmd) Name() string { return "project-rm" }
func (projectRmCmd) Description() string {
	return "Удалить проект (секреты проекта не затрагиваются)"
}
func (projectRmCmd) Usage() string { return "project-rm <project-id>" }

func (projectRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.DeleteProject(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Deleted")
	return nil
}

func init() { RegisterCmd(projectRmCmd{}) }
