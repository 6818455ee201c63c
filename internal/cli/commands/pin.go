package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type pinCmd struct{}

func (pinCmd) Name() string        { return "pin" }
func (pinCmd) Description() string { return "Закрепить/открепить проект" }
func (pinCmd) Usage() string       { return "pin <project-id>" }

func (pinCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.TogglePin(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "OK")
	return nil
}

func init() { RegisterCmd(pinCmd{}) }
