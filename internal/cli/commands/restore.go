package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type restoreCmd struct{}

func (restoreCmd) Name() string { return "restore" }
func (restoreCmd) Description() string {
	return "Вернуть секрет из корзины в его проект"
}
func (restoreCmd) Usage() string { return "restore <secret-id>" }

func (restoreCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.RestoreSecret(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Restored")
	return nil
}

func init() { RegisterCmd(restoreCmd{}) }
