package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type purgeCmd struct{}

func (purgeCmd) Name() string { return "purge" }
func (purgeCmd) Description() string {
	return "Необратимо удалить секрет из корзины"
}
func (purgeCmd) Usage() string { return "purge <secret-id>" }

func (purgeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.PermanentDelete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Purged")
	return nil
}

func init() { RegisterCmd(purgeCmd{}) }
