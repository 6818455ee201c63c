package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type rmCmd struct{}

func (rmCmd) Name() string { return "rm" }
func (rmCmd) Description() string {
	return "Переместить секрет в корзину"
}
func (rmCmd) Usage() string { return "rm <secret-id>" }

func (rmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.SoftDelete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Moved to trash")
	return nil
}

func init() { RegisterCmd(rmCmd{}) }
