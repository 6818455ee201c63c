package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type secretEditCmd struct{}

func (secretEditCmd) Name() string { return "secret-edit" }
func (secretEditCmd) Description() string {
	return "Обновить секрет (содержимое шифруется заново)"
}
func (secretEditCmd) Usage() string {
	return "secret-edit <secret-id> <title> <content> [category]"
}

func (secretEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	id, title, content := args[0], args[1], args[2]
	category := ""
	if len(args) == 4 {
		category = args[3]
	}

	sess, err := unlockSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Lock()

	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.UpdateSecret(ctx, sess, id, title, category, content); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated")
	return nil
}

func init() { RegisterCmd(secretEditCmd{}) }
