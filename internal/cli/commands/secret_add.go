package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type secretAddCmd struct{}

func (secretAddCmd) Name() string { return "secret-add" }
func (secretAddCmd) Description() string {
	return "Добавить секрет в проект (содержимое шифруется)"
}
func (secretAddCmd) Usage() string {
	return "secret-add <project-id> <title> <content> [category]"
}

func (secretAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return ErrUsage
	}
	projectID, title, content := args[0], args[1], args[2]
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

	id, err := svc.CreateSecret(ctx, sess, projectID, title, category, content)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", id)
	fmt.Fprintf(Out, "  title: %s\n", title)
	return nil
}

func init() { RegisterCmd(secretAddCmd{}) }
