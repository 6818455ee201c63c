package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type secretsCmd struct{}

func (secretsCmd) Name() string { return "secrets" }
func (secretsCmd) Description() string {
	return "Показать секреты проекта (содержимое остаётся зашифрованным)"
}
func (secretsCmd) Usage() string { return "secrets <project-id>" }

func (secretsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.ListSecrets(ctx, args[0])
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет секретов")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(Out, "- %s  title=%s  category=%s\n", s.ID, s.Title, s.Category)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(secretsCmd{}) }
