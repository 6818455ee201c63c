package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
)

type secretGetCmd struct{}

func (secretGetCmd) Name() string { return "secret-get" }
func (secretGetCmd) Description() string {
	return "Расшифровать и показать содержимое секрета"
}
func (secretGetCmd) Usage() string { return "secret-get <secret-id>" }

func (secretGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
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

	s, err := svc.GetSecret(ctx, args[0])
	if err != nil {
		return err
	}
	plain, err := svc.Reveal(sess, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:       %s\n", s.ID)
	fmt.Fprintf(Out, "title:    %s\n", s.Title)
	fmt.Fprintf(Out, "category: %s\n", s.Category)
	fmt.Fprintf(Out, "content:  %s\n", plain)
	return nil
}

func init() { RegisterCmd(secretGetCmd{}) }
