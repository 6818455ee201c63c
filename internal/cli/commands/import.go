package commands

import (
	"context"
	"fmt"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
	"SecretVault/internal/service"
)

type importCmd struct{}

func (importCmd) Name() string { return "import" }
func (importCmd) Description() string {
	return "Загрузить записи из JSON-файла выгрузки"
}
func (importCmd) Usage() string { return "import <file>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	b, err := service.ReadBackupFile(args[0])
	if err != nil {
		return err
	}

	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	sum, err := svc.Import(ctx, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Imported: %d projects, %d secrets\n", sum.Projects, sum.Secrets)
	for _, skipped := range sum.Skipped {
		fmt.Fprintf(Out, "  skipped: %s\n", skipped)
	}
	// Шифртекст не перешифровывается: чужая выгрузка останется читаемой
	// только фразой, которой была зашифрована
	fmt.Fprintln(Out, "! Импортированные секреты расшифруются только исходной кодовой фразой")
	return nil
}

func init() { RegisterCmd(importCmd{}) }
