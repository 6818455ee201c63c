package commands

import (
	"context"
	"fmt"
	"time"

	"SecretVault/internal/cli/bootstrap"
	"SecretVault/internal/config"
	"SecretVault/internal/service"
)

type exportCmd struct{}

func (exportCmd) Name() string { return "export" }
func (exportCmd) Description() string {
	return "Выгрузить хранилище в JSON-файл (содержимое остаётся зашифрованным)"
}
func (exportCmd) Usage() string { return "export [file]" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	// .env — историческое расширение формата выгрузки; внутри обычный JSON
	path := fmt.Sprintf("vault-backup-%s.env", time.Now().Format(time.DateOnly))
	if len(args) == 1 {
		path = args[0]
	}

	svc, done, err := bootstrap.OpenVault(cfg)
	if err != nil {
		return err
	}
	defer done()

	b, err := svc.Export(ctx)
	if err != nil {
		return err
	}
	if err := service.WriteBackupFile(b, path); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Exported %d projects, %d secrets → %s\n", len(b.Projects), len(b.Secrets), path)
	return nil
}

func init() { RegisterCmd(exportCmd{}) }
