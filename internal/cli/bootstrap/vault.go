package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"SecretVault/internal/config"
	"SecretVault/internal/repo"
	"SecretVault/internal/service"
)

// OpenVault открывает БД хранилища, выполняет миграции и собирает движок.
// Возвращает (service, cleanup, error); cleanup необходимо вызвать после
// окончания работы, чтобы закрыть соединение с БД и сбросить буфер логгера.
func OpenVault(cfg *config.Config) (*service.VaultService, func() error, error) {
	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	sugar := logger.Sugar()

	db, err := repo.InitDB(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open vault db: %w", err)
	}

	svc := service.NewVaultService(
		repo.NewProjectRepository(db),
		repo.NewSecretRepository(db),
		sugar,
	)
	cleanup := func() error {
		_ = logger.Sync()
		return repo.CloseDB(db)
	}
	return svc, cleanup, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}
