package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrator aplica as migrações embutidas no binário
type Migrator struct {
	m      *migrate.Migrate
	logger logger.Logger
}

// NewMigrator cria o migrador para a URL do banco (formato postgres://)
func NewMigrator(databaseURL string, log logger.Logger) (*Migrator, error) {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrate: %w", err)
	}

	return &Migrator{m: m, logger: log}, nil
}

// Up aplica todas as migrações pendentes
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.logger.Info("Nenhuma migração pendente")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	mg.logVersion("Migrações aplicadas")
	return nil
}

// Down desfaz as últimas n migrações
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("número de passos inválido: %d", steps)
	}
	if err := mg.m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("erro ao desfazer migrações: %w", err)
	}
	mg.logVersion("Migrações desfeitas")
	return nil
}

// Version retorna a versão atual e se o banco está em estado sujo
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("erro ao consultar versão: %w", err)
	}
	return version, dirty, nil
}

// Force define a versão sem executar migrações, para recuperar um estado sujo
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("erro ao forçar versão %d: %w", version, err)
	}
	mg.logger.Warn("Versão forçada", "version", version)
	return nil
}

// Close libera a origem e a conexão do migrador
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}

func (mg *Migrator) logVersion(msg string) {
	version, dirty, err := mg.Version()
	if err != nil {
		mg.logger.Warn(msg, "error", err)
		return
	}
	mg.logger.Info(msg, "version", version, "dirty", dirty)
}
