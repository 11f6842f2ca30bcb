package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/virtual-assistant/internal/config"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/database"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
)

var configFile string

// rootCmd agrupa os comandos de migração
var rootCmd = &cobra.Command{
	Use:   "migration",
	Short: "Gerencia as migrações do banco de dados do assistente",
	Long: `Aplica ou desfaz as migrações embutidas no binário.

Comandos disponíveis:
  up      - aplica todas as migrações pendentes
  down    - desfaz as últimas N migrações (padrão 1)
  version - mostra a versão atual
  force   - define a versão sem executar migrações`,
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas as migrações pendentes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			return m.Up()
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Desfaz as últimas migrações",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("número de passos inválido: %s", args[0])
			}
			steps = n
		}
		return withMigrator(func(m *database.Migrator) error {
			return m.Down(steps)
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão atual do banco",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", version, dirty)
			return nil
		})
	},
}

var forceCmd = &cobra.Command{
	Use:   "force <version>",
	Short: "Define a versão sem executar migrações",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("versão inválida: %s", args[0])
		}
		return withMigrator(func(m *database.Migrator) error {
			return m.Force(version)
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "arquivo de configuração (yaml)")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd, forceCmd)
}

func withMigrator(fn func(m *database.Migrator) error) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	log := logger.NewWithOptions(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	m, err := database.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Erro ao fechar migrador", "error", err)
		}
	}()

	return fn(m)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
