package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hugohenrick/virtual-assistant/internal/config"
)

// server é o ciclo de vida da aplicação visto por main
type server interface {
	SetupRoutes(basePath string)
	Start(ctx context.Context) error
	Close()
}

func main() {
	if err := run(); err != nil {
		log.Printf("Erro: %v", err)
		os.Exit(1)
	}
}

func run() error {
	// Carregar configuração (.env, config.yaml e ambiente)
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("erro ao iniciar aplicação: %w", err)
	}

	return serve(ctx, app, cfg.Server.BasePath)
}

// serve registra as rotas e bloqueia até o servidor parar; os recursos da
// aplicação são liberados também quando o servidor falha
func serve(ctx context.Context, srv server, basePath string) error {
	defer srv.Close()

	srv.SetupRoutes(basePath)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("erro no servidor: %w", err)
	}
	return nil
}
