package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hugohenrick/virtual-assistant/docs"
	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/controller"
	"github.com/hugohenrick/virtual-assistant/internal/adapter/api/route"
	"github.com/hugohenrick/virtual-assistant/internal/adapter/repository"
	"github.com/hugohenrick/virtual-assistant/internal/config"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/database"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/mail"
	"github.com/hugohenrick/virtual-assistant/internal/infrastructure/storage"
	"github.com/hugohenrick/virtual-assistant/pkg/auth"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
	"github.com/hugohenrick/virtual-assistant/pkg/intent/adapter"
	"github.com/hugohenrick/virtual-assistant/pkg/logger"
	"github.com/hugohenrick/virtual-assistant/pkg/middleware"
	"github.com/hugohenrick/virtual-assistant/pkg/voice"
)

// App representa a aplicação e suas dependências
type App struct {
	cfg        *config.Config
	logger     logger.Logger
	router     *gin.Engine
	db         *database.PostgresDB
	manager    *intent.IntentManager
	jwtService *auth.JWTService

	sessionController   *controller.SessionController
	assistantController *controller.AssistantController
	fileController      *controller.FileController
	emailController     *controller.EmailController
	contactController   *controller.ContactController
	historyController   *controller.HistoryController
	healthController    *controller.HealthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.NewWithOptions(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// Aplicar migrações pendentes
	migrator, err := database.NewMigrator(cfg.DB.ConnectionString(), log)
	if err != nil {
		return nil, err
	}
	err = migrator.Up()
	if closeErr := migrator.Close(); closeErr != nil {
		log.Warn("Erro ao fechar migrador", "error", closeErr)
	}
	if err != nil {
		return nil, err
	}

	// Configurar banco de dados
	db, err := database.NewPostgresDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	disk, err := storage.NewDisk(cfg.Storage.UploadsPath)
	if err != nil {
		db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.JWT)
	if err != nil {
		db.Close()
		return nil, err
	}

	// Criar repositórios
	fileRepo := repository.NewPostgresFileRepository(db)
	emailRepo := repository.NewPostgresEmailRepository(db)
	contactRepo := repository.NewPostgresContactRepository(db)
	historyRepo := repository.NewPostgresHistoryRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Colaboradores do assistente
	fileStore := adapter.NewFileStoreAdapter(fileRepo, disk, log)
	mailer := adapter.NewMailAdapter(mail.NewSMTPSender(cfg.SMTP, log), emailRepo, log)
	recorder := adapter.NewHistoryRecorder(historyRepo)

	dispatcher := intent.NewDispatcher(fileStore, mailer, recorder, log)
	manager := intent.NewIntentManager(dispatcher, chatRepo, log)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	return &App{
		cfg:        cfg,
		logger:     log,
		router:     router,
		db:         db,
		manager:    manager,
		jwtService: jwtService,

		sessionController:   controller.NewSessionController(jwtService, log),
		assistantController: controller.NewAssistantController(manager, log),
		fileController:      controller.NewFileController(fileStore, log),
		emailController:     controller.NewEmailController(mailer, emailRepo, log),
		contactController:   controller.NewContactController(contactRepo, log),
		historyController:   controller.NewHistoryController(historyRepo, fileRepo, emailRepo, log),
		healthController:    controller.NewHealthController(db),
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	docs.SwaggerInfo.BasePath = basePath
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(basePath)

	route.RegisterHealthRoutes(api, a.healthController)
	route.RegisterSessionRoutes(api, a.sessionController)
	route.RegisterAssistantRoutes(api, a.assistantController, a.jwtService)
	route.RegisterFileRoutes(api, a.fileController)
	route.RegisterEmailRoutes(api, a.emailController)
	route.RegisterContactRoutes(api, a.contactController)
	route.RegisterHistoryRoutes(api, a.historyController)
}

// Start inicia o servidor HTTP e os serviços de fundo até ctx terminar
func (a *App) Start(ctx context.Context) error {
	if a.cfg.MQTT.Enabled {
		client := voice.NewClient(a.cfg.MQTT, a.manager, a.logger)
		if err := client.Start(ctx); err != nil {
			return fmt.Errorf("erro ao conectar ao broker MQTT: %w", err)
		}
		a.logger.Info("Voice bridge connected", "broker", a.cfg.MQTT.Broker)
	}

	go a.pruneSessions(ctx)

	server := &http.Server{
		Addr:              a.cfg.Server.Address(),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// pruneSessions descarta periodicamente as conversas ociosas
func (a *App) pruneSessions(ctx context.Context) {
	interval := a.cfg.Session.PruneInterval
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.manager.PruneSessions(a.cfg.Session.IdleTimeout)
		}
	}
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
