package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empresas-admin/internal/application/usecase"
	"github.com/jhoicas/empresas-admin/internal/domain/repository"
	"github.com/jhoicas/empresas-admin/internal/infrastructure/memory"
	"github.com/jhoicas/empresas-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/empresas-admin/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/empresas-admin/internal/interfaces/http"
	"github.com/jhoicas/empresas-admin/pkg/config"
	"github.com/jhoicas/empresas-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		empresaRepo  repository.EmpresaRepository
		sucursalRepo repository.SucursalRepository
		imagenRepo   repository.ImagenRepository
	)
	switch cfg.DB.Driver {
	case "memory":
		store := memory.NewStore()
		empresaRepo, sucursalRepo = store, store
		imagenRepo = memory.NewImagenStore()
		log.Warn().Msg("usando almacenamiento en memoria; los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
		empresaRepo = postgres.NewEmpresaRepository(pool)
		sucursalRepo = postgres.NewSucursalRepository(pool)
		imagenRepo = postgres.NewImagenRepository(pool)
	}

	files, err := storage.NewDiskStorage(cfg.Storage.Dir, cfg.Storage.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.Dir).Msg("carpeta de imágenes")
	}

	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	sucursalUC := usecase.NewSucursalUseCase(empresaRepo, sucursalRepo)
	imagenUC := usecase.NewImagenUseCase(imagenRepo, files)

	app := httpRouter.NewApp(cfg.App.Name)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Empresas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: rutas de escritura sin autenticación")
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:  empresaUC,
		SucursalUC: sucursalUC,
		ImagenUC:   imagenUC,
		JWTSecret:  cfg.JWT.Secret,
		FilesDir:   files.Dir(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
