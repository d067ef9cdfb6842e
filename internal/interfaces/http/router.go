package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/empresas-admin/internal/application/usecase"
)

// Roles aceptados por las rutas de escritura.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmpresaUC  *usecase.EmpresaUseCase
	SucursalUC *usecase.SucursalUseCase
	ImagenUC   *usecase.ImagenUseCase
	JWTSecret  string // vacío = rutas de escritura sin autenticación
	FilesDir   string // carpeta servida en /imagenes/files
}

// NewApp construye la app Fiber con los middlewares comunes.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 << 20,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	return app
}

// Router registra las rutas del API.
func Router(app *fiber.App, deps RouterDeps) {
	// Lecturas públicas; escrituras con Bearer si hay secret configurado.
	guard := func(h fiber.Handler, roles ...string) []fiber.Handler {
		if deps.JWTSecret == "" {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(roles...), h}
	}

	empresas := app.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	sucursalHandler := NewSucursalHandler(deps.SucursalUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", guard(empresaHandler.Create, RoleAdmin, RoleOperador)...)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Put("/:id", guard(empresaHandler.Update, RoleAdmin, RoleOperador)...)
	empresas.Delete("/:id", guard(empresaHandler.Delete, RoleAdmin)...)
	empresas.Get("/:id/sucursales", sucursalHandler.ListByEmpresa)

	imagenes := app.Group("/imagenes")
	imagenHandler := NewImagenHandler(deps.ImagenUC)
	imagenes.Post("/upload", guard(imagenHandler.Upload, RoleAdmin, RoleOperador)...)
	imagenes.Post("/deleteImg", guard(imagenHandler.Delete, RoleAdmin, RoleOperador)...)
	if deps.FilesDir != "" {
		imagenes.Static("/files", deps.FilesDir)
	}
}
