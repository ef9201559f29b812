package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spynet/spynet-api/internal/application/auth"
	"github.com/spynet/spynet-api/internal/application/usecase"
	"github.com/spynet/spynet-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CaseUC    *usecase.CaseUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido). Las rutas fijas van antes de /:id.
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/detectives", userHandler.ListDetectives)
	users.Get("/my-detectives", RequireRole(entity.RoleManager), userHandler.MyDetectives)
	users.Post("/my-detectives", RequireRole(entity.RoleManager), userHandler.AssignDetective)
	users.Delete("/my-detectives/:detectiveId", RequireRole(entity.RoleManager), userHandler.UnassignDetective)
	users.Get("/", RequireRole(entity.RoleManager), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Cases (protegido)
	cases := protected.Group("/cases")
	caseHandler := NewCaseHandler(deps.CaseUC)
	cases.Get("/", RequireRole(entity.RoleDetective, entity.RoleManager), caseHandler.List)
	cases.Post("/", RequireRole(entity.RoleManager), caseHandler.Create)
	cases.Get("/:id", RequireRole(entity.RoleDetective, entity.RoleManager), caseHandler.GetByID)
	cases.Put("/:id", RequireRole(entity.RoleDetective, entity.RoleManager), caseHandler.Update)
	cases.Delete("/:id", RequireRole(entity.RoleManager), caseHandler.Delete)
}
