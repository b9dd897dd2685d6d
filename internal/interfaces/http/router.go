package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/orders-pro/internal/application/auth"
	"github.com/tu-usuario/orders-pro/internal/application/orders"
	"github.com/tu-usuario/orders-pro/internal/application/usecase"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
	"github.com/tu-usuario/orders-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *orders.OrderUseCase
	Users     repository.UserRepository // para que el middleware cargue la identidad actual
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API. La política de roles por operación:
//
//	register, login, listar productos  -> público
//	perfil propio, listar órdenes       -> cualquier rol autenticado
//	listar usuarios, cambiar rol,
//	crear producto                      -> admin
//	crear orden, cancelar orden         -> customer
//	completar orden                     -> sales_rep
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	productHandler := NewProductHandler(deps.ProductUC)
	orderHandler := NewOrderHandler(deps.OrderUC)

	// Público (sin token)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/products", productHandler.List)

	authRequired := AuthMiddleware(deps.JWTSecret, deps.Users)

	// Usuarios
	api.Get("/user", authRequired, userHandler.Me)
	api.Get("/users", authRequired, RequireRole(entity.RoleAdmin), userHandler.List)
	api.Put("/users", authRequired, RequireRole(entity.RoleAdmin), userHandler.UpdateRole)

	// Catálogo
	api.Post("/products", authRequired, RequireRole(entity.RoleAdmin), productHandler.Create)

	// Órdenes
	api.Post("/orders", authRequired, RequireRole(entity.RoleCustomer), orderHandler.Create)
	api.Get("/orders", authRequired,
		RequireRole(entity.RoleAdmin, entity.RoleCustomer, entity.RoleSalesRep), orderHandler.List)
	api.Put("/orders/cancel/:order_no", authRequired, RequireRole(entity.RoleCustomer), orderHandler.Cancel)
	api.Put("/orders/complete/:order_no", authRequired, RequireRole(entity.RoleSalesRep), orderHandler.Complete)

	// Canal de conexiones en vivo (sin efecto sobre las órdenes)
	app.Get("/ws", WSUpgrade(), WSHandler(deps.Log))
}
