package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/caseritos/caseritos-api/internal/application/auth"
	"github.com/caseritos/caseritos-api/internal/application/lifecycle"
	"github.com/caseritos/caseritos-api/internal/application/listing"
	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OfferUC        *usecase.OfferUseCase
	ListingUC      *listing.ListingUseCase
	LifecycleUC    *lifecycle.OfferLifecycleUseCase
	NotificationUC *usecase.NotificationUseCase
	UserUC         *usecase.UserUseCase
	AdminUC        *usecase.AdminUseCase
	UserRepo       repository.UserRepository
	JWTSecret      string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Listado y detalle de ofertas (público)
	offerHandler := NewOfferHandler(deps.OfferUC, deps.ListingUC, deps.LifecycleUC, deps.Log)
	api.Get("/offers", offerHandler.List)
	api.Get("/offers/:id", offerHandler.Detail)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))

	// Ofertas (protegido)
	offers := protected.Group("/offers")
	offers.Post("/", offerHandler.Create)
	offers.Put("/:id", offerHandler.Update)
	offers.Delete("/:id", offerHandler.Delete)
	offers.Post("/:id/bids", offerHandler.SubmitBid)
	offers.Post("/:id/buy", offerHandler.BuyNow)
	offers.Post("/:id/bids/:bidId/accept", offerHandler.AcceptBid)

	// Notificaciones (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC, deps.Log)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)

	// Usuario autenticado (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.UserRepo, deps.Log)
	users.Get("/me", userHandler.Me)
	users.Get("/me/history", userHandler.History)

	// Administración (protegido + rol adm)
	admin := protected.Group("/admin", RequireAdmin())
	adminHandler := NewAdminHandler(deps.AdminUC, deps.Log)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Put("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/offers", adminHandler.ListOffers)
	admin.Delete("/offers/:id", adminHandler.DeleteOffer)
}
