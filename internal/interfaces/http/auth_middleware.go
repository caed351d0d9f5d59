package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/pkg/jwt"
)

// LocalIdentity key de c.Locals donde queda la identidad verificada.
const LocalIdentity = "identity"

// identityLoader contrato mínimo para resolver el usuario del token. Lo
// implementa el UserRepository; el uso de interfaz permite tests sin DB.
type identityLoader interface {
	GetByID(id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT y resuelve el usuario contra el
// store, dejando la identidad verificada (con contacto y rol) en c.Locals.
// Token ausente, inválido, expirado o sin usuario detrás → 401.
func AuthMiddleware(jwtSecret string, users identityLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vacío"})
		}
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido o expirado"})
		}
		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "usuario no encontrado"})
		}
		c.Locals(LocalIdentity, domain.Identity{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Phone: user.Phone,
			Role:  user.Role,
		})
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) domain.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return domain.Identity{}
	}
	id, _ := v.(domain.Identity)
	return id
}

// RequireAdmin exige rol adm. Debe usarse DESPUÉS de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetIdentity(c).IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "se requiere rol adm"})
		}
		return c.Next()
	}
}
