package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
)

// AdminAccount datos de la cuenta administrativa de bootstrap (desde env:
// ADMIN_EMAIL, ADMIN_PASSWORD, ADMIN_NAME, ADMIN_PHONE).
type AdminAccount struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// Configured indica si el bootstrap está habilitado.
func (a AdminAccount) Configured() bool {
	return a.Email != "" && a.Password != ""
}

// EnsureAdmin crea o actualiza la cuenta administrativa antes de aceptar
// tráfico. Si existe un usuario con ese email se le fija rol adm y la
// contraseña nueva. Un fallo aquí es fatal para el arranque; si la cuenta no
// está configurada el paso se omite sin error.
func (uc *AuthUseCase) EnsureAdmin(acct AdminAccount) error {
	if !acct.Configured() {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(acct.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	existing, err := uc.userRepo.GetByEmail(acct.Email)
	if err != nil {
		return err
	}
	if existing == nil {
		return uc.userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Email:        acct.Email,
			PasswordHash: string(hash),
			Name:         acct.Name,
			Phone:        acct.Phone,
			Role:         domain.RoleAdmin,
			CreatedAt:    time.Now(),
		})
	}
	existing.PasswordHash = string(hash)
	existing.Role = domain.RoleAdmin
	if acct.Name != "" {
		existing.Name = acct.Name
	}
	if acct.Phone != "" {
		existing.Phone = acct.Phone
	}
	return uc.userRepo.Update(existing)
}
