package repository

import "github.com/caseritos/caseritos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// Update persiste name, phone, role y password hash (edición admin y bootstrap).
	Update(user *entity.User) error
	List() ([]*entity.User, error)
	Delete(id string) error
}
