package entity

import "time"

// User representa un usuario del marketplace (vendedor y/o comprador).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Role         string // "user" | "adm"
	CreatedAt    time.Time
}
