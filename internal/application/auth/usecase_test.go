package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/caseritos/caseritos-api/internal/application/auth"
	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	pkgjwt "github.com/caseritos/caseritos-api/pkg/jwt"
)

// memUserRepo store de usuarios en memoria indexado por id y por email.
type memUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) { return r.byEmail[email], nil }

func (r *memUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (r *memUserRepo) Delete(id string) error {
	if u, ok := r.byID[id]; ok {
		delete(r.byEmail, u.Email)
		delete(r.byID, id)
	}
	return nil
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpHours: 168, Issuer: "caseritos-test"}

func TestRegister_CreaUsuarioConRolUserYToken(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "rosa@caseritos.pe",
		Password: "secreto123",
		Name:     "Rosa",
		Phone:    "987111222",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, domain.RoleUser, out.User.Role)
	assert.NotEmpty(t, out.Token)

	// El token lleva el id y el rol del usuario recién creado.
	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, domain.RoleUser, role)

	// La contraseña queda hasheada, nunca en claro.
	stored := repo.byEmail["rosa@caseritos.pe"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

func TestRegister_EmailDuplicado_Rechazado(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Email: "rosa@caseritos.pe", Password: "a"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "rosa@caseritos.pe", Password: "b"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas_DevuelveToken(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	reg, err := uc.Register(dto.RegisterRequest{Email: "luis@caseritos.pe", Password: "clave456", Name: "Luis"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "luis@caseritos.pe", Password: "clave456"})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_PasswordIncorrecta_NoAutorizado(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Email: "luis@caseritos.pe", Password: "clave456"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "luis@caseritos.pe", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_NoAutorizado(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@caseritos.pe", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureAdmin_CreaLaCuentaConRolAdm(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	err := uc.EnsureAdmin(auth.AdminAccount{
		Email:    "admin@caseritos.pe",
		Password: "superadmin",
		Name:     "Administrador General",
		Phone:    "999000111",
	})
	require.NoError(t, err)

	u := repo.byEmail["admin@caseritos.pe"]
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("superadmin")))
}

func TestEnsureAdmin_PromuevaCuentaExistente(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	reg, err := uc.Register(dto.RegisterRequest{Email: "admin@caseritos.pe", Password: "vieja", Name: "Ana"})
	require.NoError(t, err)

	err = uc.EnsureAdmin(auth.AdminAccount{Email: "admin@caseritos.pe", Password: "nueva"})
	require.NoError(t, err)

	u := repo.byID[reg.User.ID]
	require.NotNil(t, u)
	assert.Equal(t, domain.RoleAdmin, u.Role)
	assert.Equal(t, "Ana", u.Name, "sin ADMIN_NAME se conserva el nombre existente")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("nueva")))
}

func TestEnsureAdmin_SinConfiguracion_SeOmite(t *testing.T) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	require.NoError(t, uc.EnsureAdmin(auth.AdminAccount{}))
	assert.Empty(t, repo.byID)
}
