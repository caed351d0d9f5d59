package usecase

import (
	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// AdminUseCase operaciones administrativas sobre usuarios y ofertas. El
// middleware de rutas ya garantiza rol adm; aquí no se vuelve a verificar.
type AdminUseCase struct {
	userRepo  repository.UserRepository
	offerRepo repository.OfferRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(userRepo repository.UserRepository, offerRepo repository.OfferRepository) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, offerRepo: offerRepo}
}

// ListUsers lista todos los usuarios, más recientes primero.
func (uc *AdminUseCase) ListUsers() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponseFrom(u))
	}
	return out, nil
}

// GetUser obtiene un usuario por ID.
func (uc *AdminUseCase) GetUser(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.UserResponseFrom(user)
	return &out, nil
}

// UpdateUser edita name, phone y/o role de un usuario. El rol solo es mutable
// por esta vía (actor admin).
func (uc *AdminUseCase) UpdateUser(id string, in dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		if *in.Role != domain.RoleUser && *in.Role != domain.RoleAdmin {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	out := dto.UserResponseFrom(user)
	return &out, nil
}

// DeleteUser elimina un usuario. Las ofertas y pujas dependientes caen por el
// ON DELETE CASCADE de las FKs.
func (uc *AdminUseCase) DeleteUser(id string) error {
	return uc.userRepo.Delete(id)
}

// ListOffers lista todas las ofertas (incluye sold) con el vendedor.
func (uc *AdminUseCase) ListOffers() ([]dto.OfferResponse, error) {
	offers, err := uc.offerRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, dto.OfferSummaryResponseFrom(o))
	}
	return out, nil
}

// DeleteOffer elimina cualquier oferta.
func (uc *AdminUseCase) DeleteOffer(id string) error {
	return uc.offerRepo.Delete(id)
}
