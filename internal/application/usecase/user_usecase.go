package usecase

import (
	"github.com/tu-usuario/orders-pro/internal/application/dto"
	"github.com/tu-usuario/orders-pro/internal/domain"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
)

// UserUseCase casos de uso sobre usuarios: perfil, listado y cambio de rol.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve el usuario por ID. ErrUserNotFound si no existe.
func (uc *UserUseCase) Profile(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List devuelve todos los usuarios (solo admin llega aquí, lo decide el router).
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// ChangeRole asigna un rol del enum cerrado a otro usuario.
// ErrInvalidRole si el rol no es admin/customer/sales_rep; ErrUserNotFound si
// el usuario objetivo no existe.
func (uc *UserUseCase) ChangeRole(in dto.UpdateRoleRequest) error {
	if !entity.ValidRole(in.Role) {
		return domain.ErrInvalidRole
	}
	target, err := uc.repo.GetByID(in.UserID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.UpdateRole(target.ID, in.Role)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
