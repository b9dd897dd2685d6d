package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/orders-pro/internal/application/dto"
	"github.com/tu-usuario/orders-pro/internal/domain"
	"github.com/tu-usuario/orders-pro/internal/domain/entity"
	"github.com/tu-usuario/orders-pro/internal/domain/repository"
	"github.com/tu-usuario/orders-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol customer: hashea el password con bcrypt,
// persiste y devuelve un token firmado con la identidad del nuevo usuario.
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", domain.ErrMissingFields
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return "", err
	}
	return uc.token(user)
}

// Login verifica email/password y devuelve un token firmado.
// Cualquier fallo de credenciales es ErrInvalidCredentials, sin distinguir
// email inexistente de password incorrecto.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return uc.token(user)
}

func (uc *AuthUseCase) token(user *entity.User) (string, error) {
	ident := jwt.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	return jwt.Generate(uc.jwtCfg.Secret, ident, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
