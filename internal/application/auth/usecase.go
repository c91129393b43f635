package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: registro y login de vendedores.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un vendedor: hashea el password con bcrypt y persiste.
// Devuelve ErrAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.NewUserInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifica email/password y genera el JWT con la identidad del vendedor.
func (uc *AuthUseCase) Authenticate(in dto.AuthInput) (string, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotRegistered
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.ErrIncorrectPassword
	}
	return jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Lastname: user.Lastname,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
}
