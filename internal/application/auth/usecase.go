package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/pkg/jwt"
)

// UseCase registro e inicio de sesión. El registro crea la empresa y su
// primer usuario administrador en un solo paso.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtService  *jwt.Service
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtService *jwt.Service) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, jwtService: jwtService}
}

// Register crea empresa + usuario admin y devuelve el token de sesión.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	companyName := in.CompanyName
	if companyName == "" {
		companyName = in.Name
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      companyName,
		Status:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.jwtService.Generate(user.ID, user.CompanyID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(user)}, nil
}

// Login valida credenciales y emite un token JWT.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.jwtService.Generate(user.ID, user.CompanyID, user.Role)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(user)}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}
