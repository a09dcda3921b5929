package services

import (
	"context"
	"strings"

	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateProfileInput kullanıcının kendi profilinde değiştirebileceği alanlardır.
type UpdateProfileInput struct {
	Name  *string `json:"name" validate:"omitnil,min=2,max=120"`
	Phone *string `json:"phone" validate:"omitnil,max=30"`
	Image *string `json:"image" validate:"omitnil,max=500"`
}

// AdminUpdateUserInput yöneticinin kullanıcı üzerinde değiştirebileceği alanlardır.
type AdminUpdateUserInput struct {
	Role     *models.UserRole `json:"role"`
	IsActive *bool            `json:"isActive"`
}

type IUserService interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error)
	AdminUpdateUser(ctx context.Context, adminID, userID uint, input AdminUpdateUserInput) (*models.User, error)
}

type UserService struct {
	repo repositories.IUserRepository
}

func NewUserService(db *gorm.DB) IUserService {
	return &UserService{repo: repositories.NewUserRepository(db)}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrUserNotFound, nil, "UserService.GetUserByID", zap.Uint("userID", id))
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Image != nil {
		updates["image"] = strings.TrimSpace(*input.Image)
	}

	ctx = models.ContextWithUserID(ctx, userID)
	if err := s.repo.Updates(ctx, userID, updates); err != nil {
		return nil, mapRepoError(err, ErrUserNotFound, nil, "UserService.UpdateProfile", zap.Uint("userID", userID))
	}
	return s.GetUserByID(ctx, userID)
}

// AdminUpdateUser rol ve aktiflik durumunu günceller. Yönetici kendi rolünü düşüremez.
func (s *UserService) AdminUpdateUser(ctx context.Context, adminID, userID uint, input AdminUpdateUserInput) (*models.User, error) {
	updates := map[string]any{}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, ErrInvalidRole
		}
		if userID == adminID && *input.Role != models.RoleAdmin {
			return nil, ErrForbidden
		}
		updates["role"] = *input.Role
	}
	if input.IsActive != nil {
		if userID == adminID && !*input.IsActive {
			return nil, ErrForbidden
		}
		updates["is_active"] = *input.IsActive
	}

	ctx = models.ContextWithUserID(ctx, adminID)
	if err := s.repo.Updates(ctx, userID, updates); err != nil {
		return nil, mapRepoError(err, ErrUserNotFound, nil, "UserService.AdminUpdateUser", zap.Uint("userID", userID))
	}
	return s.GetUserByID(ctx, userID)
}

var _ IUserService = (*UserService)(nil)
