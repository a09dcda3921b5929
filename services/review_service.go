package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReviewListLimit işletme sayfasında gösterilen en fazla yorum sayısıdır.
const ReviewListLimit = 50

type ReviewInput struct {
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ReviewApprovalInput struct {
	IsApproved *bool `json:"isApproved" validate:"required"`
}

type IReviewService interface {
	ListApproved(ctx context.Context, businessID uint) ([]PublicReview, error)
	Create(ctx context.Context, userID, businessID uint, input ReviewInput) (*models.Review, error)
	AdminList(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	SetApproval(ctx context.Context, adminID, id uint, input ReviewApprovalInput) (*models.Review, error)
}

type ReviewService struct {
	db            *gorm.DB
	repo          repositories.IReviewRepository
	businesses    repositories.IBusinessRepository
	notifications INotificationService
}

func NewReviewService(db *gorm.DB) IReviewService {
	return &ReviewService{
		db:            db,
		repo:          repositories.NewReviewRepository(db),
		businesses:    repositories.NewBusinessRepository(db),
		notifications: NewNotificationService(db),
	}
}

// PublicReview herkese açık yorum görünümüdür. Yorum yapanın iletişim bilgileri yer almaz.
type PublicReview struct {
	ID        uint          `json:"id"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment"`
	CreatedAt time.Time     `json:"createdAt"`
	User      *ReviewAuthor `json:"user,omitempty"`
}

type ReviewAuthor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func toPublicReviews(reviews []models.Review) []PublicReview {
	out := make([]PublicReview, 0, len(reviews))
	for _, r := range reviews {
		pr := PublicReview{ID: r.ID, Rating: r.Rating, Comment: r.Comment, CreatedAt: r.CreatedAt}
		if r.User != nil {
			pr.User = &ReviewAuthor{Name: r.User.Name, Image: r.User.Image}
		}
		out = append(out, pr)
	}
	return out
}

func (s *ReviewService) ListApproved(ctx context.Context, businessID uint) ([]PublicReview, error) {
	if _, err := s.businesses.FindByID(ctx, businessID); err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "ReviewService.ListApproved", zap.Uint("businessID", businessID))
	}
	reviews, err := s.repo.ListApprovedByBusiness(ctx, businessID, ReviewListLimit)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "ReviewService.ListApproved", zap.Uint("businessID", businessID))
	}
	return toPublicReviews(reviews), nil
}

// Create kullanıcı başına işletme başına tek yorum kabul eder; işletme sahibi kendi işletmesine yorum yapamaz.
func (s *ReviewService) Create(ctx context.Context, userID, businessID uint, input ReviewInput) (*models.Review, error) {
	input.Comment = strings.TrimSpace(input.Comment)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	business, err := s.businesses.FindByID(ctx, businessID)
	if err != nil {
		return nil, mapRepoError(err, ErrBusinessNotFound, nil, "ReviewService.Create: işletme", zap.Uint("businessID", businessID))
	}
	if !business.IsActive {
		return nil, ErrBusinessNotFound
	}
	if business.OwnerID != nil && *business.OwnerID == userID {
		return nil, ErrOwnBusinessReview
	}

	review := &models.Review{BusinessID: businessID, UserID: userID, Rating: input.Rating, Comment: input.Comment, IsApproved: true}
	ctx = models.ContextWithUserID(ctx, userID)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if err := s.repo.Create(txCtx, review); err != nil {
			return err
		}
		if business.OwnerID == nil {
			return nil
		}
		return s.notifications.Notify(txCtx, *business.OwnerID,
			"Yeni yorum",
			fmt.Sprintf("İşletmeniz %d puanlı yeni bir yorum aldı.", review.Rating),
			"/isletme/"+business.Slug)
	})
	if err != nil {
		return nil, mapRepoError(err, nil, ErrReviewAlreadyExists, "ReviewService.Create", zap.Uint("businessID", businessID), zap.Uint("userID", userID))
	}
	return review, nil
}

// AdminList params.Status "approved" ya da "pending" ile filtrelenebilir.
func (s *ReviewService) AdminList(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	scope := func(db *gorm.DB) *gorm.DB {
		switch strings.ToLower(params.Status) {
		case "approved":
			db = db.Where("is_approved = ?", true)
		case "pending":
			db = db.Where("is_approved = ?", false)
		}
		return db
	}
	reviews, total, err := s.repo.FindPaginated(ctx, params, scope)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "ReviewService.AdminList")
	}
	return queryparams.NewPaginatedResult(reviews, total, params), nil
}

func (s *ReviewService) SetApproval(ctx context.Context, adminID, id uint, input ReviewApprovalInput) (*models.Review, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	ctx = models.ContextWithUserID(ctx, adminID)
	if err := s.repo.Updates(ctx, id, map[string]any{"is_approved": *input.IsApproved}); err != nil {
		return nil, mapRepoError(err, ErrReviewNotFound, nil, "ReviewService.SetApproval", zap.Uint("id", id))
	}
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrReviewNotFound, nil, "ReviewService.SetApproval: yeniden okunamadı", zap.Uint("id", id))
	}
	return review, nil
}

var _ IReviewService = (*ReviewService)(nil)
