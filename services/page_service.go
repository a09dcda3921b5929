package services

import (
	"context"
	"strings"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/queryparams"
	"tiklabakim.com/pkg/slugify"
	"tiklabakim.com/pkg/turkishsearch"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PageInput struct {
	Title           string `json:"title" validate:"required,min=2,max=200"`
	Slug            string `json:"slug" validate:"max=200"`
	Content         string `json:"content"`
	MetaTitle       string `json:"metaTitle" validate:"max=200"`
	MetaDescription string `json:"metaDescription" validate:"max=320"`
	IsPublished     *bool  `json:"isPublished"`
}

type PagePatch struct {
	Title           *string `json:"title" validate:"omitnil,min=2,max=200"`
	Slug            *string `json:"slug" validate:"omitnil,min=1,max=200"`
	Content         *string `json:"content"`
	MetaTitle       *string `json:"metaTitle" validate:"omitnil,max=200"`
	MetaDescription *string `json:"metaDescription" validate:"omitnil,max=320"`
	IsPublished     *bool   `json:"isPublished"`
}

type IPageService interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error)
	List(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	Create(ctx context.Context, actorID uint, input PageInput) (*models.Page, error)
	Update(ctx context.Context, actorID, id uint, patch PagePatch) (*models.Page, error)
	Delete(ctx context.Context, actorID, id uint) error
}

type PageService struct {
	db   *gorm.DB
	repo repositories.IPageRepository
}

func NewPageService(db *gorm.DB) IPageService {
	return &PageService{db: db, repo: repositories.NewPageRepository(db)}
}

// GetPublishedBySlug yayında olmayan sayfaları bulunamadı olarak döndürür.
func (s *PageService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoError(err, ErrPageNotFound, nil, "PageService.GetPublishedBySlug", zap.String("slug", slug))
	}
	if !page.IsPublished {
		return nil, ErrPageNotFound
	}
	return page, nil
}

func (s *PageService) List(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	var scope func(*gorm.DB) *gorm.DB
	if params.Name != "" {
		scope = func(db *gorm.DB) *gorm.DB {
			fragment, args := turkishsearch.SQLFilter("title", params.Name)
			return db.Where(fragment, args...)
		}
	}
	pages, total, err := s.repo.FindPaginated(ctx, params, scope)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "PageService.List")
	}
	return queryparams.NewPaginatedResult(pages, total, params), nil
}

func (s *PageService) Create(ctx context.Context, actorID uint, input PageInput) (*models.Page, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	page := &models.Page{
		Title:           input.Title,
		Slug:            slugify.Resolve(input.Slug, input.Title),
		Content:         input.Content,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		IsPublished:     true,
	}
	if page.Slug == "" {
		return nil, Validationf("slug alanı geçersiz")
	}

	ctx = models.ContextWithUserID(ctx, actorID)
	draft := input.IsPublished != nil && !*input.IsPublished
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := repositories.ContextWithTx(ctx, tx)
		if err := s.repo.Create(txCtx, page); err != nil {
			return err
		}
		// default:true olan sütuna false yazılabilmesi için ayrı güncelleme gerekir
		if draft {
			return s.repo.Updates(txCtx, page.ID, map[string]any{"is_published": false})
		}
		return nil
	})
	if err != nil {
		return nil, mapRepoError(err, nil, ErrPageSlugTaken, "PageService.Create", zap.String("slug", page.Slug))
	}
	page.IsPublished = !draft
	return page, nil
}

// Update sistem sayfalarının slug'ının değiştirilmesine izin vermez.
func (s *PageService) Update(ctx context.Context, actorID, id uint, patch PagePatch) (*models.Page, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrPageNotFound, nil, "PageService.Update", zap.Uint("id", id))
	}

	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Slug != nil {
		slug := slugify.Make(*patch.Slug)
		if slug == "" {
			return nil, Validationf("slug alanı geçersiz")
		}
		if current.IsSystem && slug != current.Slug {
			return nil, ErrSystemPageProtected
		}
		updates["slug"] = slug
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.MetaTitle != nil {
		updates["meta_title"] = *patch.MetaTitle
	}
	if patch.MetaDescription != nil {
		updates["meta_description"] = *patch.MetaDescription
	}
	if patch.IsPublished != nil {
		updates["is_published"] = *patch.IsPublished
	}

	ctx = models.ContextWithUserID(ctx, actorID)
	if err := s.repo.Updates(ctx, id, updates); err != nil {
		return nil, mapRepoError(err, ErrPageNotFound, ErrPageSlugTaken, "PageService.Update", zap.Uint("id", id))
	}
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, ErrPageNotFound, nil, "PageService.Update: yeniden okunamadı", zap.Uint("id", id))
	}
	return page, nil
}

func (s *PageService) Delete(ctx context.Context, actorID, id uint) error {
	page, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepoError(err, ErrPageNotFound, nil, "PageService.Delete", zap.Uint("id", id))
	}
	if page.IsSystem {
		return ErrSystemPageProtected
	}
	return deleteWith(ctx, actorID, id, s.repo.Delete, ErrPageNotFound, "PageService.Delete")
}

var _ IPageService = (*PageService)(nil)
