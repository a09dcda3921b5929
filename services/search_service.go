package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"tiklabakim.com/models"
	"tiklabakim.com/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	SearchMinRunes        = 2
	SearchBusinessLimit   = 10
	SearchCategoriesLimit = 5
)

type SearchResult struct {
	Businesses []models.Business `json:"businesses"`
	Categories []models.Category `json:"categories"`
}

type ISearchService interface {
	Search(ctx context.Context, term string) (*SearchResult, error)
}

type SearchService struct {
	businesses repositories.IBusinessRepository
	categories repositories.ICategoryRepository
}

func NewSearchService(db *gorm.DB) ISearchService {
	return &SearchService{
		businesses: repositories.NewBusinessRepository(db),
		categories: repositories.NewCategoryRepository(db),
	}
}

// Search aktif işletme ve kategorilerde Türkçe harf duyarlı arama yapar.
func (s *SearchService) Search(ctx context.Context, term string) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < SearchMinRunes {
		return nil, ErrSearchTermTooShort
	}
	businesses, err := s.businesses.Search(ctx, term, SearchBusinessLimit)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "SearchService.Search: işletmeler", zap.String("term", term))
	}
	categories, err := s.categories.Search(ctx, term, SearchCategoriesLimit)
	if err != nil {
		return nil, mapRepoError(err, nil, nil, "SearchService.Search: kategoriler", zap.String("term", term))
	}
	return &SearchResult{Businesses: businesses, Categories: categories}, nil
}

var _ ISearchService = (*SearchService)(nil)
