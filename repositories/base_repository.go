package repositories

import (
	"context"
	"errors"
	"strings"

	"tiklabakim.com/pkg/queryparams"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("kayıt bulunamadı")
	ErrInvalidID = errors.New("geçersiz ID")
)

type txKey struct{}

// ContextWithTx transaction'ı context'e ekler; bu context ile çağrılan tüm repository
// metodları aynı transaction içinde çalışır.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// IsDuplicate benzersizlik kısıtı ihlallerini tanır.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IBaseRepository tüm tablolar için ortak CRUD işlemleridir.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint, preloads ...string) (*T, error)
	FindAll(ctx context.Context, orderBy string) ([]T, error)
	FindPaginated(ctx context.Context, params queryparams.ListParams, scope func(*gorm.DB) *gorm.DB) ([]T, int64, error)
	Updates(ctx context.Context, id uint, data map[string]any) error
	Delete(ctx context.Context, id uint) error
	SetAllowedSortColumns(columns []string)
}

// BaseRepository IBaseRepository'nin GORM uygulamasıdır.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]struct{}
}

func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]struct{}{"id": {}, "created_at": {}}}
}

func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSortColumns = make(map[string]struct{}, len(columns))
	for _, c := range columns {
		r.allowedSortColumns[c] = struct{}{}
	}
}

// getDB context'te transaction varsa onu, yoksa context'li bağlantıyı döndürür.
func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	var entity T
	q := r.getDB(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(&entity, id).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *BaseRepository[T]) FindAll(ctx context.Context, orderBy string) ([]T, error) {
	var entities []T
	q := r.getDB(ctx)
	if orderBy != "" {
		q = q.Order(orderBy)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindPaginated sayfalama ve izinli sütunlara göre sıralama yapar. scope ek filtreler içindir.
func (r *BaseRepository[T]) FindPaginated(ctx context.Context, params queryparams.ListParams, scope func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	params.Validate()
	var (
		entities []T
		total    int64
	)
	q := r.getDB(ctx).Model(new(T))
	if scope != nil {
		q = scope(q)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return entities, 0, nil
	}

	sortBy := "created_at"
	if _, ok := r.allowedSortColumns[params.SortBy]; ok {
		sortBy = params.SortBy
	}
	err := q.Order(sortBy + " " + params.OrderBy).
		Limit(params.PerPage).
		Offset(params.CalculateOffset()).
		Find(&entities).Error
	if err != nil {
		return nil, total, err
	}
	return entities, total, nil
}

func (r *BaseRepository[T]) Updates(ctx context.Context, id uint, data map[string]any) error {
	if id == 0 {
		return ErrInvalidID
	}
	if len(data) == 0 {
		return nil
	}
	result := r.getDB(ctx).Model(new(T)).Where("id = ?", id).Updates(data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	result := r.getDB(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsForeignKeyViolation kaydın başka kayıtlarca referans alındığı için silinemediği durumu tanır.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "violates foreign key constraint") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}
