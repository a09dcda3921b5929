// Package upload yüklenen dosyaların saklanmasını sağlar.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DefaultFolder izin listesinde olmayan klasör adları için kullanılır.
const DefaultFolder = "general"

var allowedFolders = map[string]struct{}{
	"businesses": {},
	"photos":     {},
	"categories": {},
	"avatars":    {},
	"pages":      {},
	"pets":       {},
}

var allowedMIMEs = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	ErrUnsupportedType = errors.New("desteklenmeyen dosya türü")
	ErrTooLarge        = errors.New("dosya boyutu sınırı aşıldı")
	ErrEmptyFile       = errors.New("dosya boş")
)

// ResolveFolder istenen klasörü izin listesine göre döndürür; tanınmayan değerler varsayılana düşer.
func ResolveFolder(requested string) string {
	if _, ok := allowedFolders[requested]; ok {
		return requested
	}
	return DefaultFolder
}

// Storage dosyayı kalıcı olarak saklar ve herkese açık adresini döndürür.
type Storage interface {
	Save(ctx context.Context, folder, filename string, r io.Reader) (string, error)
}

// LocalStorage dosyaları yerel diske yazar ve PublicPrefix altında sunulacak adresi döndürür.
type LocalStorage struct {
	Root         string
	PublicPrefix string
}

func NewLocalStorage(root, publicPrefix string) *LocalStorage {
	return &LocalStorage{Root: root, PublicPrefix: publicPrefix}
}

func (s *LocalStorage) Save(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := filepath.Join(s.Root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}
	return path.Join(s.PublicPrefix, folder, filename), nil
}

// Prepare içeriği doğrular, türünü tespit eder ve benzersiz bir dosya adı üretir.
// Dönen reader, tür tespiti için okunan baytları da içerir.
func Prepare(r io.Reader, size, maxBytes int64) (io.Reader, string, error) {
	if size <= 0 {
		return nil, "", ErrEmptyFile
	}
	if maxBytes > 0 && size > maxBytes {
		return nil, "", ErrTooLarge
	}

	head := make([]byte, 3072)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", err
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	ext, ok := allowedMIMEs[mt.String()]
	if !ok {
		return nil, "", ErrUnsupportedType
	}
	return io.MultiReader(bytes.NewReader(head), r), uuid.NewString() + ext, nil
}
