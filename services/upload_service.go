package services

import (
	"context"
	"errors"
	"io"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/pkg/upload"

	"go.uber.org/zap"
)

type UploadResult struct {
	URL    string `json:"url"`
	Folder string `json:"folder"`
}

type IUploadService interface {
	Upload(ctx context.Context, userID uint, folder string, r io.Reader, size int64) (*UploadResult, error)
}

type UploadService struct {
	storage  upload.Storage
	maxBytes int64
}

func NewUploadService(storage upload.Storage, maxBytes int64) IUploadService {
	return &UploadService{storage: storage, maxBytes: maxBytes}
}

// Upload dosya türünü içerikten tespit eder; izin verilmeyen klasörler "general" altına yazılır.
func (s *UploadService) Upload(ctx context.Context, userID uint, folder string, r io.Reader, size int64) (*UploadResult, error) {
	if r == nil {
		return nil, ErrUploadMissingFile
	}
	body, filename, err := upload.Prepare(r, size, s.maxBytes)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrEmptyFile):
			return nil, ErrUploadMissingFile
		case errors.Is(err, upload.ErrTooLarge):
			return nil, ErrUploadTooLarge
		case errors.Is(err, upload.ErrUnsupportedType):
			return nil, ErrUploadUnsupportedType
		}
		configslog.Log.Error("UploadService.Upload: dosya okunamadı", zap.Uint("userID", userID), zap.Error(err))
		return nil, ErrUploadFailed
	}

	folder = upload.ResolveFolder(folder)
	url, err := s.storage.Save(ctx, folder, filename, body)
	if err != nil {
		configslog.Log.Error("UploadService.Upload: dosya kaydedilemedi",
			zap.Uint("userID", userID), zap.String("folder", folder), zap.Error(err))
		return nil, ErrUploadFailed
	}
	configslog.SLog.Infof("Dosya yüklendi: %s (kullanıcı %d)", url, userID)
	return &UploadResult{URL: url, Folder: folder}, nil
}

var _ IUploadService = (*UploadService)(nil)
