package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/pkg/consts"
	"github.com/parteecat/folio/internal/pkg/storage"
)

// 允许上传的 MIME 类型白名单
var (
	allowedImageMimes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	allowedVideoMimes = map[string]bool{
		"video/mp4":       true,
		"video/webm":      true,
		"video/quicktime": true,
	}
)

type MediaService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResultDTO, error)
	UploadBatch(ctx context.Context, files []*multipart.FileHeader) (*dto.BatchUploadResultDTO, error)
}

type mediaServiceImpl struct {
	store        *storage.LocalStore
	maxImageSize int64
	maxVideoSize int64
}

func NewMediaService(store *storage.LocalStore, maxImageSize, maxVideoSize int64) MediaService {
	return &mediaServiceImpl{
		store:        store,
		maxImageSize: maxImageSize,
		maxVideoSize: maxVideoSize,
	}
}

func (s *mediaServiceImpl) Upload(ctx context.Context, file *multipart.FileHeader) (*dto.UploadResultDTO, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open upload failed", UnExpectedError)
	}
	defer src.Close()

	// 按文件头嗅探类型，不信任客户端声明的 Content-Type
	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: detect mime failed", UnExpectedError)
	}
	if _, err = src.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("%w: rewind upload failed", UnExpectedError)
	}

	mime := mt.String()
	var maxSize int64
	switch {
	case allowedImageMimes[mime]:
		maxSize = s.maxImageSize
	case allowedVideoMimes[mime]:
		maxSize = s.maxVideoSize
	default:
		return nil, fmt.Errorf("%w: %s", ErrFileNotSupported, mime)
	}
	if file.Size > maxSize {
		return nil, fmt.Errorf("%w: max size %dMB", ErrFileTooLarge, maxSize>>20)
	}

	var width, height int
	if strings.HasPrefix(mime, consts.MimePrefixImage) {
		if img, decErr := imaging.Decode(src); decErr == nil {
			bounds := img.Bounds()
			width, height = bounds.Dx(), bounds.Dy()
		} else {
			slog.WarnContext(ctx, "上传图片解码失败，跳过尺寸提取", "filename", file.Filename, "error", decErr)
		}
		if _, err = src.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("%w: rewind upload failed", UnExpectedError)
		}
	}

	filename := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		strings.ReplaceAll(uuid.NewString(), "-", ""),
		mt.Extension(),
	)

	size, err := s.store.Save(filename, src)
	if err != nil {
		slog.ErrorContext(ctx, "上传文件落盘失败", "filename", filename, "error", err)
		return nil, fmt.Errorf("%w: save upload failed", UnExpectedError)
	}

	return &dto.UploadResultDTO{
		URL:      "/uploads/" + filename,
		Filename: filename,
		Size:     size,
		MimeType: mime,
		Width:    width,
		Height:   height,
	}, nil
}

// UploadBatch 逐个处理，单个失败不中断其余文件
func (s *mediaServiceImpl) UploadBatch(ctx context.Context, files []*multipart.FileHeader) (*dto.BatchUploadResultDTO, error) {
	if len(files) == 0 {
		return nil, ErrFileMissing
	}

	result := &dto.BatchUploadResultDTO{
		Success: make([]*dto.UploadResultDTO, 0, len(files)),
	}
	for _, file := range files {
		uploaded, err := s.Upload(ctx, file)
		if err != nil {
			result.Errors = append(result.Errors, &dto.UploadErrorDTO{
				Filename: file.Filename,
				Error:    err.Error(),
			})
			continue
		}
		result.Success = append(result.Success, uploaded)
	}
	return result, nil
}
