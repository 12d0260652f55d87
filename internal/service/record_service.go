package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"lumera-client/internal/dto"
	"lumera-client/internal/entity"
	"lumera-client/internal/pkg/logger"
	"lumera-client/pkg/api"

	"github.com/patrickmn/go-cache"
)

// placeholderPNG is a 1x1 transparent image served when a stored image
// reference is broken, so the record view never renders a broken image.
var placeholderPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

// RecordView is a single analysis ready for rendering: recommendations
// decoded, image path resolved to the local proxy route.
type RecordView struct {
	Analysis        entity.Analysis
	Recommendations []string
	ImageURL        string
}

type IRecordService interface {
	Fetch(ctx context.Context, id int) (*RecordView, error)
	Image(ctx context.Context, path string) (data []byte, contentType string)
}

// RecordAPI is the slice of the API client the record viewer needs.
type RecordAPI interface {
	Result(ctx context.Context, id int) (*dto.AnalysisResponse, error)
	Image(ctx context.Context, path string) ([]byte, string, error)
}

type recordService struct {
	client RecordAPI
	logger logger.ILogger
	images *cache.Cache
}

func NewRecordService(client RecordAPI, log logger.ILogger) IRecordService {
	// Records are immutable, so cached image bytes can only go stale by
	// being deleted server-side; a short TTL bounds that window
	return &recordService{
		client: client,
		logger: log,
		images: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Fetch retrieves one record and decodes its stored recommendation payload.
// A malformed payload is a hard DecodeFailure, not something to render around.
func (s *recordService) Fetch(ctx context.Context, id int) (*RecordView, error) {
	res, err := s.client.Result(ctx, id)
	if err != nil {
		return nil, err
	}

	var recommendations []string
	if err := json.Unmarshal([]byte(res.Analysis.Recommendations), &recommendations); err != nil {
		s.logger.Error("record", "malformed recommendations payload", map[string]interface{}{
			"analysis_id": id,
			"error":       err.Error(),
		})
		return nil, api.NewError(api.KindDecodeFailure, "record unavailable")
	}

	return &RecordView{
		Analysis:        res.Analysis,
		Recommendations: recommendations,
		ImageURL:        fmt.Sprintf("/uploads/%s", res.Analysis.ImagePath),
	}, nil
}

// Image fetches stored image bytes by reference path, falling back to the
// placeholder on any failure.
func (s *recordService) Image(ctx context.Context, path string) ([]byte, string) {
	type cachedImage struct {
		data        []byte
		contentType string
	}

	if x, found := s.images.Get(path); found {
		img := x.(cachedImage)
		return img.data, img.contentType
	}

	data, contentType, err := s.client.Image(ctx, path)
	if err != nil {
		s.logger.Warn("record", "broken image reference, serving placeholder", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return placeholderPNG, "image/png"
	}

	s.images.Set(path, cachedImage{data: data, contentType: contentType}, cache.DefaultExpiration)
	return data, contentType
}
