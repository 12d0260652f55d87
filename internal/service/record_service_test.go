package service

import (
	"context"
	"testing"

	"lumera-client/internal/dto"
	"lumera-client/internal/entity"
	"lumera-client/internal/pkg/logger"
	"lumera-client/pkg/api"

	"github.com/stretchr/testify/assert"
)

type fakeRecordAPI struct {
	result     *dto.AnalysisResponse
	resultErr  error
	imageData  []byte
	imageType  string
	imageErr   error
	imageCalls int
}

func (f *fakeRecordAPI) Result(ctx context.Context, id int) (*dto.AnalysisResponse, error) {
	return f.result, f.resultErr
}

func (f *fakeRecordAPI) Image(ctx context.Context, path string) ([]byte, string, error) {
	f.imageCalls++
	return f.imageData, f.imageType, f.imageErr
}

func TestFetchDecodesRecommendations(t *testing.T) {
	client := &fakeRecordAPI{
		result: &dto.AnalysisResponse{Analysis: entity.Analysis{
			Id:              42,
			ImagePath:       "7_face.jpg",
			SkinType:        entity.SkinTypeOily,
			Confidence:      91.5,
			Recommendations: `["Use a gentle cleanser","Apply SPF daily"]`,
		}},
	}
	svc := NewRecordService(client, logger.NewNopLogger())

	record, err := svc.Fetch(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Use a gentle cleanser", "Apply SPF daily"}, record.Recommendations)
	assert.Equal(t, "/uploads/7_face.jpg", record.ImageURL)
}

func TestFetchMalformedRecommendationsIsDecodeFailure(t *testing.T) {
	client := &fakeRecordAPI{
		result: &dto.AnalysisResponse{Analysis: entity.Analysis{
			Id:              42,
			Recommendations: `{"oops": not json`,
		}},
	}
	svc := NewRecordService(client, logger.NewNopLogger())

	record, err := svc.Fetch(context.Background(), 42)

	assert.Nil(t, record)
	apiErr := api.AsError(err)
	assert.Equal(t, api.KindDecodeFailure, apiErr.Kind)
	assert.Equal(t, "record unavailable", apiErr.Message)
}

func TestFetchPassesThroughNotFound(t *testing.T) {
	client := &fakeRecordAPI{resultErr: api.NewError(api.KindNotFound, "Not found")}
	svc := NewRecordService(client, logger.NewNopLogger())

	record, err := svc.Fetch(context.Background(), 999)

	assert.Nil(t, record)
	assert.Equal(t, api.KindNotFound, api.AsError(err).Kind)
}

func TestImageBrokenReferenceFallsBackToPlaceholder(t *testing.T) {
	client := &fakeRecordAPI{imageErr: api.NewError(api.KindNotFound, "Not found")}
	svc := NewRecordService(client, logger.NewNopLogger())

	data, contentType := svc.Image(context.Background(), "missing.jpg")

	assert.Equal(t, "image/png", contentType)
	assert.NotEmpty(t, data)
}

func TestImageCachesFetchedBytes(t *testing.T) {
	client := &fakeRecordAPI{imageData: []byte{0xFF, 0xD8}, imageType: "image/jpeg"}
	svc := NewRecordService(client, logger.NewNopLogger())

	first, _ := svc.Image(context.Background(), "face.jpg")
	second, _ := svc.Image(context.Background(), "face.jpg")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.imageCalls, "second render should hit the cache")
}
