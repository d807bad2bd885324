package availability

import (
	"context"
	"errors"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts/mocks"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/timeline"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func setupTimelineUsecase(withStorage bool) (*timelineUsecase, *mocks.InventoryClient, *mocks.Storage, *mocks.EventPublisher) {
	client := new(mocks.InventoryClient)
	storage := new(mocks.Storage)
	publisher := new(mocks.EventPublisher)
	uc := &timelineUsecase{
		InventoryClient: client,
		EventPublisher:  publisher,
		InternalConfig: &config.InternalConfig{
			Timeline: config.AppTimeline{DefaultDays: 7, Locale: "de"},
			Minio:    config.AppMinio{BucketName: "timelines", PreSignedUrlObjectExpiryTimeInHour: 2},
		},
		Style:    timeline.DefaultStyle(),
		Log:      zap.NewNop(),
		location: time.UTC,
		now:      func() time.Time { return fixedNow },
	}
	if withStorage {
		uc.Storage = storage
	}
	return uc, client, storage, publisher
}

func sampleRows() []models.AvailabilitySpan {
	return []models.AvailabilitySpan{
		{Start: "2024-01-01", End: "2024-01-03", Type: "LOAN", Label: strPtr("Anna")},
		{Start: "2024-01-02T09:00:00Z", End: "2024-01-02T17:00:00Z", Type: "reservation", Status: strPtr("pending")},
		{Start: "2024-01-04T09:00", End: "2024-01-04T17:00", Type: "RESERVATION", Status: strPtr("APPROVED")},
	}
}

func TestTimelineUsecase_Build(t *testing.T) {
	uc, client, _, _ := setupTimelineUsecase(false)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	client.On("GetAvailability", mock.Anything, int64(5), start, start.AddDate(0, 0, 7)).Return(sampleRows(), nil)

	result, err := uc.Build(context.Background(), &requests.Timeline{ItemID: 5, Start: start})
	require.NoError(t, err)

	assert.False(t, result.Degraded)
	assert.Equal(t, 7, result.Window.Days)
	require.Len(t, result.Days, 7)
	assert.Equal(t, "2024-01-01", result.Days[0].Date)
	assert.Equal(t, "Mo 1.", result.Days[0].Label)
	assert.True(t, result.Days[3].IsToday)

	require.Len(t, result.Bars, 3)
	assert.Equal(t, "bar bar-loan", result.Bars[0].Class)
	assert.Equal(t, 0, result.Bars[0].ColStart)
	assert.Equal(t, 2, result.Bars[0].ColEnd)
	assert.Equal(t, "Ausleihe\n1.1.2024 – 3.1.2024\nAnna", result.Bars[0].Tooltip)
	assert.Equal(t, "bar bar-res-pending", result.Bars[1].Class)
	assert.Equal(t, 1, result.Bars[1].Lane)
	assert.Equal(t, "bar bar-res-approve", result.Bars[2].Class)
	assert.Equal(t, 3, result.Bars[2].ColStart)
	assert.Equal(t, 4, result.Bars[2].ColEnd)
	assert.Equal(t, 0, result.Bars[2].Lane)
	assert.Equal(t, 2, result.LaneCount)

	require.NotNil(t, result.TodayColumn)
	assert.Equal(t, 3, *result.TodayColumn)
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), result.Navigation.Prev.Start)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), result.Navigation.Next.Start)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), result.Navigation.Today.Start)
}

func TestTimelineUsecase_Build_DefaultWindowIsToday(t *testing.T) {
	uc, client, _, _ := setupTimelineUsecase(false)
	client.On("GetAvailability", mock.Anything, int64(5), mock.Anything, mock.Anything).Return([]models.AvailabilitySpan{}, nil)

	result, err := uc.Build(context.Background(), &requests.Timeline{ItemID: 5, Locale: "en"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), result.Window.Start)
	assert.Equal(t, "Thu 4", result.Days[0].Label)
	assert.Equal(t, 1, result.LaneCount)
	require.NotNil(t, result.TodayColumn)
	assert.Equal(t, 0, *result.TodayColumn)
}

func TestTimelineUsecase_Build_FetchFailureDegrades(t *testing.T) {
	uc, client, _, _ := setupTimelineUsecase(false)
	client.On("GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))

	result, err := uc.Build(context.Background(), &requests.Timeline{ItemID: 5, Start: fixedNow.AddDate(0, 1, 0)})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Empty(t, result.Bars)
	assert.Len(t, result.Days, 7)
	assert.Nil(t, result.TodayColumn)
}

func TestTimelineUsecase_Build_ZonelessDateTimes(t *testing.T) {
	uc, client, _, _ := setupTimelineUsecase(false)
	client.On("GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.AvailabilitySpan{
		{Start: "2024-01-02T09:00:00", End: "2024-01-02T17:00:00", Type: "RESERVATION", Status: strPtr("PENDING")},
		{Start: "2024-01-03T09:00", End: "2024-01-03T17:00", Type: "RESERVATION"},
	}, nil)

	result, err := uc.Build(context.Background(), &requests.Timeline{ItemID: 5, Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	require.Len(t, result.Bars, 2)
	assert.Equal(t, 1, result.Bars[0].ColStart)
	assert.Equal(t, 2, result.Bars[0].ColEnd)
	assert.Equal(t, 2, result.Bars[1].ColStart)
	assert.Equal(t, 3, result.Bars[1].ColEnd)
	assert.Equal(t, 1, result.LaneCount)
}

func TestTimelineUsecase_Build_MalformedRowDegrades(t *testing.T) {
	uc, client, _, _ := setupTimelineUsecase(false)
	client.On("GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.AvailabilitySpan{
		{Start: "2024-01-01", End: "2024-01-03", Type: "LOAN"},
		{Start: "garbage", End: "2024-01-02", Type: "LOAN"},
	}, nil)

	result, err := uc.Build(context.Background(), &requests.Timeline{ItemID: 5, Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Empty(t, result.Bars)
	assert.Len(t, result.Days, 7)
	assert.Equal(t, 1, result.LaneCount)
}

func TestTimelineUsecase_Build_WindowTooLarge(t *testing.T) {
	uc, _, _, _ := setupTimelineUsecase(false)
	_, err := uc.Build(context.Background(), &requests.Timeline{ItemID: 5, Days: 400})
	require.Error(t, err)
	assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCodeOf(err))
}

func TestTimelineUsecase_Build_SortedPacking(t *testing.T) {
	uc, client, _, _ := setupTimelineUsecase(false)
	uc.InternalConfig.Timeline.SortedPacking = true
	client.On("GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.AvailabilitySpan{
		{Start: "2024-01-05", End: "2024-01-06", Type: "LOAN"},
		{Start: "2024-01-01", End: "2024-01-02", Type: "LOAN"},
	}, nil)

	result, err := uc.Build(context.Background(), &requests.Timeline{ItemID: 5, Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 1, result.LaneCount)
}

func TestTimelineUsecase_RenderSVG(t *testing.T) {
	uc, client, _, _ := setupTimelineUsecase(false)
	client.On("GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sampleRows(), nil)

	svg, err := uc.RenderSVG(context.Background(), &requests.Timeline{ItemID: 5, Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(svg), "<?xml"))
	assert.Contains(t, string(svg), `class="bar bar-loan"`)
	assert.Contains(t, string(svg), `class="today"`)
}

func TestTimelineUsecase_Export(t *testing.T) {
	t.Run("storage disabled", func(t *testing.T) {
		uc, client, _, _ := setupTimelineUsecase(false)
		_, err := uc.Export(context.Background(), &requests.Timeline{ItemID: 5})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusServiceUnavailable, exceptions.StatusCodeOf(err))
		client.AssertNotCalled(t, "GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("uploads and presigns", func(t *testing.T) {
		uc, client, storage, publisher := setupTimelineUsecase(true)
		client.On("GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sampleRows(), nil)
		storage.On("UploadObject", mock.Anything, "timelines", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "timelines/item_5_2024-01-04_7d_") && strings.HasSuffix(name, ".svg")
		}), constvars.MIMEImageSVG, mock.Anything).Return("etag", nil)
		storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "timelines", mock.Anything, 2*time.Hour).Return("https://minio/signed", nil)
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
			return e.Type == constvars.EventTimelineExported
		})).Return(nil)

		export, err := uc.Export(context.Background(), &requests.Timeline{ItemID: 5})
		require.NoError(t, err)
		assert.Equal(t, "https://minio/signed", export.URL)
		assert.Equal(t, fixedNow.Add(2*time.Hour), export.ExpiresAt)
		storage.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("upload failure", func(t *testing.T) {
		uc, client, storage, _ := setupTimelineUsecase(true)
		client.On("GetAvailability", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]models.AvailabilitySpan{}, nil)
		storage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))

		_, err := uc.Export(context.Background(), &requests.Timeline{ItemID: 5})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusInternalServerError, exceptions.StatusCodeOf(err))
	})
}
