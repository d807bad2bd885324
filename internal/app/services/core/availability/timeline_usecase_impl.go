package availability

import (
	"context"
	"fmt"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/app/services/shared/events"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/dto/requests"
	"invrent-service/internal/pkg/dto/responses"
	"invrent-service/internal/pkg/exceptions"
	"invrent-service/internal/pkg/timeline"
	"invrent-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type timelineUsecase struct {
	InventoryClient contracts.InventoryClient
	Storage         contracts.Storage
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Style           timeline.Style
	Log             *zap.Logger
	location        *time.Location
	now             func() time.Time
}

var (
	timelineUsecaseInstance contracts.TimelineUsecase
	onceTimelineUsecase     sync.Once
	timelineUsecaseError    error
)

// NewTimelineUsecase wires the availability view. storage may be nil when
// object storage is disabled; Export then fails with 503.
func NewTimelineUsecase(
	inventoryClient contracts.InventoryClient,
	storage contracts.Storage,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.TimelineUsecase, error) {
	onceTimelineUsecase.Do(func() {
		style, err := timeline.LoadStyle(internalConfig.Timeline.StyleFile)
		if err != nil {
			timelineUsecaseError = err
			return
		}
		timelineUsecaseInstance = &timelineUsecase{
			InventoryClient: inventoryClient,
			Storage:         storage,
			EventPublisher:  eventPublisher,
			InternalConfig:  internalConfig,
			Style:           style,
			Log:             logger,
			location:        time.Local,
			now:             time.Now,
		}
	})
	return timelineUsecaseInstance, timelineUsecaseError
}

// view is the computed grid for one request plus the inputs it was built from.
type view struct {
	grid     timeline.Grid
	locale   string
	now      time.Time
	degraded bool
}

func (uc *timelineUsecase) Build(ctx context.Context, request *requests.Timeline) (*responses.Timeline, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timelineUsecase.Build called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)

	v, err := uc.buildView(ctx, request)
	if err != nil {
		return nil, err
	}

	response := convertGrid(request.ItemID, v)
	uc.Log.Info("timelineUsecase.Build succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
		zap.Int(constvars.LoggingLaneCountKey, response.LaneCount),
		zap.Bool("degraded", response.Degraded),
	)
	return response, nil
}

func (uc *timelineUsecase) RenderSVG(ctx context.Context, request *requests.Timeline) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timelineUsecase.RenderSVG called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)

	v, err := uc.buildView(ctx, request)
	if err != nil {
		return nil, err
	}
	return []byte(timeline.RenderSVG(v.grid, uc.Style, v.locale)), nil
}

func (uc *timelineUsecase) Export(ctx context.Context, request *requests.Timeline) (*responses.TimelineExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timelineUsecase.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
	)

	if uc.Storage == nil {
		err := fmt.Errorf("minio is disabled")
		uc.Log.Error("timelineUsecase.Export object storage not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTimelineStorageNotAvailable(err)
	}

	v, err := uc.buildView(ctx, request)
	if err != nil {
		return nil, err
	}
	svg := timeline.RenderSVG(v.grid, uc.Style, v.locale)

	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateTimelineObjectName(request.ItemID, v.grid.Window.Start, v.grid.Window.Days)
	_, err = uc.Storage.UploadObject(ctx, bucketName, objectName, constvars.MIMEImageSVG, []byte(svg))
	if err != nil {
		uc.Log.Error("timelineUsecase.Export error uploading SVG",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, exceptions.ErrMinioCreateObject(err, bucketName)
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHour) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		uc.Log.Error("timelineUsecase.Export error presigning object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return nil, exceptions.ErrMinioFindObjectPresignedURL(err, bucketName)
	}

	response := &responses.TimelineExport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  uc.now().Add(expiry).UTC(),
	}
	events.Emit(ctx, uc.EventPublisher, uc.Log, constvars.EventTimelineExported, map[string]interface{}{
		"itemId":     request.ItemID,
		"objectName": objectName,
	})

	uc.Log.Info("timelineUsecase.Export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return response, nil
}

func (uc *timelineUsecase) buildView(ctx context.Context, request *requests.Timeline) (*view, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	now := uc.now()

	days := request.Days
	if days <= 0 {
		days = uc.InternalConfig.Timeline.DefaultDays
	}
	if days <= 0 {
		days = timeline.DefaultWindowDays
	}
	if days > constvars.TimelineMaxWindowDays {
		err := fmt.Errorf("window of %d days exceeds %d", days, constvars.TimelineMaxWindowDays)
		return nil, exceptions.ErrTimelineWindowInvalid(err)
	}

	start := request.Start
	if start.IsZero() {
		start = now
	}
	window := timeline.NewWindow(start.In(uc.location), days)

	locale := request.Locale
	if locale == "" {
		locale = uc.InternalConfig.Timeline.Locale
	}

	packing := timeline.PackInputOrder
	if uc.InternalConfig.Timeline.SortedPacking {
		packing = timeline.PackSortedByStart
	}

	uc.Log.Info("timelineUsecase.buildView fetching availability",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
		zap.Time(constvars.LoggingWindowStartKey, window.Start),
		zap.Int(constvars.LoggingWindowDaysKey, window.Days),
	)

	degraded := false
	rows, err := uc.InventoryClient.GetAvailability(ctx, request.ItemID, window.Start, window.End())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		uc.Log.Warn("timelineUsecase.buildView availability fetch failed, rendering empty grid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
			zap.Error(err),
		)
		rows = nil
		degraded = true
	}

	spans, err := convertRows(rows, window.Location())
	if err != nil {
		uc.Log.Warn("timelineUsecase.buildView malformed availability data, rendering empty grid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingItemIDKey, request.ItemID),
			zap.Error(err),
		)
		spans = nil
		degraded = true
	}
	grid := timeline.BuildGrid(window, spans, timeline.GridOptions{
		Locale:  locale,
		Packing: packing,
		Now:     now,
	})

	return &view{grid: grid, locale: locale, now: now, degraded: degraded}, nil
}

// convertRows fails on the first row whose dates cannot be read; the
// caller treats that like a failed fetch.
func convertRows(rows []models.AvailabilitySpan, loc *time.Location) ([]timeline.Span, error) {
	spans := make([]timeline.Span, 0, len(rows))
	for i, row := range rows {
		start, err := utils.ParseDateOrDateTime(row.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("availability row %d: invalid start %q: %w", i, row.Start, err)
		}
		end, err := utils.ParseDateOrDateTime(row.End, loc)
		if err != nil {
			return nil, fmt.Errorf("availability row %d: invalid end %q: %w", i, row.End, err)
		}

		span := timeline.Span{
			Start: start,
			End:   end,
			Type:  timeline.SpanType(strings.ToUpper(row.Type)),
		}
		if row.Status != nil {
			span.Status = timeline.SpanStatus(strings.ToUpper(*row.Status))
		}
		if row.Label != nil {
			span.Label = *row.Label
		}
		spans = append(spans, span)
	}
	return spans, nil
}

func convertWindow(w timeline.Window) responses.TimelineWindow {
	return responses.TimelineWindow{Start: w.Start, End: w.End(), Days: w.Days}
}

func convertGrid(itemID int64, v *view) *responses.Timeline {
	grid := v.grid

	days := make([]responses.TimelineDay, len(grid.Days))
	for i, cell := range grid.Days {
		days[i] = responses.TimelineDay{
			Date:      utils.FormatBackendDate(cell.Date),
			Label:     cell.Label,
			IsWeekend: cell.IsWeekend,
			IsToday:   grid.HasToday && grid.TodayColumn == i,
		}
	}

	bars := make([]responses.TimelineBar, len(grid.Spans))
	for i, positioned := range grid.Spans {
		bars[i] = responses.TimelineBar{
			ColStart: positioned.ColStart,
			ColEnd:   positioned.ColEnd,
			Lane:     positioned.Lane,
			Type:     string(positioned.Span.Type),
			Status:   string(positioned.Span.Status),
			Label:    positioned.Span.Label,
			Class:    timeline.BarClass(positioned.Span),
			Tooltip:  timeline.Tooltip(positioned.Span, v.locale, grid.Window.Location()),
			Start:    positioned.Span.Start,
			End:      positioned.Span.End,
		}
	}

	response := &responses.Timeline{
		ItemID:    itemID,
		Window:    convertWindow(grid.Window),
		Days:      days,
		Bars:      bars,
		LaneCount: grid.LaneCount,
		Navigation: responses.TimelineNavigation{
			Prev:  convertWindow(timeline.Shift(grid.Window, -constvars.TimelineNavigationStepDays)),
			Next:  convertWindow(timeline.Shift(grid.Window, constvars.TimelineNavigationStepDays)),
			Today: convertWindow(timeline.JumpToTodayAt(grid.Window, v.now)),
		},
		Degraded: v.degraded,
	}
	if grid.HasToday {
		col := grid.TodayColumn
		response.TodayColumn = &col
	}
	return response
}
