package inventory

import (
	"bytes"
	"context"
	"fmt"
	"invrent-service/internal/app/config"
	"invrent-service/internal/app/contracts"
	"invrent-service/internal/app/models"
	"invrent-service/internal/pkg/constvars"
	"invrent-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxErrorBodyBytes = 4096

var (
	inventoryClientInstance contracts.InventoryClient
	onceInventoryClient     sync.Once
)

type inventoryClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewInventoryClient(inventoryConfig config.AppInventory, logger *zap.Logger) contracts.InventoryClient {
	onceInventoryClient.Do(func() {
		inventoryClientInstance = newInventoryClient(inventoryConfig, logger)
	})
	return inventoryClientInstance
}

func newInventoryClient(inventoryConfig config.AppInventory, logger *zap.Logger) *inventoryClient {
	timeout := time.Duration(inventoryConfig.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	limit := rate.Inf
	if inventoryConfig.RateLimitPerSecond > 0 {
		limit = rate.Limit(inventoryConfig.RateLimitPerSecond)
	}
	burst := inventoryConfig.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	return &inventoryClient{
		BaseUrl:    strings.TrimRight(inventoryConfig.BaseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    rate.NewLimiter(limit, burst),
		Log:        logger,
	}
}

type call struct {
	method   string
	path     string
	query    url.Values
	body     interface{}
	out      interface{}
	resource string
	// pin overrides the PIN taken from the context when non-nil.
	pin *string
}

func (c *inventoryClient) do(ctx context.Context, op string, in call) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Log.Error(op+" throttled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBackendThrottled(err)
	}

	endpoint := c.BaseUrl + in.path
	if len(in.query) > 0 {
		endpoint += "?" + in.query.Encode()
	}

	var body io.Reader
	if in.body != nil {
		payload, err := json.Marshal(in.body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, endpoint, body)
	if err != nil {
		c.Log.Error(op+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if in.body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	pin, _ := ctx.Value(constvars.CONTEXT_ADMIN_PIN_KEY).(string)
	if in.pin != nil {
		pin = *in.pin
	}
	if pin != "" {
		req.Header.Set(constvars.HeaderXAdminPin, pin)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Log.Error(op+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		backendErr := fmt.Errorf("%s %s: %s", in.method, in.path, strings.TrimSpace(string(bodyBytes)))
		c.Log.Error(op+" backend returned error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, endpoint),
			zap.Int(constvars.LoggingBackendStatusKey, resp.StatusCode),
		)
		return mapStatusError(backendErr, resp.StatusCode, in.resource)
	}

	if in.out == nil || resp.StatusCode == constvars.StatusNoContent {
		return nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, in.resource)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	err = json.Unmarshal(payload, in.out)
	if err != nil {
		c.Log.Error(op+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, in.resource)
	}
	return nil
}

func mapStatusError(err error, statusCode int, resource string) error {
	switch {
	case statusCode == constvars.StatusNotFound:
		return exceptions.ErrBackendNotFound(err, resource)
	case statusCode == constvars.StatusUnauthorized, statusCode == constvars.StatusForbidden:
		return exceptions.ErrBackendNotAuthorized(err, statusCode, resource)
	case statusCode == constvars.StatusBadRequest,
		statusCode == constvars.StatusConflict,
		statusCode == constvars.StatusUnprocessableEntity:
		return exceptions.ErrBackendRejected(err, statusCode, resource)
	case statusCode == constvars.StatusTooManyRequests:
		return exceptions.ErrBackendThrottled(err)
	default:
		return exceptions.ErrBackendUnexpectedStatus(err, statusCode, resource)
	}
}

func itemPath(itemID int64, suffix string) string {
	return constvars.ResourceItems + "/" + strconv.FormatInt(itemID, 10) + suffix
}

func (c *inventoryClient) ListItems(ctx context.Context, query models.ItemQuery) (*models.ItemPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("pageSize", strconv.Itoa(query.PageSize))
	if query.SortBy != "" {
		params.Set("sortBy", query.SortBy)
	}
	if query.SortDir != "" {
		params.Set("sortDir", query.SortDir)
	}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.CategoryID != nil {
		params.Set("categoryId", strconv.FormatInt(*query.CategoryID, 10))
	}
	if query.Status != "" {
		params.Set("status", query.Status)
	}

	page := new(models.ItemPage)
	err := c.do(ctx, "inventoryClient.ListItems", call{
		method:   constvars.MethodGet,
		path:     constvars.ResourceItems,
		query:    params,
		out:      page,
		resource: constvars.ResourceItems,
	})
	if err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []models.Item{}
	}
	return page, nil
}

func (c *inventoryClient) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	item := new(models.Item)
	err := c.do(ctx, "inventoryClient.GetItem", call{
		method:   constvars.MethodGet,
		path:     itemPath(itemID, ""),
		out:      item,
		resource: constvars.ResourceItems,
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *inventoryClient) CreateItem(ctx context.Context, payload *models.ItemPayload) (*models.Item, error) {
	item := new(models.Item)
	err := c.do(ctx, "inventoryClient.CreateItem", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceItems,
		body:     payload,
		out:      item,
		resource: constvars.ResourceItems,
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *inventoryClient) UpdateItem(ctx context.Context, itemID int64, payload *models.ItemPayload) (*models.Item, error) {
	item := new(models.Item)
	err := c.do(ctx, "inventoryClient.UpdateItem", call{
		method:   constvars.MethodPut,
		path:     itemPath(itemID, ""),
		body:     payload,
		out:      item,
		resource: constvars.ResourceItems,
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (c *inventoryClient) DeleteItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, "inventoryClient.DeleteItem", call{
		method:   constvars.MethodDelete,
		path:     itemPath(itemID, ""),
		resource: constvars.ResourceItems,
	})
}

func (c *inventoryClient) GetItemHistory(ctx context.Context, itemID int64) ([]models.HistoryEntry, error) {
	var history []models.HistoryEntry
	err := c.do(ctx, "inventoryClient.GetItemHistory", call{
		method:   constvars.MethodGet,
		path:     itemPath(itemID, constvars.ResourceHistorySuffix),
		out:      &history,
		resource: constvars.ResourceItems,
	})
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.HistoryEntry{}
	}
	return history, nil
}

func (c *inventoryClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.do(ctx, "inventoryClient.ListCategories", call{
		method:   constvars.MethodGet,
		path:     constvars.ResourceCategories,
		out:      &categories,
		resource: constvars.ResourceCategories,
	})
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (c *inventoryClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := new(models.Category)
	err := c.do(ctx, "inventoryClient.CreateCategory", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceCategories,
		body:     map[string]string{"name": name},
		out:      category,
		resource: constvars.ResourceCategories,
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (c *inventoryClient) DeleteCategory(ctx context.Context, categoryID int64) error {
	return c.do(ctx, "inventoryClient.DeleteCategory", call{
		method:   constvars.MethodDelete,
		path:     constvars.ResourceCategories + "/" + strconv.FormatInt(categoryID, 10),
		resource: constvars.ResourceCategories,
	})
}

func (c *inventoryClient) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	err := c.do(ctx, "inventoryClient.ListLocations", call{
		method:   constvars.MethodGet,
		path:     constvars.ResourceLocations,
		out:      &locations,
		resource: constvars.ResourceLocations,
	})
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return locations, nil
}

func (c *inventoryClient) CreateLocation(ctx context.Context, name string) (*models.Location, error) {
	location := new(models.Location)
	err := c.do(ctx, "inventoryClient.CreateLocation", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceLocations,
		body:     map[string]string{"name": name},
		out:      location,
		resource: constvars.ResourceLocations,
	})
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (c *inventoryClient) DeleteLocation(ctx context.Context, locationID int64) error {
	return c.do(ctx, "inventoryClient.DeleteLocation", call{
		method:   constvars.MethodDelete,
		path:     constvars.ResourceLocations + "/" + strconv.FormatInt(locationID, 10),
		resource: constvars.ResourceLocations,
	})
}

func (c *inventoryClient) CreateReservation(ctx context.Context, payload *models.ReservationPayload) (*models.Reservation, error) {
	reservation := new(models.Reservation)
	err := c.do(ctx, "inventoryClient.CreateReservation", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceReservations,
		body:     payload,
		out:      reservation,
		resource: constvars.ResourceReservations,
	})
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (c *inventoryClient) ListReservations(ctx context.Context, query models.ReservationQuery) (*models.ReservationPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("pageSize", strconv.Itoa(query.PageSize))
	params.Set("sortBy", query.SortBy)
	params.Set("sortDir", query.SortDir)
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Status != "" {
		params.Set("status", query.Status)
	}
	if query.From != "" {
		params.Set("from", query.From)
	}
	if query.To != "" {
		params.Set("to", query.To)
	}

	page := new(models.ReservationPage)
	err := c.do(ctx, "inventoryClient.ListReservations", call{
		method:   constvars.MethodGet,
		path:     constvars.ResourceReservations,
		query:    params,
		out:      page,
		resource: constvars.ResourceReservations,
	})
	if err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []models.Reservation{}
	}
	return page, nil
}

func (c *inventoryClient) CancelReservation(ctx context.Context, reservationID int64) error {
	return c.do(ctx, "inventoryClient.CancelReservation", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceReservations + "/" + strconv.FormatInt(reservationID, 10) + constvars.ResourceReservationCancel,
		body:     struct{}{},
		resource: constvars.ResourceReservations,
	})
}

func (c *inventoryClient) ApproveReservation(ctx context.Context, reservationID int64) error {
	return c.do(ctx, "inventoryClient.ApproveReservation", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceReservations + "/" + strconv.FormatInt(reservationID, 10) + constvars.ResourceReservationApprove,
		body:     struct{}{},
		resource: constvars.ResourceReservations,
	})
}

func (c *inventoryClient) IssueLoan(ctx context.Context, payload *models.LoanIssuePayload) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	err := c.do(ctx, "inventoryClient.IssueLoan", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceLoans + constvars.ResourceLoanIssueSuffix,
		body:     payload,
		out:      &result,
		resource: constvars.ResourceLoans,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *inventoryClient) ReturnLoan(ctx context.Context, payload *models.LoanReturnPayload) (map[string]interface{}, error) {
	result := map[string]interface{}{}
	err := c.do(ctx, "inventoryClient.ReturnLoan", call{
		method:   constvars.MethodPost,
		path:     constvars.ResourceLoans + constvars.ResourceLoanReturnSuffix,
		body:     payload,
		out:      &result,
		resource: constvars.ResourceLoans,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *inventoryClient) AdminPing(ctx context.Context, pin string) error {
	return c.do(ctx, "inventoryClient.AdminPing", call{
		method:   constvars.MethodGet,
		path:     constvars.ResourceAdminPing,
		resource: constvars.ResourceAdminPing,
		pin:      &pin,
	})
}

// GetAvailability asks for spans overlapping [from, to). Both bounds are sent
// as calendar dates in their own location.
func (c *inventoryClient) GetAvailability(ctx context.Context, itemID int64, from, to time.Time) ([]models.AvailabilitySpan, error) {
	params := url.Values{}
	params.Set("from", from.Format(constvars.BackendDateLayout))
	params.Set("to", to.Format(constvars.BackendDateLayout))

	var spans []models.AvailabilitySpan
	err := c.do(ctx, "inventoryClient.GetAvailability", call{
		method:   constvars.MethodGet,
		path:     itemPath(itemID, constvars.ResourceAvailabilitySuffix),
		query:    params,
		out:      &spans,
		resource: constvars.ResourceItems,
	})
	if err != nil {
		return nil, err
	}
	if spans == nil {
		spans = []models.AvailabilitySpan{}
	}
	return spans, nil
}
