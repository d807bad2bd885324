package constvars

const (
	URLParamItemID        = "itemID"
	URLParamCategoryID    = "categoryID"
	URLParamLocationID    = "locationID"
	URLParamReservationID = "reservationID"
)

const (
	QueryParamPage       = "page"
	QueryParamPageSize   = "pageSize"
	QueryParamSortBy     = "sortBy"
	QueryParamSortDir    = "sortDir"
	QueryParamSearch     = "search"
	QueryParamCategoryID = "categoryId"
	QueryParamStatus     = "status"
	QueryParamFrom       = "from"
	QueryParamTo         = "to"
	QueryParamStart      = "start"
	QueryParamDays       = "days"
	QueryParamLocale     = "locale"
)

const (
	DefaultPageSize             = 10
	MaxPageSize                 = 200
	DefaultReservationSortBy    = "startAt"
	DefaultSortDir              = "asc"
	TimelineNavigationStepDays  = 7
	TimelineMaxWindowDays       = 366
	BackendDateLayout           = "2006-01-02"
	ResourceItems               = "/items"
	ResourceCategories          = "/categories"
	ResourceLocations           = "/locations"
	ResourceReservations        = "/reservations"
	ResourceLoans               = "/loans"
	ResourceAdminPing           = "/admin/ping"
	ResourceHistorySuffix       = "/history"
	ResourceAvailabilitySuffix  = "/availability"
	ResourceLoanIssueSuffix     = "/issue"
	ResourceLoanReturnSuffix    = "/return"
	ResourceReservationCancel   = "/cancel"
	ResourceReservationApprove  = "/approve"
	TimelineExportObjectPrefix  = "timelines/"
	TimelineExportFileExtension = ".svg"
)

const (
	ItemStatusOK     = "OK"
	ItemStatusDefect = "DEFECT"
	ItemStatusOut    = "OUT"
)

const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusApproved  = "APPROVED"
	ReservationStatusCancelled = "CANCELLED"
)

// BackendLocalDateTimeLayouts are the zone-less date-time forms a backend
// with local date-times emits.
var BackendLocalDateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}
