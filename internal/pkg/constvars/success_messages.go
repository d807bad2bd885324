package constvars

const (
	GetItemsSuccessfully           = "Items retrieved successfully"
	GetItemSuccessfully            = "Item retrieved successfully"
	GetItemHistorySuccessfully     = "Item history retrieved successfully"
	CreateItemSuccessfully         = "Item created successfully"
	UpdateItemSuccessfully         = "Item updated successfully"
	DeleteItemSuccessfully         = "Item deleted successfully"
	GetCategoriesSuccessfully      = "Categories retrieved successfully"
	CreateCategorySuccessfully     = "Category created successfully"
	DeleteCategorySuccessfully     = "Category deleted successfully"
	GetLocationsSuccessfully       = "Locations retrieved successfully"
	CreateLocationSuccessfully     = "Location created successfully"
	DeleteLocationSuccessfully     = "Location deleted successfully"
	GetReservationsSuccessfully    = "Reservations retrieved successfully"
	CreateReservationSuccessfully  = "Reservation created successfully"
	CancelReservationSuccessfully  = "Reservation cancelled successfully"
	ApproveReservationSuccessfully = "Reservation approved successfully"
	IssueLoanSuccessfully          = "Loan issued successfully"
	ReturnLoanSuccessfully         = "Loan returned successfully"
	GetTimelineSuccessfully        = "Timeline retrieved successfully"
	ExportTimelineSuccessfully     = "Timeline exported successfully"
	ActivateAdminModeSuccessfully  = "Admin mode activated"
	DeactivateAdminSuccessfully    = "Admin mode deactivated"
	GetAdminStatusSuccessfully     = "Admin mode status retrieved successfully"
	HealthCheckSuccessfully        = "Service is healthy"
)
