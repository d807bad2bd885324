package constvars

const (
	EventItemCreated          = "item.created"
	EventItemUpdated          = "item.updated"
	EventItemDeleted          = "item.deleted"
	EventReservationCreated   = "reservation.created"
	EventReservationCancelled = "reservation.cancelled"
	EventReservationApproved  = "reservation.approved"
	EventLoanIssued           = "loan.issued"
	EventLoanReturned         = "loan.returned"
	EventTimelineExported     = "timeline.exported"
)

const (
	AuditActionAdminActivated      = "admin.activated"
	AuditActionAdminActivateFailed = "admin.activate_failed"
	AuditActionAdminDeactivated    = "admin.deactivated"
	AuditActionPrivileged          = "admin.privileged_action"
)

const (
	MongoCollectionAdminAudit = "admin_audit"
)
