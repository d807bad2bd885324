package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"min":                "must be at least %s characters long",
	"max":                "maximum at %s characters long",
	"oneof":              "must be one of [%s]",
	"gt":                 "must be greater than %s",
	"gte":                "must be greater than or equal to %s",
	"lt":                 "must be less than %s",
	"lte":                "must be less than or equal to %s",
	"gtfield":            "must be after %s",
	"numeric":            "must be a number",
	"not_past_time":      "due date must be in the future",
	"item_status":        "must be one of [OK, DEFECT, OUT]",
	"reservation_status": "must be one of [PENDING, APPROVED, CANCELLED]",
	"sort_dir":           "must be either 'asc' or 'desc'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"oneof":   true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"gtfield": true,
}

// Tags whose message already reads as a full sentence
var TagsWithStandaloneMessage = map[string]bool{
	"not_past_time": true,
}
