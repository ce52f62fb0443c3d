package constants

// Canonical field names. Every cell a scanner rule claims ends up under one
// of these keys, and candidate storage columns are named after them.
const (
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldLocation       = "location"
	FieldPosition       = "position"
	FieldExperience     = "experience"
	FieldCTC            = "ctc"
	FieldExpectedSalary = "expectedSalary"
	FieldNoticePeriod   = "noticePeriod"
	FieldCompany        = "company"
	FieldClient         = "client"
	FieldSPOC           = "spoc"
	FieldStatus         = "status"
	FieldSourceOfCV     = "sourceOfCV"
)

// AllFields lists the canonical fields in scan order.
var AllFields = []string{
	FieldName,
	FieldPhone,
	FieldEmail,
	FieldLocation,
	FieldPosition,
	FieldExperience,
	FieldCTC,
	FieldExpectedSalary,
	FieldNoticePeriod,
	FieldCompany,
	FieldClient,
	FieldSPOC,
	FieldStatus,
	FieldSourceOfCV,
}

// Record categories produced by the quality validator.
const (
	CategoryReady   = "ready"
	CategoryReview  = "review"
	CategoryBlocked = "blocked"
)

// Issue severities carried on ValidationResult entries.
const (
	SeverityError   = "ERROR"
	SeverityWarning = "WARNING"
)
