package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldRows      = "rows"
	FieldClient    = "client"
	FieldProject   = "project"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentSheets    = "sheets"
	ComponentDashboard = "dashboard"
	ComponentTax       = "tax"
	ComponentCache     = "cache"
)
