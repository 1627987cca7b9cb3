package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldPath      = "path"
	FieldPosition  = "position"
	FieldCount     = "count"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldBackend   = "backend"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentExport  = "export"
	ComponentBackend = "backend"
)
