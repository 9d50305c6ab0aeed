package logging

// Standardized field names for structured logging.
const (
	FieldTransactionID = "transaction_id"
	FieldClientID      = "client_id"
	FieldProjectID     = "project_id"
	FieldCategory      = "category"
	FieldGroup         = "group"
	FieldSuggestion    = "suggestion"
	FieldMonth         = "month"
	FieldOperation     = "operation"
	FieldReason        = "reason"
	FieldBackend       = "backend"
	FieldKey           = "key"
	FieldCount         = "count"
	FieldFormat        = "format"
	FieldModel         = "model"
	FieldDuration      = "duration_ms"
	FieldFile          = "file_path"
	FieldOutputFile    = "output_file"
	FieldComponent     = "component"
)
