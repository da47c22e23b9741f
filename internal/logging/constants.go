package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the log output easy to filter.
const (
	FieldFile       = "file_path"
	FieldEntryID    = "entry_id"
	FieldCategory   = "category"
	FieldKind       = "kind"
	FieldMonth      = "month"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldOperation  = "operation"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
