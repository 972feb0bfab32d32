package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldMonth       = "month"
	FieldYear        = "year"
	FieldKind        = "kind"
	FieldCategory    = "category"
	FieldPeriod      = "period"
	FieldAmountCents = "amount_cents"
	FieldRecordID    = "record_id"
	FieldRecordCount = "record_count"
	FieldBatchID     = "batch_id"
	FieldModel       = "model"
	FieldSink        = "sink"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentInsight = "insight"
	ComponentArchive = "archive"
	ComponentAMQP    = "amqp"
	ComponentSheets  = "sheets"
	ComponentWorker  = "worker"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpUpdate   = "update"
	OpList     = "list"
	OpReset    = "reset"
	OpSweep    = "sweep"
	OpGenerate = "generate"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
