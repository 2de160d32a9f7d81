package models

// Storage backend name constants
const (
	BackendSupabase = "supabase"
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Domain types

// Submission is the only entity. It is immutable once created: the id is
// assigned at insert time, never by the client, and records are only ever
// inserted and read back.
type Submission struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Answer        string `json:"answer"`
	Timestamp     string `json:"timestamp"`
	SubmittedAt   string `json:"submitted_at,omitempty"`
	StorageMethod string `json:"storage_method,omitempty"`
}

// FieldError is one per-field validation failure, shaped like the
// {loc, msg, type} entries the frontend already consumes.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Response types

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Version string `json:"version"`
	Storage string `json:"storage"`
}

type HealthResponse struct {
	Status        string   `json:"status"`
	Environment   string   `json:"environment"`
	Database      string   `json:"database"`
	StorageMethod string   `json:"storage_method"`
	CORSOrigins   []string `json:"cors_origins"`
	Timestamp     string   `json:"timestamp"`
}

type SubmissionResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submission_id,omitempty"`
}

type CountResponse struct {
	TotalSubmissions int    `json:"total_submissions"`
	StorageMethod    string `json:"storage_method"`
	Timestamp        string `json:"timestamp"`
}

type BackupResponse struct {
	TotalSubmissions int          `json:"total_submissions"`
	Submissions      []Submission `json:"submissions"`
	StorageMethod    string       `json:"storage_method"`
	Timestamp        string       `json:"timestamp"`
}

// ValidationErrorResponse carries the per-field detail for a 422.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
