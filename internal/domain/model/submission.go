package model

import "time"

type SubmissionStatus string

const (
	StatusAccepted            SubmissionStatus = "Accepted"
	StatusWrongAnswer         SubmissionStatus = "Wrong Answer"
	StatusTimeLimitExceeded   SubmissionStatus = "Time Limit Exceeded"
	StatusMemoryLimitExceeded SubmissionStatus = "Memory Limit Exceeded"
	StatusRuntimeError        SubmissionStatus = "Runtime Error"
	StatusCompilationError    SubmissionStatus = "Compilation Error"
	StatusPending             SubmissionStatus = "Pending"
)

// Submission is immutable once created: the status is decided at submit time
// and there is no re-judging.
type Submission struct {
	ID            string           `json:"id"`
	ProblemID     string           `json:"problem_id"`
	UserID        string           `json:"user_id"`
	Username      string           `json:"username"`
	Language      string           `json:"language"`
	Code          string           `json:"code"`
	Status        SubmissionStatus `json:"status"`
	ExecutionTime int              `json:"execution_time_ms,omitempty"`
	MemoryUsed    int              `json:"memory_used_kb,omitempty"`
	SubmittedAt   time.Time        `json:"submitted_at"`
	ErrorMessage  string           `json:"error_message,omitempty"`
}
