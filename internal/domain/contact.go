package domain

import (
	"context"
	"errors"
	"time"
)

// Subject taxonomy for contact messages. Fixed; no other values exist.
const (
	SubjectClient = "client"
	SubjectJob    = "job"
	SubjectOther  = "other"
)

// ErrBotDetected marks a submission whose honeypot field was populated.
// The request is accepted but nothing is persisted, and the caller gets
// no signal that it was detected.
var ErrBotDetected = errors.New("honeypot field populated")

// ContactRequest is the wire shape of a contact form submission.
// Validation tags are the authoritative server-side schema, independent
// of whatever the client checked.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100,valid_name"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Company string `json:"company" validate:"omitempty,max=120"`
	Subject string `json:"subject" validate:"required,subject_kind"`
	Message string `json:"message" validate:"required,min=10,max=1200"`
	HP      string `json:"hp" validate:"omitempty"`
}

// RequestMeta carries request metadata stamped onto the message at write
// time: the client IP (X-Forwarded-For or socket address) and User-Agent.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// ContactMessage is the persisted contact submission. Immutable once
// created; there is no update or delete operation.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IP        string    `json:"-"`
	UserAgent string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvalidSubmissionError carries the per-field violations of a rejected
// submission, for the structured 400 payload.
type InvalidSubmissionError struct {
	Violations []FieldViolation
}

// FieldViolation pairs a wire field name with a message.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *InvalidSubmissionError) Error() string {
	return "contact submission failed validation"
}

// ContactUsecase validates and stores inbound contact submissions.
type ContactUsecase interface {
	// Submit re-validates req against the schema, applies the honeypot
	// policy and persists the message. Returns ErrBotDetected for
	// honeypot traffic and *InvalidSubmissionError on schema failure.
	Submit(ctx context.Context, req *ContactRequest, meta RequestMeta) (*ContactMessage, error)
}

// ContactRepository persists accepted contact messages.
type ContactRepository interface {
	// Save inserts the message atomically and fills in its timestamps.
	Save(ctx context.Context, msg *ContactMessage) error
}
