package services

import "fmt"

// Error codes surfaced to clients alongside the HTTP status.
const (
	CodeEndBeforeStart      = "end_before_start"
	CodeSlotOverlap         = "slot_overlap"
	CodeMinimumSlots        = "minimum_slots"
	CodeMentorNotFound      = "mentor_not_found"
	CodeInvalidDuration     = "invalid_duration"
	CodePastSchedule        = "past_schedule"
	CodeInvalidTransition   = "invalid_transition"
	CodeSessionTerminal     = "session_terminal"
	CodeNotAuthorized       = "not_authorized"
	CodeFileTooLarge        = "file_too_large"
	CodeUnsupportedFileType = "unsupported_file_type"
	CodeTooManyFiles        = "too_many_files"
	CodeEmailTaken          = "email_taken"
	CodeUsernameTaken       = "username_taken"
	CodeNotFound            = "not_found"
	CodeBadRequest          = "bad_request"
)

type ServiceError struct {
	Status  int
	Code    string
	Message string
}

func (e ServiceError) Error() string {
	return e.Message
}

func ErrNotFound(code, msg string) error {
	return ServiceError{Status: 404, Code: code, Message: msg}
}

func ErrBadRequest(code, msg string) error {
	return ServiceError{Status: 400, Code: code, Message: msg}
}

func ErrConflict(code, msg string) error {
	return ServiceError{Status: 409, Code: code, Message: msg}
}

func ErrForbidden(code, msg string) error {
	return ServiceError{Status: 403, Code: code, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return ServiceError{Status: 401, Code: "unauthorized", Message: msg}
}

// ErrCode extracts the service error code, or "" for plain errors.
func ErrCode(err error) string {
	if serr, ok := err.(ServiceError); ok {
		return serr.Code
	}
	return ""
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
