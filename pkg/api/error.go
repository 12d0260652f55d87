package api

import (
	"encoding/json"
	"net/http"

	"lumera-client/internal/dto"
)

// Kind is the closed set of failure classifications the client produces.
// Every remote-call failure is converted to exactly one of these at the
// request boundary; callers switch on Kind instead of probing error shapes.
type Kind int

const (
	// Local validation, never reaches the network
	KindInvalidFileType Kind = iota
	KindFileTooLarge
	KindNoFileSelected

	// Local guard: no token stored at all
	KindNotAuthenticated

	// Server rejected a credential that looked valid locally
	KindSessionExpired

	// Any other non-success response or transport failure
	KindRequestFailed

	// Requested record/history entry does not exist
	KindNotFound

	// Stored recommendation payload could not be decoded
	KindDecodeFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFileType:
		return "InvalidFileType"
	case KindFileTooLarge:
		return "FileTooLarge"
	case KindNoFileSelected:
		return "NoFileSelected"
	case KindNotAuthenticated:
		return "NotAuthenticated"
	case KindSessionExpired:
		return "SessionExpired"
	case KindNotFound:
		return "NotFound"
	case KindDecodeFailure:
		return "DecodeFailure"
	default:
		return "RequestFailed"
	}
}

// Error is the tagged failure type used across the client.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// AsError extracts an *Error from any error, wrapping unknown errors as
// RequestFailed with the generic user-facing message.
func AsError(err error) *Error {
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return &Error{Kind: KindRequestFailed, Message: "Upload failed. Please try again."}
}

// Classify converts a non-2xx response into a tagged Error.
//
// The Lumera API signals a stale/invalid credential with 401 (expired) or
// 422 (signature verification failed). That mapping only holds when the
// request actually carried the stored token: a 401 on a credential exchange
// (wrong password at login) is an ordinary rejection and keeps the server's
// own error text. For everything else the server text is preferred when
// present.
func Classify(status int, body []byte, authed bool) *Error {
	switch {
	case authed && (status == http.StatusUnauthorized || status == http.StatusUnprocessableEntity):
		return &Error{Kind: KindSessionExpired, Message: "Session expired. Please log in again."}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: "Not found"}
	}

	var envelope dto.APIErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return &Error{Kind: KindRequestFailed, Message: envelope.Error}
		}
		if envelope.Message != "" {
			return &Error{Kind: KindRequestFailed, Message: envelope.Message}
		}
	}
	return &Error{Kind: KindRequestFailed, Message: "Upload failed. Please try again."}
}
