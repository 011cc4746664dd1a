package inventory

// errors.go maps technical errors to user-facing messages with support
// codes. Patterns are matched case-insensitively with strings.Contains;
// the first match wins, so specific patterns come before general ones.
//
// Code ranges:
//
//	DB001-DB099   store connectivity and constraint failures
//	IMP001-IMP099 import session and file handling
//	VAL001-VAL099 item validation
//	ERR000        fallback

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the service layer.
var (
	// ErrNoValidItems is returned when an import commit is requested but
	// the session holds no valid rows.
	ErrNoValidItems = errors.New("no valid items to import")

	// ErrSessionNotFound is returned for an unknown or expired import session.
	ErrSessionNotFound = errors.New("import session not found")
)

// ValidationError is returned when a candidate from the add/edit form
// fails validation. It carries every violated rule, in check order.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// UserMessage is a user-friendly rendering of an error with an
// actionable suggestion and a code for support reference.
type UserMessage struct {
	Message string `json:"error"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "missing required columns",
		msg: UserMessage{
			Message: "The spreadsheet is missing required columns",
			Action:  "Include name, category, subcategory, quantity and location in the header row",
			Code:    "IMP001",
		},
	},
	{
		pattern: "no valid items",
		msg: UserMessage{
			Message: "No valid items to import",
			Action:  "Fix the rows flagged in the preview and upload again",
			Code:    "IMP002",
		},
	},
	{
		pattern: "import session not found",
		msg: UserMessage{
			Message: "The import session has expired",
			Action:  "Upload the file again to start a new import",
			Code:    "IMP003",
		},
	},
	{
		pattern: "not a valid zip",
		msg: UserMessage{
			Message: "The file could not be read as an Excel workbook",
			Action:  "Ensure the file is a valid .xlsx workbook and try again",
			Code:    "IMP004",
		},
	},
	{
		pattern: "workbook has no sheets",
		msg: UserMessage{
			Message: "The workbook contains no sheets",
			Action:  "Add a sheet with a header row and data rows",
			Code:    "IMP005",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Choose an .xlsx file to upload",
			Code:    "IMP006",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "The database rejected the request",
			Action:  "Check that the database role has access to the stockroom tables",
			Code:    "DB002",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to the database",
			Action:  "Please try again in a few moments",
			Code:    "DB003",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "The database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB004",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The operation timed out",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "The operation timed out",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "item not found",
		msg: UserMessage{
			Message: "The item no longer exists",
			Action:  "Refresh the inventory and try again",
			Code:    "DB006",
		},
	},
	{
		pattern: "invalid category",
		msg: UserMessage{
			Message: "The item has an invalid category",
			Action:  "Pick one of the fixed categories",
			Code:    "VAL001",
		},
	},
	{
		pattern: "invalid subcategory",
		msg: UserMessage{
			Message: "The subcategory is not allowed for the chosen category",
			Action:  "Pick a subcategory that belongs to the category",
			Code:    "VAL002",
		},
	},
	{
		pattern: "is required",
		msg: UserMessage{
			Message: "A required field is empty",
			Action:  "Fill in name and location",
			Code:    "VAL003",
		},
	},
	{
		pattern: "non-negative",
		msg: UserMessage{
			Message: "Quantity must be zero or more",
			Action:  "Correct the quantity and try again",
			Code:    "VAL004",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or check the server logs",
	Code:    "ERR000",
}

// MapError converts a technical error into a UserMessage.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders a MapError result for display:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
