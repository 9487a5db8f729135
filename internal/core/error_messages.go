package core

// error_messages.go maps pipeline failures to user-friendly messages with
// codes for support reference.
//
// Codes are grouped by category:
//
//	FILE001 - Wrong file type: name is not letters, digits and spaces ending in .csv
//	FILE002 - File unavailable: file is missing, unreadable or too large
//	VAL001  - Not a proper CSV: header does not match the expected columns
//	VAL002  - Malformed row: wrong field count or unparsable number
//	DATA001 - No data: nothing has been loaded for this record type
//	REQ001  - Unknown record type
//	REQ002  - Unknown sort field
//	ERR000  - Unknown error

import (
	"context"
	"errors"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var kindMessages = map[Kind]UserMessage{
	KindWrongFileType: {
		Message: "Enter proper file type",
		Action:  "Use a .csv file whose name contains only letters, digits and spaces",
		Code:    "FILE001",
	},
	KindSourceUnavailable: {
		Message: "Unable to read the data file",
		Action:  "Check that the file exists and is readable",
		Code:    "FILE002",
	},
	KindMalformedSchema: {
		Message: "Not a proper CSV",
		Action:  "Verify the delimiter is a comma and the header matches the template exactly",
		Code:    "VAL001",
	},
	KindMalformedRow: {
		Message: "A data row is malformed",
		Action:  "Check the field count and that numeric columns hold whole numbers",
		Code:    "VAL002",
	},
	KindNoData: {
		Message: "No csv data",
		Action:  "Load a data file before requesting a sorted view",
		Code:    "DATA001",
	},
	KindUnknownRecordType: {
		Message: "Unknown record type",
		Action:  "Use one of the registered record types",
		Code:    "REQ001",
	},
	KindUnknownSortField: {
		Message: "Unknown sort field",
		Action:  "Sort by state, code, population, density or area",
		Code:    "REQ002",
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error into a user-friendly message.
// Returns the default message for nil or unclassified errors.
func MapError(err error) UserMessage {
	if err == nil {
		return defaultMessage
	}

	if msg, ok := kindMessages[KindOf(err)]; ok {
		return msg
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ003",
		}
	}

	return defaultMessage
}

// FormatUserError formats a user message as a single line: "Message. Action (Code)".
func FormatUserError(msg UserMessage) string {
	var b strings.Builder
	b.WriteString(msg.Message)
	if msg.Action != "" {
		b.WriteString(". ")
		b.WriteString(msg.Action)
	}
	b.WriteString(" (")
	b.WriteString(msg.Code)
	b.WriteString(")")
	return b.String()
}
