package errors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrorInfo is a parsed error: a stable code plus a message safe to show.
type ErrorInfo struct {
	Code    string
	Message string
}

// Postgres error classes we care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// ParseError turns database and transport errors into user-facing codes
// without leaking internals. context names the operation ("create category",
// "delete product") and steers the fallback message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return parseDuplicateKey(pqErr.Constraint, context)
		case pgForeignKeyViolation:
			return ErrorInfo{Code: ResourceConflict, Message: "Related data prevents this operation"}
		case pgNotNullViolation:
			return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
		}
	}

	// The sqlite test driver and some pool layers wrap errors as plain
	// strings, so fall back to message sniffing.
	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return parseDuplicateKey(errLower, context)
	}
	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Code:    InternalStorageError,
			Message: "A backing service is unavailable. Please try again later",
		}
	}

	return ErrorInfo{Code: InternalServerError, Message: defaultMessage(context)}
}

func parseDuplicateKey(detail, context string) ErrorInfo {
	detailLower := strings.ToLower(detail)

	if strings.Contains(detailLower, "name") && strings.Contains(context, "category") {
		return ErrorInfo{Code: CategoryNameExists, Message: "A category with this name already exists"}
	}

	return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "product") {
		return "Product not found"
	}
	if strings.Contains(contextLower, "category") {
		return "Category not found"
	}
	return "The requested data was not found"
}

func defaultMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "create") {
		return "Failed to save. Please try again later"
	}
	if strings.Contains(contextLower, "update") {
		return "Failed to update. Please try again later"
	}
	if strings.Contains(contextLower, "delete") {
		return "Failed to delete. Please try again later"
	}
	return "Something went wrong. Please try again later"
}

// ParseAndRespond parses err and writes the error response. The interface
// keeps this package free of a gin dependency; *gin.Context satisfies it.
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
