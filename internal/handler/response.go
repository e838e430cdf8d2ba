package handler

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"print4me/internal/domain"
	"print4me/internal/middleware"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	OK     bool     `json:"ok"`
	Error  string   `json:"error,omitempty"`
	Code   string   `json:"code,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// RespondOK sends a 200 response with ok:true merged into fields.
func RespondOK(c *gin.Context, fields gin.H) {
	body := gin.H{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{Error: msg, Code: code})
}

// RespondValidation sends a 400 listing every violated constraint.
func RespondValidation(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Errors: messages})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "at least one file is required"
	case errors.Is(err, domain.ErrTooManyFiles):
		return http.StatusBadRequest, "TOO_MANY_FILES", "too many files; at most 5 are allowed"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, doc, docx, xlsx, images"
	case errors.Is(err, domain.ErrFileTooLarge), errors.As(err, &maxBytes), errors.Is(err, multipart.ErrMessageTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "upload exceeds maximum allowed size"
	case errors.Is(err, domain.ErrStorageFailed):
		return http.StatusInternalServerError, "STORAGE_FAILED", "could not store uploaded files"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	if verr, ok := domain.AsValidationError(err); ok {
		RespondValidation(c, verr.Messages)
		return
	}
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("[%s] internal error: %v", c.GetString(middleware.RequestIDKey), err)
	}
	RespondError(c, status, code, msg)
}

// formFiles returns the uploaded files under field. A request that is not
// multipart yields no files rather than an error.
func formFiles(c *gin.Context, field string) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, nil
		}
		return nil, err
	}
	return form.File[field], nil
}

// handleFormError responds to a multipart parsing failure.
func handleFormError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		status, code, msg = http.StatusBadRequest, "INVALID_FORM", "malformed multipart form"
	}
	log.Printf("[%s] handler.formFiles: %v", c.GetString(middleware.RequestIDKey), err)
	RespondError(c, status, code, msg)
}
