package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audiobook/internal/database"
	"github.com/mrlokans/audiobook/internal/database/query"
	"github.com/mrlokans/audiobook/internal/dto"
	"github.com/mrlokans/audiobook/internal/media"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // field messages for validation errors
}

const (
	codeValidation = "validation_error"
	codeNotFound   = "not_found"
	codeIntegrity  = "integrity_error"
)

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: codeNotFound})
}

// respondValidation sends a 400 response carrying field-level messages.
func respondValidation(c *gin.Context, verr *database.ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Code: codeValidation, Details: verr.Fields})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps repository and service errors onto HTTP statuses.
func respondStoreError(c *gin.Context, err error, resource string) {
	var verr *database.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(c, verr)
	case errors.Is(err, database.ErrNotFound):
		respondNotFound(c, resource)
	case errors.Is(err, database.ErrIntegrity):
		c.JSON(http.StatusConflict, ErrorResponse{Error: resource + " is still referenced and cannot be deleted", Code: codeIntegrity})
	default:
		respondInternalError(c, err, resource)
	}
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondOK sends a 200 response with data.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, strconv.IntSize)
	if err != nil || id == 0 {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// parseFilter validates list query parameters against fs.
// On failure it responds with a 400 error and returns false.
func parseFilter(c *gin.Context, fs query.FilterSet) (query.Filter, bool) {
	filter, err := fs.Parse(c.Request.URL.Query())
	if err != nil {
		respondStoreError(c, err, "query")
		return query.Filter{}, false
	}
	return filter, true
}

// bindPayload decodes the JSON body into payload and runs binding validation.
// On failure it responds with a 400 error and returns false.
func bindPayload(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		respondValidation(c, translateBindingError(err))
		return false
	}
	return true
}

// --- Media ---

// mediaURLs returns the URL resolver bound to the current request.
func mediaURLs(c *gin.Context, resolver *media.Resolver) dto.URLFunc {
	if resolver == nil {
		return dto.RawURL
	}
	return func(path string) *string {
		return resolver.Resolve(c.Request, path)
	}
}
