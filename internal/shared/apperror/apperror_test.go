package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	err := New(CodeNotFound, "Employee not found", http.StatusNotFound)

	httpErr := ToHTTP(err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, CodeNotFound, httpErr.Code)
	assert.Equal(t, "Employee not found", httpErr.Message)
	assert.Nil(t, httpErr.Details)
}

func TestToHTTP_WrappedAppError(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("saving: %w", Wrap(cause, CodeInternalError, "Could not save", http.StatusInternalServerError))

	httpErr := ToHTTP(err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Could not save", httpErr.Message)
	assert.Equal(t, "disk full", httpErr.Details)
}

func TestToHTTP_UnknownErrorIsMasked(t *testing.T) {
	httpErr := ToHTTP(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, CodeInternalError, httpErr.Code)
	assert.NotContains(t, httpErr.Message, "pq:")
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternalError, "nothing", http.StatusInternalServerError))
}

func TestFormatFieldName(t *testing.T) {
	assert.Equal(t, "Start Date", formatFieldName("start_date"))
	assert.Equal(t, "Email", formatFieldName("email"))
}
