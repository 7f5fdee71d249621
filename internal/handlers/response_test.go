package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind apperrors.Kind
		want int
	}{
		{apperrors.KindNotFound, http.StatusNotFound},
		{apperrors.KindForbidden, http.StatusForbidden},
		{apperrors.KindUnauthorized, http.StatusUnauthorized},
		{apperrors.KindValidation, http.StatusBadRequest},
		{apperrors.KindConflict, http.StatusBadRequest},
		{apperrors.KindIneligible, http.StatusBadRequest},
		{apperrors.Kind(""), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, statusForKind(tc.kind), string(tc.kind))
	}
}

func TestRespondErrorApplicationError(t *testing.T) {
	c, recorder := newTestContext(t)

	respondError(c, apperrors.NotFound("Event not found"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Event not found", body["message"])
	assert.Equal(t, false, body["success"])
}

func TestRespondErrorIneligibleCarriesNextEligibleDate(t *testing.T) {
	c, recorder := newTestContext(t)
	next := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	respondError(c, apperrors.Ineligible("Cannot donate for 20 more days", &next))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Cannot donate for 20 more days", body["message"])
	assert.Contains(t, body, "nextEligibleDate")
}

func TestRespondErrorUnknownErrorIsOpaque(t *testing.T) {
	c, recorder := newTestContext(t)

	respondError(c, errors.New("mongo: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestRespondOKOmitsNilData(t *testing.T) {
	c, recorder := newTestContext(t)

	respondOK(c, http.StatusOK, "done", nil)

	body := decodeBody(t, recorder)
	assert.Equal(t, "done", body["message"])
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "data")
}
