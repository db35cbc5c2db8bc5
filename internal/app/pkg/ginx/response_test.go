package ginx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marxiobadel/farmer-sub002/internal/app/domains/entity/etzone"
	"github.com/marxiobadel/farmer-sub002/internal/app/pkg/errorx"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestFail_MapsDomainError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, fmt.Errorf("quote: %w", etzone.ErrZoneNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.Equal(t, http.StatusNotFound, resp.Meta.Code)
	assert.Len(t, c.Errors, 1)
}

func TestFail_CarriesBusinessErrorDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	be := errorx.NewBusinessError(http.StatusBadRequest, "invalid rates")
	be.Details = []errorx.ErrorDetail{{Path: "rates[1].weight", Info: "min exceeds max"}}
	Fail(c, be)

	resp := decode(t, w)
	require.Len(t, resp.Meta.Details, 1)
	assert.Equal(t, "rates[1].weight", resp.Meta.Details[0].Path)
}

func TestBadRequestWithValidation(t *testing.T) {
	type quoteReq struct {
		Country string `json:"country" binding:"required,len=2"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req quoteReq
	err := c.ShouldBindJSON(&req)
	require.Error(t, err)
	BadRequestWithValidation(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	require.Len(t, resp.Meta.Details, 1)
	assert.Equal(t, "Country", resp.Meta.Details[0].Path)
	assert.Equal(t, "Country is required", resp.Meta.Details[0].Info)
}

func TestPending(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Pending(c, "ord-1", "/api/v1/orders/ord-1/payment", nil)

	resp := decode(t, w)
	assert.Equal(t, CodePending, resp.Meta.Code)
}
