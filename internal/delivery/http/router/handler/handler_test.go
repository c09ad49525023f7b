package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestProductHandler_GetProduct_InvalidID(t *testing.T) {
	handler := &ProductHandler{logger: slog.Default()}

	c, rec := newTestContext(t, http.MethodGet, "/api/products/not-a-uuid")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetProduct(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestCartHandler_GetCart_MissingUser(t *testing.T) {
	handler := &CartHandler{logger: slog.Default()}

	// No userID on the context simulates a route that skipped authentication
	c, rec := newTestContext(t, http.MethodGet, "/api/cart")

	err := handler.GetCart(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestOrderHandler_TrackingQR_InvalidID(t *testing.T) {
	handler := &OrderHandler{logger: slog.Default()}

	c, rec := newTestContext(t, http.MethodGet, "/api/orders/abc/qrcode")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.TrackingQR(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQueryInt(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/api/products?page=3&size=oops")

	assert.Equal(t, 3, queryInt(c, "page", 1))
	assert.Equal(t, 20, queryInt(c, "size", 20))
	assert.Equal(t, 5, queryInt(c, "limit", 5))
}
