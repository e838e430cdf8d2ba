package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"print4me/internal/config"
	"print4me/internal/domain"
	"print4me/internal/handler"
	"print4me/internal/router"
	"print4me/mocks"
)

func setup(t *testing.T) (*gin.Engine, *mocks.MockOrderService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		CORS:   config.CORSConfig{AllowedOrigins: []string{"https://print4me.app"}},
		Upload: config.UploadConfig{MaxFileSizeMB: 1, MaxFiles: 1},
	}
	orderSvc := new(mocks.MockOrderService)
	metricsH := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	r := router.Setup(cfg,
		handler.NewOrderHandler(orderSvc),
		handler.NewPageHandler(new(mocks.MockPageService)),
		handler.NewHealthHandler(),
		metricsH,
	)
	return r, orderSvc
}

func TestSetup_PublicRoutes(t *testing.T) {
	r, _ := setup(t)

	for _, path := range []string{"/", "/health", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestSetup_QuoteRoute(t *testing.T) {
	r, orderSvc := setup(t)

	orderSvc.On("Quote", mock.Anything, mock.Anything).Return(&domain.PriceQuote{GrandTotal: 26}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(`{"pages":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetup_BodyLimit(t *testing.T) {
	r, orderSvc := setup(t)

	w := httptest.NewRecorder()
	big := strings.Repeat("x", 3<<20)
	req := httptest.NewRequest(http.MethodPost, "/api/print-request",
		strings.NewReader("--b\r\nContent-Disposition: form-data; name=\"files\"; filename=\"a.pdf\"\r\n\r\n"+big+"\r\n--b--\r\n"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=b")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	orderSvc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSetup_UnknownRoute(t *testing.T) {
	r, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/files", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
