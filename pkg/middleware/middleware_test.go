package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/common/logger"
	"tripplanner/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(t *testing.T, issuer *utils.TokenIssuer) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger(logger.NewTestLogger(t)))
	r.GET("/admin", JWTAuthMiddleware(issuer), RoleMiddleware(utils.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("secret", time.Minute)
	adminToken, err := issuer.CreateToken("ops", utils.RoleAdmin)
	require.NoError(t, err)
	viewerToken, err := issuer.CreateToken("guest", "viewer")
	require.NoError(t, err)
	foreign, err := utils.NewTokenIssuer("other", time.Minute).CreateToken("ops", utils.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized},
		{"wrong role", "Bearer " + viewerToken, http.StatusForbidden},
		{"admin", "Bearer " + adminToken, http.StatusOK},
	}

	r := protectedRouter(t, issuer)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "ops", w.Body.String())
			}
		})
	}
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	minted := w.Header().Get(TraceIDHeader)
	assert.Len(t, minted, 36)
	assert.Equal(t, minted, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", w.Header().Get(TraceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "not a uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not a uuid", w.Header().Get(TraceIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
