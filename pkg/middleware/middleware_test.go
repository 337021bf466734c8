package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelling/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.ConfigureJWT("middleware-test-secret", time.Hour)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID).(uuid.UUID).String(),
			"role":    c.GetString(ContextRole),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	w := doGet(newRouter(JWTAuthMiddleware()), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.NotEmpty(t, body.TraceID)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	w := doGet(newRouter(JWTAuthMiddleware()), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	id := uuid.New()
	token, err := utils.CreateToken(id, "ana@example.com", "Ana", "TOURIST")
	require.NoError(t, err)

	w := doGet(newRouter(JWTAuthMiddleware()), token)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["user_id"])
	assert.Equal(t, "TOURIST", body["role"])
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"listed role", "AGENCY", http.StatusOK},
		{"admin always passes", "ADMIN", http.StatusOK},
		{"other role", "TOURIST", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := utils.CreateToken(uuid.New(), "x@example.com", "X", tt.role)
			require.NoError(t, err)

			r := newRouter(JWTAuthMiddleware(), RoleMiddleware("AGENCY", "BUSINESS"))
			assert.Equal(t, tt.want, doGet(r, token).Code)
		})
	}
}

func TestTraceIDMiddleware_ReusesIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger(zap.NewNop()))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceHeader, incoming)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Body.String())
	assert.Equal(t, incoming, w.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(TraceHeader, "garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "garbage", w.Body.String())
}
