package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bandhan/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// chatRouter wires the chat routes with no database behind them; every case
// here must be rejected at the validation boundary before any store call.
func chatRouter(t *testing.T) (*gin.Engine, *middleware.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := middleware.NewTokenManager("test-secret", time.Hour)
	h := &Handler{Tokens: tokens}

	r := gin.New()
	auth := r.Group("/api", middleware.JWTAuth(tokens))
	auth.POST("/chat/send", h.SendMessage)
	auth.GET("/chat/history/:receiverId", h.GetHistory)
	return r, tokens
}

func authedRequest(t *testing.T, tokens *middleware.TokenManager, method, target, body string) *http.Request {
	t.Helper()
	token, err := tokens.Generate("64f1c2d9e4b0a1b2c3d4e5f6")
	assert.NoError(t, err)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestSendMessageMissingFields(t *testing.T) {
	router, tokens := chatRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"no message text", `{"senderId":"64f1c2d9e4b0a1b2c3d4e5f6","receiverId":"64f1c2d9e4b0a1b2c3d4e5a0"}`},
		{"no sender", `{"receiverId":"64f1c2d9e4b0a1b2c3d4e5a0","message":"hi"}`},
		{"no receiver", `{"senderId":"64f1c2d9e4b0a1b2c3d4e5f6","message":"hi"}`},
		{"empty message", `{"senderId":"64f1c2d9e4b0a1b2c3d4e5f6","receiverId":"64f1c2d9e4b0a1b2c3d4e5a0","message":""}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, authedRequest(t, tokens, http.MethodPost, "/api/chat/send", tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "Missing required fields")
		})
	}
}

func TestSendMessageRejectsMalformedIDs(t *testing.T) {
	router, tokens := chatRouter(t)

	w := httptest.NewRecorder()
	body := `{"senderId":"not-an-id","receiverId":"64f1c2d9e4b0a1b2c3d4e5a0","message":"hi"}`
	router.ServeHTTP(w, authedRequest(t, tokens, http.MethodPost, "/api/chat/send", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid sender ID")
}

func TestSendMessageRequiresAuth(t *testing.T) {
	router, _ := chatRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/send", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetHistoryRejectsMalformedCounterparty(t *testing.T) {
	router, tokens := chatRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, tokens, http.MethodGet, "/api/chat/history/xyz", ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid receiver ID")
}
