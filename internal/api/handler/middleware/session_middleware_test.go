package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware(time.Hour))
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetSessionID(c))
	})
	return router
}

func TestSessionMiddleware_MintsSession(t *testing.T) {
	router := newSessionRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(w.Body.String())
	require.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(SessionHeader))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, w.Body.String(), cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_Sources(t *testing.T) {
	headerID := uuid.NewString()
	cookieID := uuid.NewString()

	tests := []struct {
		name   string
		header string
		cookie string
		want   string
	}{
		{"header", headerID, "", headerID},
		{"cookie", "", cookieID, cookieID},
		{"header wins over cookie", headerID, cookieID, headerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(SessionHeader, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			newSessionRouter().ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, tt.want, w.Header().Get(SessionHeader))
		})
	}
}

func TestSessionMiddleware_RejectsInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(SessionHeader, "../../etc/passwd")

	w := httptest.NewRecorder()
	newSessionRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid session id","kind":"validation"}`, w.Body.String())
}
