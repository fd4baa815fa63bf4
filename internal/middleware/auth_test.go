package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_dream_keep/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: testSecret}}

	var gotUserID uint
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		gotUserID = id
		w.WriteHeader(http.StatusNoContent)
	})
	handler := JWTAuthMiddleware(cfg)(next)

	exp := time.Now().Add(time.Hour).Unix()
	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUserID uint
	}{
		{
			name:           "正常系: 有効なトークン",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "42", "exp": exp}),
			expectedStatus: http.StatusNoContent,
			expectedUserID: 42,
		},
		{
			name:           "異常系: ヘッダーなし",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: Bearer 以外",
			header:         "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 署名キーが違う",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "42", "exp": exp}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: 期限切れ",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "42", "exp": time.Now().Add(-time.Minute).Unix()}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: sub が数値でない",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "alice", "exp": exp}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "異常系: sub なし",
			header:         "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"exp": exp}),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gotUserID = 0
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tc.expectedUserID, gotUserID)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserIDFromContext(req.Context())
	assert.Error(t, err)
}
