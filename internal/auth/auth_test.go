package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticTokenValidate(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		input   string
		wantErr error
	}{
		{name: "empty token denied", stored: "", input: "abc", wantErr: ErrUnauthorized},
		{name: "mismatched token denied", stored: "abc", input: "xyz", wantErr: ErrUnauthorized},
		{name: "matching token accepted", stored: "abc", input: "abc", wantErr: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := (StaticToken{Token: tc.stored}).Validate(tc.input)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	token, ok = BearerToken("  bearer   xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)

	for _, h := range []string{"", "Basic abc", "Bearer", "Bearer   "} {
		_, ok := BearerToken(h)
		assert.False(t, ok, "header %q", h)
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(FuncValidator(func(token string) error {
		if token != "ok" {
			return ErrUnauthorized
		}
		return nil
	})))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for header, want := range map[string]int{
		"":          http.StatusUnauthorized,
		"Bearer no": http.StatusUnauthorized,
		"Bearer ok": http.StatusNoContent,
	} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, want, rr.Code, "header %q", header)
	}

	open := gin.New()
	open.Use(Middleware(nil))
	open.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	rr := httptest.NewRecorder()
	open.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestTokensAcceptsEveryConfiguredToken(t *testing.T) {
	assert.Nil(t, Tokens())
	assert.Nil(t, Tokens("", "  "))

	v := Tokens("current", "", "next")
	require.NotNil(t, v)
	assert.NoError(t, v.Validate("current"))
	assert.NoError(t, v.Validate("next"))
	assert.ErrorIs(t, v.Validate("retired"), ErrUnauthorized)
	assert.ErrorIs(t, v.Validate(""), ErrUnauthorized)
}
