package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "plain", content: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", content: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", content: `Sure! {"a":{"b":2}} Enjoy.`, want: `{"a":{"b":2}}`},
		{name: "no object", content: "nothing here", wantErr: true},
		{name: "reversed braces", content: "} {", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSON(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	require.NoError(t, ParseJSON(`{"a":1}`, &v))
	assert.Equal(t, 1, v.A)

	assert.Error(t, ParseJSON(`{"a":1} {"a":2}`, &v))
	assert.NoError(t, ParseJSON(QuoteJSONKeys(`{a: 3}`), &v))
	assert.Equal(t, 3, v.A)
}

func TestQuoteJSONKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare keys", raw: `{a: 1, b_2: "x"}`, want: `{"a": 1, "b_2": "x"}`},
		{name: "colon inside string value", raw: `{items: ["salt, pepper: to taste"]}`, want: `{"items": ["salt, pepper: to taste"]}`},
		{name: "escaped quote in string", raw: `{note: "say \"hi, x: y\"", n: 1}`, want: `{"note": "say \"hi, x: y\"", "n": 1}`},
		{name: "already quoted", raw: `{"a": {"b": 1}}`, want: `{"a": {"b": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteJSONKeys(tt.raw))
		})
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.NotContains(t, MaskSecret("gsk_abcdefghijklmnop"), "abcdefghijkl")
}

func TestErrors(t *testing.T) {
	err := fmt.Errorf("search: %w", ErrEmptyIngredients)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(ErrInternalError))

	wrapped := NewError("X", "wrapped", http.StatusTeapot, ErrQueueFull)
	assert.True(t, errors.Is(wrapped, ErrQueueFull))
	assert.Equal(t, ErrQueueFull.Error(), wrapped.Error())
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Request-ID", "abc")
	assert.Equal(t, "abc", RequestID(c))

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	id := RequestID(c)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}

func TestWriteCustomError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteCustomError(c, NewError("X", "no status", 0, nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"no status","code":"X"}`, w.Body.String())
}
