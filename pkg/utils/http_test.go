package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	want := uuid.New()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", want.String(), false},
		{"empty", "", true},
		{"numeric", "42", true},
		{"garbage", "not-a-uuid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			got, err := ParseIDParam(c, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
