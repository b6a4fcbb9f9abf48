package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"already normalized", "a@b.com", "a@b.com"},
		{"uppercase", "USER@Example.COM", "user@example.com"},
		{"surrounding whitespace", "  a@b.com \t", "a@b.com"},
		{"mixed", " User@B.Com ", "user@b.com"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.email))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "a@b.com", false},
		{"empty", "", true},
		{"no at sign", "not-an-email", false},
		{"too long", strings.Repeat("a", MaxEmailLen) + "@b.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("x"))
	assert.Error(t, ValidatePassword(""))
}
