package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailHash(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"foo@bar.com", "yoqpsq"},
		{"jane.doe@example.com", "knomue"},
		{"ab@x.io", "jv3bry"},
		{"speaker@ai.engineer", "166rsr"},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, EmailHash(tt.email))
		})
	}
}

func TestEmailHash_NormalizesCaseAndWhitespace(t *testing.T) {
	want := EmailHash("foo@bar.com")
	for _, variant := range []string{"Foo@Bar.com", "foo@bar.com ", "  FOO@BAR.COM\t"} {
		assert.Equal(t, want, EmailHash(variant), variant)
	}
}

func TestEmailHash_Deterministic(t *testing.T) {
	for _, email := range []string{"a@b.co", "very.long.local.part+tag@sub.example.org", "ünï@cödé.de"} {
		first := EmailHash(email)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, EmailHash(email))
		}
		assert.NotEmpty(t, first)
		assert.LessOrEqual(t, len(first), 8)
	}
}

// The probe only keeps the first and last three characters of the local part, so these
// addresses share a hash.
func TestEmailHash_KnownCollision(t *testing.T) {
	assert.Equal(t, EmailHash("abcxyz@example.com"), EmailHash("abc-middle-xyz@example.com"))
	assert.NotEqual(t, EmailHash("abcxyz@example.com"), EmailHash("abcxyz@example.org"))
}
