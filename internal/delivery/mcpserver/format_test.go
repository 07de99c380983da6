package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"conferenceassistant/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestFormatListEntry(t *testing.T) {
	submitted := time.Date(2025, 3, 4, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  *domain.Submission
		want string
	}{
		{
			name: "required fields only",
			sub:  domain.NewSubmission("id-1", "h", "Ada", "ada@example.com", "Engines", "Notes.", []string{"Evals"}, submitted),
			want: "Speaker: Ada\nEmail: ada@example.com\nTitle: Engines\nTracks: Evals\nSubmitted: 3/4/2025\nAbstract: Notes.\n---\n",
		},
		{
			name: "all optional fields",
			sub: func() *domain.Submission {
				s := domain.NewSubmission("id-2", "h", "Ada", "ada@example.com", "Engines", "Notes.", []string{"Evals", "Voice"}, submitted)
				s.SpeakerTitle = strPtr("CTO")
				s.SpeakerCompany = strPtr("Analytical")
				s.SpeakerBio = strPtr("First programmer.")
				s.ReviewComments = strPtr("Please accept.")
				return s
			}(),
			want: "Speaker: Ada\nTitle: CTO\nCompany: Analytical\nEmail: ada@example.com\nTitle: Engines\n" +
				"Tracks: Evals, Voice\nSubmitted: 3/4/2025\nAbstract: Notes.\nSpeaker Bio: First programmer.\n" +
				"Review Comments: Please accept.\n---\n",
		},
		{
			name: "empty optional fields are omitted",
			sub: func() *domain.Submission {
				s := domain.NewSubmission("id-3", "h", "Ada", "ada@example.com", "Engines", "Notes.", []string{"Evals"}, submitted)
				s.SpeakerCompany = strPtr("")
				s.ReviewComments = strPtr("")
				return s
			}(),
			want: "Speaker: Ada\nEmail: ada@example.com\nTitle: Engines\nTracks: Evals\nSubmitted: 3/4/2025\nAbstract: Notes.\n---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatListEntry(tt.sub))
		})
	}
}

func TestFormatList(t *testing.T) {
	submitted := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	a := domain.NewSubmission("a", "h", "A", "a@x.io", "T1", "x", []string{"Evals"}, submitted)
	b := domain.NewSubmission("b", "h", "B", "b@x.io", "T2", "y", []string{"Voice"}, submitted)

	got := formatList([]*domain.Submission{a, b}, false)
	assert.Equal(t, "Found 2 talk submission(s):\n\n"+formatListEntry(a)+"\n"+formatListEntry(b), got)

	assert.Equal(t, "No talk submissions found.", formatList(nil, false))
	assert.Equal(t, "No submissions found for the provided email hash.", formatList(nil, true))
}

func TestFormatEdited(t *testing.T) {
	s := domain.NewSubmission("a", "newhash", "A", "a@x.io", "T1", "x", []string{"Evals", "Voice"}, time.Now())

	assert.Equal(t, "Your submission has been updated successfully!\n\nUpdated details:\nSpeaker: A\nEmail: a@x.io\nTitle: T1\nTracks: Evals, Voice",
		formatEdited(s, false))
	assert.Contains(t, formatEdited(s, true), "your email hash is now: newhash")
}

func TestFormatValidation(t *testing.T) {
	got := formatValidation("Your talk could not be submitted.", &domain.ValidationError{Problems: []string{"a", "b"}})
	assert.Equal(t, "Your talk could not be submitted. Please fix the following and try again:\n- a\n- b", got)
}
