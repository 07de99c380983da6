package controllers

import (
	"strings"
	"time"

	"conferenceassistant/internal/domain"
)

// csvTimeLayout is RFC 3339 in UTC with millisecond precision.
const csvTimeLayout = "2006-01-02T15:04:05.000Z"

var csvHeader = []string{
	"Submission ID",
	"Speaker Name",
	"Speaker Title",
	"Speaker Company",
	"Email",
	"Talk Title",
	"Tracks",
	"Abstract",
	"Speaker Bio",
	"Review Comments",
	"Speaker Photo URL",
	"Submitted At",
	"Updated At",
}

// SubmissionsCSV renders submissions as CSV text. Every text column is wrapped in double
// quotes with embedded quotes doubled; the ID and timestamp columns are written bare.
// Lines are separated by "\n" and there is no trailing newline.
func SubmissionsCSV(subs []*domain.Submission) string {
	lines := make([]string, 0, len(subs)+1)
	lines = append(lines, strings.Join(csvHeader, ","))
	for _, s := range subs {
		updated := ""
		if s.UpdatedAt != nil {
			updated = formatCSVTime(*s.UpdatedAt)
		}
		row := []string{
			s.SubmissionID,
			quoteCSV(s.SpeakerName),
			quoteCSV(deref(s.SpeakerTitle)),
			quoteCSV(deref(s.SpeakerCompany)),
			quoteCSV(s.Email),
			quoteCSV(s.TalkTitle),
			quoteCSV(strings.Join(s.Tracks, ", ")),
			quoteCSV(s.Abstract),
			quoteCSV(deref(s.SpeakerBio)),
			quoteCSV(deref(s.ReviewComments)),
			quoteCSV(deref(s.SpeakerPhotoURL)),
			formatCSVTime(s.SubmittedAt),
			updated,
		}
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

func quoteCSV(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func formatCSVTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(csvTimeLayout)
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
