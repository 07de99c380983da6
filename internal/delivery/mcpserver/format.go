package mcpserver

import (
	"fmt"
	"strings"

	"conferenceassistant/internal/domain"
)

const (
	msgMissingIdentifier   = "Please provide either a submission ID or email hash."
	msgNoSubmissionForID   = "No submission found with the provided ID."
	msgNoSubmissionForHash = "No submission found with the provided email hash."
	msgNoSubmissionsByHash = "No submissions found for the provided email hash."
	msgNoSubmissions       = "No talk submissions found."
)

// submittedDateLayout renders dates as month/day/year without padding.
const submittedDateLayout = "1/2/2006"

func formatSubmitted(s *domain.Submission) string {
	return fmt.Sprintf("Thank you for your submission, %s! Your talk \"%s\" has been submitted for the following tracks: %s. "+
		"We'll review it and get back to you at %s.\n\n"+
		"Your submission ID is: %s\nYour email hash is: %s - you can use either to list or edit your submission.",
		s.SpeakerName, s.TalkTitle, strings.Join(s.Tracks, ", "), s.Email, s.SubmissionID, s.SecretHash)
}

func formatEdited(s *domain.Submission, hashChanged bool) string {
	text := fmt.Sprintf("Your submission has been updated successfully!\n\nUpdated details:\nSpeaker: %s\nEmail: %s\nTitle: %s\nTracks: %s",
		s.SpeakerName, s.Email, s.TalkTitle, strings.Join(s.Tracks, ", "))
	if hashChanged {
		text += fmt.Sprintf("\n\nYour email changed, so your email hash is now: %s - use it or your submission ID to list or edit your submission.", s.SecretHash)
	}
	return text
}

func formatList(subs []*domain.Submission, filtered bool) string {
	if len(subs) == 0 {
		if filtered {
			return msgNoSubmissionsByHash
		}
		return msgNoSubmissions
	}
	entries := make([]string, len(subs))
	for i, s := range subs {
		entries[i] = formatListEntry(s)
	}
	return fmt.Sprintf("Found %d talk submission(s):\n\n%s", len(subs), strings.Join(entries, "\n"))
}

func formatListEntry(s *domain.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Speaker: %s\n", s.SpeakerName)
	writeOptional(&b, "Title", s.SpeakerTitle)
	writeOptional(&b, "Company", s.SpeakerCompany)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Title: %s\n", s.TalkTitle)
	fmt.Fprintf(&b, "Tracks: %s\n", strings.Join(s.Tracks, ", "))
	fmt.Fprintf(&b, "Submitted: %s\n", s.SubmittedAt.UTC().Format(submittedDateLayout))
	fmt.Fprintf(&b, "Abstract: %s\n", s.Abstract)
	writeOptional(&b, "Speaker Bio", s.SpeakerBio)
	writeOptional(&b, "Review Comments", s.ReviewComments)
	b.WriteString("---\n")
	return b.String()
}

func writeOptional(b *strings.Builder, label string, v *string) {
	if v == nil || *v == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, *v)
}

func formatValidation(lead string, verr *domain.ValidationError) string {
	var b strings.Builder
	b.WriteString(lead)
	b.WriteString(" Please fix the following and try again:")
	for _, p := range verr.Problems {
		b.WriteString("\n- ")
		b.WriteString(p)
	}
	return b.String()
}
