package domain

import (
	"context"
	"time"
)

// SubmissionKeyPrefix namespaces talk submissions in the key-value store.
const SubmissionKeyPrefix = "talk-"

// SubmissionKey returns the store key for the given submission ID.
func SubmissionKey(submissionID string) string {
	return SubmissionKeyPrefix + submissionID
}

// Submission is a talk proposal. JSON field names are the stored record format and must
// stay stable so existing store contents remain readable.
// swagger:model Submission
type Submission struct {
	SubmissionID    string     `json:"submissionId"`
	SecretHash      string     `json:"secretHash"`
	SpeakerName     string     `json:"speakerName"`
	Email           string     `json:"email"`
	TalkTitle       string     `json:"talkTitle"`
	Abstract        string     `json:"abstract"`
	Tracks          []string   `json:"tracks"`
	SpeakerTitle    *string    `json:"speakerTitle,omitempty"`
	SpeakerCompany  *string    `json:"speakerCompany,omitempty"`
	SpeakerPhotoURL *string    `json:"speakerPhotoUrl,omitempty"`
	SpeakerBio      *string    `json:"speakerBio,omitempty"`
	ReviewComments  *string    `json:"reviewComments,omitempty"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// NewSubmission returns a new Submission with the given identity and required fields.
func NewSubmission(submissionID, secretHash, speakerName, email, talkTitle, abstract string, tracks []string, submittedAt time.Time) *Submission {
	return &Submission{
		SubmissionID: submissionID,
		SecretHash:   secretHash,
		SpeakerName:  speakerName,
		Email:        email,
		TalkTitle:    talkTitle,
		Abstract:     abstract,
		Tracks:       tracks,
		SubmittedAt:  submittedAt,
	}
}

// Key returns the store key of the submission.
func (s *Submission) Key() string {
	return SubmissionKey(s.SubmissionID)
}

// SubmitInput holds the fields accepted when a speaker submits a talk.
type SubmitInput struct {
	SpeakerName     string
	Email           string
	TalkTitle       string
	Abstract        string
	Tracks          []string
	SpeakerTitle    *string
	SpeakerCompany  *string
	SpeakerPhotoURL *string
	SpeakerBio      *string
	ReviewComments  *string
}

// EditInput identifies a submission by ID or email hash and carries the fields to change.
// Nil pointers and empty slices mean "leave unchanged".
type EditInput struct {
	SubmissionID    string
	SecretHash      string
	SpeakerName     *string
	Email           *string
	TalkTitle       *string
	Abstract        *string
	Tracks          []string
	SpeakerTitle    *string
	SpeakerCompany  *string
	SpeakerPhotoURL *string
	SpeakerBio      *string
	ReviewComments  *string
}

// SubmissionRepository stores submissions. List and FindByHash are full scans over the
// submission namespace; an index-backed implementation can replace this one without
// changing callers.
type SubmissionRepository interface {
	Create(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, submissionID string) (*Submission, error)
	Update(ctx context.Context, s *Submission) error
	List(ctx context.Context) ([]*Submission, error)
	// FindByHash returns the first submission, in store key order, whose secret hash matches.
	FindByHash(ctx context.Context, secretHash string) (*Submission, error)
}

// SubmissionService defines the business logic for talk submissions.
type SubmissionService interface {
	Submit(ctx context.Context, in SubmitInput) (*Submission, error)
	Edit(ctx context.Context, in EditInput) (updated *Submission, hashChanged bool, err error)
	List(ctx context.Context, secretHash string) ([]*Submission, error)
}
