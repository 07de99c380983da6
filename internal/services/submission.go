package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"conferenceassistant/internal/domain"
)

// MaxTracksPerSubmission is the number of tracks a speaker may pick for one talk.
const MaxTracksPerSubmission = 3

// ErrMissingIdentifier is returned by Edit when neither a submission ID nor an email hash is given.
var ErrMissingIdentifier = errors.New("submission id or email hash is required")

// TrackCatalog reports whether a track label belongs to the conference catalog.
type TrackCatalog interface {
	HasTrack(name string) bool
}

type submissionService struct {
	repo            domain.SubmissionRepository
	tracks          TrackCatalog
	ids             *IDGenerator
	email           domain.EmailService
	logger          *slog.Logger
	conferenceTitle string
	contextTimeout  time.Duration
	now             func() time.Time
}

// NewSubmissionService returns a SubmissionService backed by repo. email may be nil, in
// which case no confirmation email is sent.
func NewSubmissionService(repo domain.SubmissionRepository, tracks TrackCatalog, ids *IDGenerator, email domain.EmailService, logger *slog.Logger, conferenceTitle string, timeout time.Duration) domain.SubmissionService {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &submissionService{
		repo:            repo,
		tracks:          tracks,
		ids:             ids,
		email:           email,
		logger:          logger,
		conferenceTitle: conferenceTitle,
		contextTimeout:  timeout,
		now:             time.Now,
	}
}

func (s *submissionService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.contextTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.contextTimeout)
}

// Submit validates the proposal, stores it under a fresh ID and sends a best-effort
// confirmation email. There is no duplicate check and no read before the write.
func (s *submissionService) Submit(ctx context.Context, in domain.SubmitInput) (*domain.Submission, error) {
	if problems := s.validateSubmit(in); len(problems) > 0 {
		return nil, &domain.ValidationError{Problems: problems}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.ids.New()
	if err != nil {
		return nil, fmt.Errorf("generate submission id: %w", err)
	}
	sub := domain.NewSubmission(id, EmailHash(in.Email), in.SpeakerName, in.Email, in.TalkTitle, in.Abstract,
		append([]string(nil), in.Tracks...), s.now().UTC())
	sub.SpeakerTitle = cloneString(in.SpeakerTitle)
	sub.SpeakerCompany = cloneString(in.SpeakerCompany)
	sub.SpeakerPhotoURL = cloneString(in.SpeakerPhotoURL)
	sub.SpeakerBio = cloneString(in.SpeakerBio)
	sub.ReviewComments = cloneString(in.ReviewComments)

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}
	s.logger.InfoContext(ctx, "talk submitted", "submission_id", sub.SubmissionID, "tracks", len(sub.Tracks))

	s.sendConfirmation(ctx, sub)
	return sub, nil
}

func (s *submissionService) sendConfirmation(ctx context.Context, sub *domain.Submission) {
	if s.email == nil {
		return
	}
	err := s.email.SendSubmissionReceived(ctx, &domain.SubmissionReceivedEmailData{
		Email:           sub.Email,
		SpeakerName:     sub.SpeakerName,
		TalkTitle:       sub.TalkTitle,
		Tracks:          sub.Tracks,
		SubmissionID:    sub.SubmissionID,
		SecretHash:      sub.SecretHash,
		ConferenceTitle: s.conferenceTitle,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "submission_id", sub.SubmissionID, "err", err)
	}
}

// Edit locates a submission by ID, or by email hash when no ID is given, and merges the
// provided fields into it. Required fields keep their stored value when the input is
// empty; optional fields are overwritten by any provided value, including "".
// The write is last-writer-wins: concurrent edits of one record are not detected.
func (s *submissionService) Edit(ctx context.Context, in domain.EditInput) (*domain.Submission, bool, error) {
	if in.SubmissionID == "" && in.SecretHash == "" {
		return nil, false, ErrMissingIdentifier
	}
	if problems := s.validateEdit(in); len(problems) > 0 {
		return nil, false, &domain.ValidationError{Problems: problems}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		existing *domain.Submission
		err      error
	)
	if in.SubmissionID != "" {
		existing, err = s.repo.GetByID(ctx, in.SubmissionID)
	} else {
		existing, err = s.repo.FindByHash(ctx, in.SecretHash)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("load submission: %w", err)
	}

	updated := *existing
	updated.Tracks = append([]string(nil), existing.Tracks...)

	updated.SpeakerName = nonEmptyOr(in.SpeakerName, existing.SpeakerName)
	updated.TalkTitle = nonEmptyOr(in.TalkTitle, existing.TalkTitle)
	updated.Abstract = nonEmptyOr(in.Abstract, existing.Abstract)
	if len(in.Tracks) > 0 {
		updated.Tracks = append([]string(nil), in.Tracks...)
	}

	hashChanged := false
	if email := nonEmptyOr(in.Email, existing.Email); email != existing.Email {
		updated.Email = email
		updated.SecretHash = EmailHash(email)
		hashChanged = updated.SecretHash != existing.SecretHash
	}

	if in.SpeakerTitle != nil {
		updated.SpeakerTitle = cloneString(in.SpeakerTitle)
	}
	if in.SpeakerCompany != nil {
		updated.SpeakerCompany = cloneString(in.SpeakerCompany)
	}
	if in.SpeakerPhotoURL != nil {
		updated.SpeakerPhotoURL = cloneString(in.SpeakerPhotoURL)
	}
	if in.SpeakerBio != nil {
		updated.SpeakerBio = cloneString(in.SpeakerBio)
	}
	if in.ReviewComments != nil {
		updated.ReviewComments = cloneString(in.ReviewComments)
	}

	now := s.now().UTC()
	updated.UpdatedAt = &now

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, false, fmt.Errorf("store submission: %w", err)
	}
	s.logger.InfoContext(ctx, "talk edited", "submission_id", updated.SubmissionID, "hash_changed", hashChanged)
	return &updated, hashChanged, nil
}

// List returns every stored submission, or only those whose email hash equals secretHash
// when it is non-empty. Cost is one store read per submission.
func (s *submissionService) List(ctx context.Context, secretHash string) ([]*domain.Submission, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if secretHash == "" {
		return all, nil
	}
	out := make([]*domain.Submission, 0, len(all))
	for _, sub := range all {
		if sub.SecretHash == secretHash {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *submissionService) validateSubmit(in domain.SubmitInput) []string {
	var problems []string
	if strings.TrimSpace(in.SpeakerName) == "" {
		problems = append(problems, "speakerName is required")
	}
	if !IsEmail(in.Email) {
		problems = append(problems, "email must be a valid email address")
	}
	if strings.TrimSpace(in.TalkTitle) == "" {
		problems = append(problems, "talkTitle is required")
	}
	if strings.TrimSpace(in.Abstract) == "" {
		problems = append(problems, "abstract is required")
	}
	problems = append(problems, s.validateTracks(in.Tracks)...)
	if in.SpeakerPhotoURL != nil && !IsHTTPURL(*in.SpeakerPhotoURL) {
		problems = append(problems, "speakerPhotoUrl must be a valid http(s) URL")
	}
	return problems
}

func (s *submissionService) validateEdit(in domain.EditInput) []string {
	var problems []string
	if in.Email != nil && *in.Email != "" && !IsEmail(*in.Email) {
		problems = append(problems, "email must be a valid email address")
	}
	if len(in.Tracks) > 0 {
		problems = append(problems, s.validateTracks(in.Tracks)...)
	}
	if in.SpeakerPhotoURL != nil && *in.SpeakerPhotoURL != "" && !IsHTTPURL(*in.SpeakerPhotoURL) {
		problems = append(problems, "speakerPhotoUrl must be a valid http(s) URL")
	}
	return problems
}

func (s *submissionService) validateTracks(tracks []string) []string {
	if len(tracks) == 0 {
		return []string{"at least one track is required"}
	}
	var problems []string
	if len(tracks) > MaxTracksPerSubmission {
		problems = append(problems, fmt.Sprintf("at most %d tracks may be selected", MaxTracksPerSubmission))
	}
	seen := make(map[string]struct{}, len(tracks))
	for _, t := range tracks {
		if _, dup := seen[t]; dup {
			problems = append(problems, fmt.Sprintf("track %q is listed more than once", t))
			continue
		}
		seen[t] = struct{}{}
		if s.tracks != nil && !s.tracks.HasTrack(t) {
			problems = append(problems, fmt.Sprintf("track %q is not a conference track", t))
		}
	}
	return problems
}

// IsEmail reports whether s is a bare address with a dotted domain, e.g. jane@example.com.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	_, host, ok := strings.Cut(s, "@")
	return ok && strings.Contains(strings.Trim(host, "."), ".")
}

// IsHTTPURL reports whether s is an absolute http or https URL with a host.
func IsHTTPURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func nonEmptyOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
