// Package kv stores submissions as JSON documents in a domain.KVStore.
//
// The store has no secondary index, so List and FindByHash enumerate every key under
// domain.SubmissionKeyPrefix and fetch each value independently. Cost is O(n) store reads
// and the result is not a snapshot: writes that land during the scan may or may not be
// observed.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"conferenceassistant/internal/domain"
)

type submissionRepository struct {
	store  domain.KVStore
	logger *slog.Logger
}

// NewSubmissionRepository returns a domain.SubmissionRepository over store.
func NewSubmissionRepository(store domain.KVStore, logger *slog.Logger) domain.SubmissionRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &submissionRepository{store: store, logger: logger}
}

func (r *submissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	return r.put(ctx, s)
}

func (r *submissionRepository) Update(ctx context.Context, s *domain.Submission) error {
	return r.put(ctx, s)
}

func (r *submissionRepository) put(ctx context.Context, s *domain.Submission) error {
	if s == nil || s.SubmissionID == "" {
		return fmt.Errorf("submission id is required")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	return r.store.Put(ctx, s.Key(), string(raw))
}

func (r *submissionRepository) GetByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	raw, ok, err := r.store.Get(ctx, domain.SubmissionKey(submissionID))
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, domain.ErrNotFound
	}
	var s *domain.Submission
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode submission %s: %w", submissionID, err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *submissionRepository) List(ctx context.Context) ([]*domain.Submission, error) {
	var out []*domain.Submission
	err := r.scan(ctx, func(s *domain.Submission) bool {
		out = append(out, s)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *submissionRepository) FindByHash(ctx context.Context, secretHash string) (*domain.Submission, error) {
	var found *domain.Submission
	err := r.scan(ctx, func(s *domain.Submission) bool {
		if s.SecretHash == secretHash {
			found = s
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

// scan visits submissions in key order until fn returns false. Missing, empty, null and
// undecodable values are skipped.
func (r *submissionRepository) scan(ctx context.Context, fn func(*domain.Submission) bool) error {
	keys, err := r.store.List(ctx, domain.SubmissionKeyPrefix)
	if err != nil {
		return fmt.Errorf("list keys: %w", err)
	}
	for _, key := range keys {
		raw, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		if !ok || raw == "" {
			continue
		}
		var s *domain.Submission
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			r.logger.WarnContext(ctx, "skipping undecodable submission", "key", key, "err", err)
			continue
		}
		if s == nil {
			continue
		}
		if !fn(s) {
			return nil
		}
	}
	return nil
}
