// Package store is the authoritative in-process state: resumes, test
// sessions, results, and the last computed recommendations. An optional
// document-store mirror receives best-effort copies; a mirror failure is
// logged and swallowed, never surfaced.
package store

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/quantumcareers/backend/pkg/model"
)

// Mirror is the optional secondary persistence target. Implementations must
// treat every call as best-effort durability, not a source of truth.
type Mirror interface {
	UpsertResume(ctx context.Context, analysis model.ResumeAnalysis) error
	UpsertRecommendations(ctx context.Context, userID string, recs []model.JobRecommendation) error
	InsertSession(ctx context.Context, session model.TestSession) error
	SetSessionStatus(ctx context.Context, sessionID string, status model.SessionStatus) error
	InsertResult(ctx context.Context, result model.TestResult) error
	FindResume(ctx context.Context, userID string) (*model.ResumeAnalysis, error)
	FindResults(ctx context.Context, userID string) ([]model.TestResult, error)
}

// Store keeps all state in memory, guarded by a single lock. Individual
// operations are safe under concurrent requests; racing writes for the same
// key keep last-write-wins semantics.
type Store struct {
	mu              sync.RWMutex
	resumes         map[string]model.ResumeAnalysis
	sessions        map[string]model.TestSession
	results         map[string]model.TestResult
	recommendations map[string][]model.JobRecommendation

	mirror Mirror // nil when no document store is configured
	log    *zap.Logger
}

func New(mirror Mirror, log *zap.Logger) *Store {
	return &Store{
		resumes:         make(map[string]model.ResumeAnalysis),
		sessions:        make(map[string]model.TestSession),
		results:         make(map[string]model.TestResult),
		recommendations: make(map[string][]model.JobRecommendation),
		mirror:          mirror,
		log:             log,
	}
}

// SaveResume stores the latest analysis for a user, replacing any prior one.
func (s *Store) SaveResume(ctx context.Context, analysis model.ResumeAnalysis) {
	s.mu.Lock()
	s.resumes[analysis.UserID] = analysis
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.UpsertResume(ctx, analysis); err != nil {
			s.log.Sugar().Warnw("mirror resume upsert failed", "user_id", analysis.UserID, "err", err)
		}
	}
}

// Resume returns the analysis for a user. On a memory miss it consults the
// mirror and caches a hit.
func (s *Store) Resume(ctx context.Context, userID string) (model.ResumeAnalysis, bool) {
	s.mu.RLock()
	analysis, ok := s.resumes[userID]
	s.mu.RUnlock()
	if ok {
		return analysis, true
	}

	if s.mirror == nil {
		return model.ResumeAnalysis{}, false
	}
	found, err := s.mirror.FindResume(ctx, userID)
	if err != nil {
		s.log.Sugar().Warnw("mirror resume lookup failed", "user_id", userID, "err", err)
		return model.ResumeAnalysis{}, false
	}
	if found == nil {
		return model.ResumeAnalysis{}, false
	}

	s.mu.Lock()
	s.resumes[userID] = *found
	s.mu.Unlock()
	return *found, true
}

// SaveRecommendations caches the last computed recommendation list.
func (s *Store) SaveRecommendations(ctx context.Context, userID string, recs []model.JobRecommendation) {
	s.mu.Lock()
	s.recommendations[userID] = recs
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.UpsertRecommendations(ctx, userID, recs); err != nil {
			s.log.Sugar().Warnw("mirror recommendations upsert failed", "user_id", userID, "err", err)
		}
	}
}

// Recommendations returns the cached recommendation list, which may be empty.
func (s *Store) Recommendations(userID string) []model.JobRecommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recommendations[userID]
}

// SaveSession stores a new test session.
func (s *Store) SaveSession(ctx context.Context, session model.TestSession) {
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.InsertSession(ctx, session); err != nil {
			s.log.Sugar().Warnw("mirror session insert failed", "session_id", session.ID, "err", err)
		}
	}
}

// Session returns the session with the given id.
func (s *Store) Session(sessionID string) (model.TestSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

// SetSessionStatus records a session status transition.
func (s *Store) SetSessionStatus(ctx context.Context, sessionID string, status model.SessionStatus) {
	s.mu.Lock()
	if session, ok := s.sessions[sessionID]; ok {
		session.Status = status
		s.sessions[sessionID] = session
	}
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.SetSessionStatus(ctx, sessionID, status); err != nil {
			s.log.Sugar().Warnw("mirror session update failed", "session_id", sessionID, "err", err)
		}
	}
}

// SaveResult stores the graded result for a session.
func (s *Store) SaveResult(ctx context.Context, result model.TestResult) {
	s.mu.Lock()
	s.results[result.SessionID] = result
	s.mu.Unlock()

	if s.mirror != nil {
		if err := s.mirror.InsertResult(ctx, result); err != nil {
			s.log.Sugar().Warnw("mirror result insert failed", "session_id", result.SessionID, "err", err)
		}
	}
}

// ResultsByUser returns a user's results sorted newest-first. On an empty
// memory hit it consults the mirror and caches what it finds.
func (s *Store) ResultsByUser(ctx context.Context, userID string) []model.TestResult {
	s.mu.RLock()
	var results []model.TestResult
	for _, r := range s.results {
		if r.UserID == userID {
			results = append(results, r)
		}
	}
	s.mu.RUnlock()

	if len(results) == 0 && s.mirror != nil {
		found, err := s.mirror.FindResults(ctx, userID)
		if err != nil {
			s.log.Sugar().Warnw("mirror results lookup failed", "user_id", userID, "err", err)
		} else if len(found) > 0 {
			s.mu.Lock()
			for _, r := range found {
				s.results[r.SessionID] = r
			}
			s.mu.Unlock()
			results = found
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
	return results
}
