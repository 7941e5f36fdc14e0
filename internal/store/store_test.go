package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/quantumcareers/backend/pkg/model"
)

// fakeMirror records writes and serves canned reads.
type fakeMirror struct {
	resumes     map[string]model.ResumeAnalysis
	results     map[string][]model.TestResult
	failWrites  bool
	resumeGets  int
	resultGets  int
	statusCalls []model.SessionStatus
}

func newFakeMirror() *fakeMirror {
	return &fakeMirror{
		resumes: make(map[string]model.ResumeAnalysis),
		results: make(map[string][]model.TestResult),
	}
}

func (f *fakeMirror) writeErr() error {
	if f.failWrites {
		return errors.New("mirror down")
	}
	return nil
}

func (f *fakeMirror) UpsertResume(_ context.Context, a model.ResumeAnalysis) error {
	if err := f.writeErr(); err != nil {
		return err
	}
	f.resumes[a.UserID] = a
	return nil
}

func (f *fakeMirror) UpsertRecommendations(_ context.Context, _ string, _ []model.JobRecommendation) error {
	return f.writeErr()
}

func (f *fakeMirror) InsertSession(_ context.Context, _ model.TestSession) error {
	return f.writeErr()
}

func (f *fakeMirror) SetSessionStatus(_ context.Context, _ string, status model.SessionStatus) error {
	f.statusCalls = append(f.statusCalls, status)
	return f.writeErr()
}

func (f *fakeMirror) InsertResult(_ context.Context, _ model.TestResult) error {
	return f.writeErr()
}

func (f *fakeMirror) FindResume(_ context.Context, userID string) (*model.ResumeAnalysis, error) {
	f.resumeGets++
	if a, ok := f.resumes[userID]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeMirror) FindResults(_ context.Context, userID string) ([]model.TestResult, error) {
	f.resultGets++
	return f.results[userID], nil
}

func analysis(userID string, score float64) model.ResumeAnalysis {
	return model.ResumeAnalysis{
		ID:            userID + "-analysis",
		UserID:        userID,
		TechStacks:    []string{"Python"},
		StrengthScore: score,
		Timestamp:     time.Now().UTC(),
	}
}

func TestResumeOverwrite(t *testing.T) {
	s := New(nil, zap.NewNop())
	ctx := context.Background()

	s.SaveResume(ctx, analysis("u1", 3))
	s.SaveResume(ctx, analysis("u1", 7))

	got, ok := s.Resume(ctx, "u1")
	if !ok {
		t.Fatal("resume not found")
	}
	if got.StrengthScore != 7 {
		t.Fatalf("re-upload did not replace: score = %v", got.StrengthScore)
	}
}

func TestResumeMissWithoutMirror(t *testing.T) {
	s := New(nil, zap.NewNop())
	if _, ok := s.Resume(context.Background(), "nobody"); ok {
		t.Fatal("found a resume that was never stored")
	}
}

func TestResumeMirrorFallbackPopulatesCache(t *testing.T) {
	mirror := newFakeMirror()
	mirror.resumes["u1"] = analysis("u1", 5)

	s := New(mirror, zap.NewNop())
	ctx := context.Background()

	got, ok := s.Resume(ctx, "u1")
	if !ok || got.StrengthScore != 5 {
		t.Fatalf("mirror fallback failed: ok=%v got=%+v", ok, got)
	}
	if mirror.resumeGets != 1 {
		t.Fatalf("mirror consulted %d times, want 1", mirror.resumeGets)
	}

	// Second read must come from the populated cache.
	if _, ok := s.Resume(ctx, "u1"); !ok {
		t.Fatal("cached resume missing")
	}
	if mirror.resumeGets != 1 {
		t.Fatalf("mirror consulted again after cache fill: %d", mirror.resumeGets)
	}
}

func TestMirrorWriteFailureSwallowed(t *testing.T) {
	mirror := newFakeMirror()
	mirror.failWrites = true

	s := New(mirror, zap.NewNop())
	ctx := context.Background()

	// None of these may panic or surface an error; memory stays
	// authoritative.
	s.SaveResume(ctx, analysis("u1", 4))
	s.SaveRecommendations(ctx, "u1", []model.JobRecommendation{{JobID: "qjob1"}})
	s.SaveSession(ctx, model.TestSession{ID: "s1", UserID: "u1", Status: model.SessionActive})
	s.SetSessionStatus(ctx, "s1", model.SessionCompleted)
	s.SaveResult(ctx, model.TestResult{SessionID: "s1", UserID: "u1"})

	if _, ok := s.Resume(ctx, "u1"); !ok {
		t.Fatal("resume lost after mirror failure")
	}
	if sess, ok := s.Session("s1"); !ok || sess.Status != model.SessionCompleted {
		t.Fatalf("session state lost: %+v", sess)
	}
	if len(s.ResultsByUser(ctx, "u1")) != 1 {
		t.Fatal("result lost after mirror failure")
	}
}

func TestSessionStatusTransition(t *testing.T) {
	s := New(nil, zap.NewNop())
	ctx := context.Background()

	s.SaveSession(ctx, model.TestSession{ID: "s1", Status: model.SessionActive})
	s.SetSessionStatus(ctx, "s1", model.SessionCompleted)

	sess, ok := s.Session("s1")
	if !ok || sess.Status != model.SessionCompleted {
		t.Fatalf("session = %+v", sess)
	}
}

func TestResultsByUserSortedNewestFirst(t *testing.T) {
	s := New(nil, zap.NewNop())
	ctx := context.Background()
	now := time.Now().UTC()

	s.SaveResult(ctx, model.TestResult{SessionID: "s1", UserID: "u1", TotalScore: 10, Timestamp: now.Add(-2 * time.Hour)})
	s.SaveResult(ctx, model.TestResult{SessionID: "s2", UserID: "u1", TotalScore: 30, Timestamp: now})
	s.SaveResult(ctx, model.TestResult{SessionID: "s3", UserID: "u1", TotalScore: 20, Timestamp: now.Add(-time.Hour)})
	s.SaveResult(ctx, model.TestResult{SessionID: "s4", UserID: "other", TotalScore: 99, Timestamp: now})

	results := s.ResultsByUser(ctx, "u1")
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, want := range []float64{30, 20, 10} {
		if results[i].TotalScore != want {
			t.Fatalf("results[%d].TotalScore = %v, want %v", i, results[i].TotalScore, want)
		}
	}
}

func TestResultsMirrorFallback(t *testing.T) {
	mirror := newFakeMirror()
	mirror.results["u1"] = []model.TestResult{
		{SessionID: "s1", UserID: "u1", TotalScore: 42, Timestamp: time.Now().UTC()},
	}

	s := New(mirror, zap.NewNop())
	ctx := context.Background()

	results := s.ResultsByUser(ctx, "u1")
	if len(results) != 1 || results[0].TotalScore != 42 {
		t.Fatalf("mirror fallback: %+v", results)
	}

	// The fetched results are cached; the mirror is not consulted again.
	s.ResultsByUser(ctx, "u1")
	if mirror.resultGets != 1 {
		t.Fatalf("mirror consulted %d times, want 1", mirror.resultGets)
	}
}

func TestRecommendationsCache(t *testing.T) {
	s := New(nil, zap.NewNop())
	ctx := context.Background()

	if got := s.Recommendations("u1"); len(got) != 0 {
		t.Fatalf("unexpected cached recs: %+v", got)
	}
	s.SaveRecommendations(ctx, "u1", []model.JobRecommendation{{JobID: "qjob1"}, {JobID: "qjob2"}})
	if got := s.Recommendations("u1"); len(got) != 2 {
		t.Fatalf("got %d recs, want 2", len(got))
	}
}
