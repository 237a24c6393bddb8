package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/preptalk/internal/bank"
	"github.com/abhisek/preptalk/internal/evaluate"
	"github.com/abhisek/preptalk/internal/questiongen"
)

type stubGenerator struct {
	calls int
	err   error
	queue []*questiongen.Question
}

func (s *stubGenerator) Generate(_ context.Context, _ questiongen.GenerateInput) (*questiongen.Question, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if len(s.queue) == 0 {
		return nil, errors.New("stub drained")
	}
	q := s.queue[0]
	s.queue = s.queue[1:]
	return q, nil
}

type stubEvaluator struct {
	calls int
	err   error
	score float64
}

func (s *stubEvaluator) Evaluate(_ context.Context, _, _ string, _ evaluate.Context) (*evaluate.Evaluation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &evaluate.Evaluation{
		Score:        s.score,
		Assessment:   "stub",
		Mistakes:     []string{},
		Improvements: []string{},
	}, nil
}

type stubAssessor struct {
	err    error
	result *evaluate.FinalAssessment
}

func (s *stubAssessor) Assess(_ context.Context, _ evaluate.SessionSummary) (*evaluate.FinalAssessment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func roleParams() Params {
	return Params{
		CandidateName: "Sam",
		Roles:         []string{"Software Developer"},
		Mode:          ModeRoleBased,
	}
}

func TestNewRejectsInvalidParams(t *testing.T) {
	var confErr *ConfigurationError

	_, err := New(Params{CandidateName: "Sam", Mode: ModeRoleBased}, Collaborators{})
	if !errors.As(err, &confErr) {
		t.Errorf("empty roles: err = %v, want ConfigurationError", err)
	}

	_, err = New(Params{Roles: []string{"r"}, Mode: ModeRoleBased}, Collaborators{})
	if !errors.As(err, &confErr) {
		t.Errorf("missing name: err = %v, want ConfigurationError", err)
	}

	_, err = New(Params{CandidateName: "Sam", Roles: []string{"r"}, Mode: ModeJobDescription}, Collaborators{})
	if !errors.As(err, &confErr) {
		t.Errorf("JD mode without JD: err = %v, want ConfigurationError", err)
	}
}

func TestStartGreeting(t *testing.T) {
	p := roleParams()
	p.Company = "Acme"
	sess, err := New(p, Collaborators{})
	if err != nil {
		t.Fatal(err)
	}

	g := sess.Start(context.Background())
	want := "Welcome Sam! Starting Role-Based interview for Software Developer at Acme."
	if g.Message != want {
		t.Errorf("message = %q, want %q", g.Message, want)
	}
	if g.JDParsed {
		t.Error("JDParsed true in role mode")
	}
}

func TestOfflineSessionCountInvariant(t *testing.T) {
	sess, err := New(roleParams(), Collaborators{})
	if err != nil {
		t.Fatal(err)
	}
	sess.Start(context.Background())

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		q := sess.NextQuestion(ctx)
		if q.Number != i {
			t.Errorf("question number = %d, want %d", q.Number, i)
		}
		rec := sess.SubmitAnswer(ctx, "an answer touching the question topic")
		if rec == nil {
			t.Fatal("SubmitAnswer returned nil")
		}
		if len(sess.History()) != i {
			t.Errorf("history length = %d, want %d", len(sess.History()), i)
		}
	}
}

func TestOfflineEmptyAnswerScoresZero(t *testing.T) {
	sess, err := New(roleParams(), Collaborators{})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	sess.Start(ctx)
	sess.NextQuestion(ctx)

	rec := sess.SubmitAnswer(ctx, "")
	if rec.Score != 0 {
		t.Errorf("score = %v, want 0", rec.Score)
	}
	if rec.Evaluation.Mistakes == nil || rec.Evaluation.Improvements == nil {
		t.Error("nil slices in history record")
	}
}

func TestOfflineFirstQuestionIsTechnical(t *testing.T) {
	sess, err := New(roleParams(), Collaborators{})
	if err != nil {
		t.Fatal(err)
	}
	q := sess.NextQuestion(context.Background())
	if q.Category != bank.CategoryTechnical {
		t.Errorf("first offline question category = %q, want Technical", q.Category)
	}
}

func TestBreakerTripsOnGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("backend down")}
	eval := &stubEvaluator{score: 7}
	sess, err := New(roleParams(), Collaborators{Generator: gen, Evaluator: eval})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	sess.Start(ctx)

	q := sess.NextQuestion(ctx)
	if q == nil || q.Question == "" {
		t.Fatal("fallback did not produce a question")
	}
	if sess.RemoteAvailable() {
		t.Error("breaker still closed after remote failure")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}

	// Breaker is sticky: no further remote calls on either path.
	sess.SubmitAnswer(ctx, "some answer")
	sess.NextQuestion(ctx)
	sess.SubmitAnswer(ctx, "another answer")
	if gen.calls != 1 {
		t.Errorf("generator called again after trip: %d calls", gen.calls)
	}
	if eval.calls != 0 {
		t.Errorf("evaluator called after trip: %d calls", eval.calls)
	}
}

func TestBreakerTripsOnEvaluatorFailure(t *testing.T) {
	gen := &stubGenerator{queue: []*questiongen.Question{
		{Text: "remote q1", Category: bank.CategoryTechnical, Difficulty: questiongen.DifficultyMedium},
	}}
	eval := &stubEvaluator{err: errors.New("eval down")}
	sess, err := New(roleParams(), Collaborators{Generator: gen, Evaluator: eval})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	sess.Start(ctx)

	sess.NextQuestion(ctx)
	rec := sess.SubmitAnswer(ctx, "an answer")
	if rec == nil {
		t.Fatal("SubmitAnswer returned nil")
	}
	// Remote question is not in the bank: neutral fallback score.
	if rec.Score != 5.0 {
		t.Errorf("score = %v, want neutral 5.0", rec.Score)
	}
	if sess.RemoteAvailable() {
		t.Error("breaker still closed after evaluator failure")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1 (before the trip)", gen.calls)
	}

	sess.NextQuestion(ctx)
	if gen.calls != 1 {
		t.Error("generator called after breaker trip")
	}
}

func TestRemoteHappyPath(t *testing.T) {
	gen := &stubGenerator{queue: []*questiongen.Question{
		{Text: "remote q1", Category: bank.CategoryScenario, Difficulty: questiongen.DifficultyHard, Reasoning: "probe depth"},
	}}
	eval := &stubEvaluator{score: 8.5}
	sess, err := New(roleParams(), Collaborators{Generator: gen, Evaluator: eval})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	sess.Start(ctx)

	q := sess.NextQuestion(ctx)
	if q.Question != "remote q1" || q.Category != bank.CategoryScenario || q.Reasoning == "" {
		t.Errorf("payload = %+v", q)
	}

	rec := sess.SubmitAnswer(ctx, "a strong answer")
	if rec.Score != 8.5 {
		t.Errorf("score = %v", rec.Score)
	}
	if !sess.RemoteAvailable() {
		t.Error("breaker tripped on the happy path")
	}
}

func TestNoBankRepeatsUntilExhaustion(t *testing.T) {
	small := bank.New([]bank.Entry{
		{Role: "r", Question: "q one", Category: bank.CategoryTechnical, IdealAnswer: "a", Keywords: []string{"k"}},
		{Role: "r", Question: "q two", Category: bank.CategoryHR, IdealAnswer: "a", Keywords: []string{"k"}},
	})
	p := roleParams()
	p.Roles = []string{"r"}
	sess, err := New(p, Collaborators{Bank: small})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	sess.Start(ctx)

	first := sess.NextQuestion(ctx).Question
	sess.SubmitAnswer(ctx, "x")
	second := sess.NextQuestion(ctx).Question
	sess.SubmitAnswer(ctx, "x")

	if first == second {
		t.Fatalf("question repeated before exhaustion: %q", first)
	}

	// Bank exhausted: repeats become legal, the session keeps going.
	third := sess.NextQuestion(ctx).Question
	if third == "" {
		t.Fatal("no question after exhaustion reset")
	}
	if len(sess.History()) != 2 {
		t.Errorf("history = %d answers, want 2", len(sess.History()))
	}
}

func TestHistoryRecordCarriesDifficulty(t *testing.T) {
	gen := &stubGenerator{queue: []*questiongen.Question{
		{Text: "remote q1", Category: bank.CategoryScenario, Difficulty: questiongen.DifficultyHard},
	}}
	eval := &stubEvaluator{score: 8}
	sess, err := New(roleParams(), Collaborators{Generator: gen, Evaluator: eval})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	sess.Start(ctx)
	sess.NextQuestion(ctx)

	rec := sess.SubmitAnswer(ctx, "an answer")
	if rec.Difficulty != questiongen.DifficultyHard {
		t.Errorf("difficulty = %q, want %q", rec.Difficulty, questiongen.DifficultyHard)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if string(fields["difficulty"]) != `"hard"` {
		t.Errorf("difficulty key = %s, want \"hard\"", fields["difficulty"])
	}

	var evalFields map[string]json.RawMessage
	if err := json.Unmarshal(fields["evaluation"], &evalFields); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"score", "interviewer_assessment", "specific_mistakes", "how_to_improve"} {
		if _, ok := evalFields[key]; !ok {
			t.Errorf("evaluation missing %q key in %s", key, fields["evaluation"])
		}
	}
	for _, key := range []string{"Score", "Assessment", "MentorGuidance"} {
		if _, ok := evalFields[key]; ok {
			t.Errorf("evaluation serialized Go-style %q key", key)
		}
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	sess, err := New(roleParams(), Collaborators{})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	sess.Start(ctx)
	sess.NextQuestion(ctx)
	sess.SubmitAnswer(ctx, "an answer")

	h := sess.History()
	h[0].Answer = "tampered"
	h[0].Score = 99

	if got := sess.History()[0]; got.Answer == "tampered" || got.Score == 99 {
		t.Error("mutating the returned history changed session state")
	}
}

func TestSubmitWithoutQuestion(t *testing.T) {
	sess, err := New(roleParams(), Collaborators{})
	if err != nil {
		t.Fatal(err)
	}
	if rec := sess.SubmitAnswer(context.Background(), "answer"); rec != nil {
		t.Error("SubmitAnswer before NextQuestion should return nil")
	}
}
