// Package session runs one adaptive mock interview. A session starts
// with remote generation and evaluation when a provider is wired in,
// and degrades permanently to the local question bank and fallback
// evaluator the first time a remote call fails.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/preptalk/internal/bank"
	"github.com/abhisek/preptalk/internal/evaluate"
	"github.com/abhisek/preptalk/internal/jd"
	"github.com/abhisek/preptalk/internal/questiongen"
)

// Collaborators are the session's pluggable dependencies. Bank is
// required in effect (nil gets the built-in bank). The remote ones may
// all be nil, in which case the session runs fully offline.
type Collaborators struct {
	Bank      *bank.Bank
	Generator questiongen.Generator
	Evaluator evaluate.Evaluator
	Assessor  evaluate.Assessor
	JDParser  jd.Parser
	Logger    *zap.Logger
}

// AdaptiveSession is a single interview. It is owned and driven by one
// caller; methods must not be called concurrently.
type AdaptiveSession struct {
	id     string
	params Params

	bank      *bank.Bank
	generator questiongen.Generator
	evaluator evaluate.Evaluator
	assessor  evaluate.Assessor
	jdParser  jd.Parser
	fallback  evaluate.Evaluator
	log       *zap.Logger

	// remoteAvailable is a sticky breaker. Once false it stays
	// false for the rest of the session.
	remoteAvailable bool

	jdContext     *jd.Context
	startedAt     time.Time
	questionCount int
	current       *questiongen.Question
	asked         map[string]bool
	askedOrder    []string
	history       []AnsweredQuestion
}

// New creates a session. Invalid params return a ConfigurationError.
func New(params Params, c Collaborators) (*AdaptiveSession, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := c.Bank
	if b == nil {
		b = bank.Default()
	}
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &AdaptiveSession{
		id:              id,
		params:          params,
		bank:            b,
		generator:       c.Generator,
		evaluator:       c.Evaluator,
		assessor:        c.Assessor,
		jdParser:        c.JDParser,
		fallback:        evaluate.NewFallback(b),
		log:             log.With(zap.String("session_id", id)),
		remoteAvailable: c.Generator != nil && c.Evaluator != nil,
		asked:           make(map[string]bool),
	}, nil
}

// ID returns the session's unique identifier.
func (s *AdaptiveSession) ID() string { return s.id }

// RemoteAvailable reports whether the breaker is still closed.
func (s *AdaptiveSession) RemoteAvailable() bool { return s.remoteAvailable }

// History returns a copy of the answered questions so far.
func (s *AdaptiveSession) History() []AnsweredQuestion {
	out := make([]AnsweredQuestion, len(s.history))
	copy(out, s.history)
	return out
}

// tripBreaker permanently disables remote calls for this session.
func (s *AdaptiveSession) tripBreaker(stage string, err error) {
	if !s.remoteAvailable {
		return
	}
	s.remoteAvailable = false
	s.log.Warn("remote unavailable, continuing offline",
		zap.String("stage", stage),
		zap.Error(err))
}

// Start records the start time and returns the greeting. In
// job-description mode it also parses the JD for question context;
// parse failure trips the breaker and the session continues with the
// raw text unavailable.
func (s *AdaptiveSession) Start(ctx context.Context) *Greeting {
	s.startedAt = time.Now()

	jdParsed := false
	if s.params.Mode == ModeJobDescription && s.jdParser != nil && s.remoteAvailable {
		parsed, err := s.jdParser.Parse(ctx, s.params.JobDescription)
		if err != nil {
			s.tripBreaker("jd-parse", err)
		} else {
			s.jdContext = parsed
			jdParsed = true
		}
	}

	modeDesc := "Role-Based"
	if s.params.Mode == ModeJobDescription {
		modeDesc = "JD-Based"
	}
	msg := "Welcome " + s.params.CandidateName + "! Starting " + modeDesc +
		" interview for " + strings.Join(s.params.Roles, " + ")
	if s.params.Company != "" {
		msg += " at " + s.params.Company
	}
	msg += "."

	return &Greeting{
		Message:  msg,
		Mode:     s.params.Mode,
		Roles:    s.params.Roles,
		Company:  s.params.Company,
		JDParsed: jdParsed,
	}
}

func (s *AdaptiveSession) scores() []float64 {
	out := make([]float64, len(s.history))
	for i, h := range s.history {
		out[i] = h.Score
	}
	return out
}

// NextQuestion produces the next question, remote first, bank fallback
// second. The question count advances exactly once per call regardless
// of path.
func (s *AdaptiveSession) NextQuestion(ctx context.Context) *QuestionPayload {
	s.questionCount++

	var q *questiongen.Question
	if s.remoteAvailable {
		q = s.generateRemote(ctx)
	}
	if q == nil {
		q = s.pickFromBank()
	}

	s.current = q
	s.rememberAsked(q.Text)

	return &QuestionPayload{
		Number:     s.questionCount,
		Question:   q.Text,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Reasoning:  q.Reasoning,
	}
}

func (s *AdaptiveSession) generateRemote(ctx context.Context) *questiongen.Question {
	scores := s.scores()
	input := questiongen.GenerateInput{
		Roles:            s.params.Roles,
		Company:          s.params.Company,
		QuestionCount:    s.questionCount,
		AverageScore:     averageScore(scores),
		PerformanceTrend: performanceTrend(scores),
		AskedQuestions:   s.askedOrder,
	}
	if s.jdContext != nil {
		input.JDContext = s.jdContext.Summary()
	}

	q, err := s.generator.Generate(ctx, input)
	if err != nil {
		s.tripBreaker("question-gen", err)
		return nil
	}
	return q
}

// pickFromBank selects an unasked bank question for the primary role.
// When the role's entries are exhausted the asked set is cleared and
// repeats are allowed.
func (s *AdaptiveSession) pickFromBank() *questiongen.Question {
	role := s.params.Roles[0]
	entry, ok := s.bank.Pick(role, s.asked)
	if !ok {
		s.asked = make(map[string]bool)
		entry, ok = s.bank.Pick(role, s.asked)
		if !ok {
			// Bank has no entries at all. Ask something generic
			// rather than failing the interview.
			return &questiongen.Question{
				Text:       "Tell me about yourself and why you are interested in this role.",
				Category:   bank.CategoryGeneral,
				Difficulty: questiongen.DifficultyMedium,
			}
		}
	}
	return questiongen.FromBankEntry(entry)
}

func (s *AdaptiveSession) rememberAsked(question string) {
	s.asked[bank.Normalize(question)] = true
	s.askedOrder = append(s.askedOrder, question)
}

// SubmitAnswer evaluates the answer to the current question and
// appends it to history. Evaluation never fails past this boundary:
// remote errors trip the breaker and the fallback evaluator runs
// instead.
func (s *AdaptiveSession) SubmitAnswer(ctx context.Context, answer string) *AnsweredQuestion {
	q := s.current
	if q == nil {
		return nil
	}

	ec := evaluate.Context{
		Roles:            s.params.Roles,
		Company:          s.params.Company,
		Category:         q.Category,
		QuestionCount:    s.questionCount,
		PerformanceTrend: performanceTrend(s.scores()),
	}

	var ev *evaluate.Evaluation
	if s.remoteAvailable {
		remote, err := s.evaluator.Evaluate(ctx, q.Text, answer, ec)
		if err != nil {
			s.tripBreaker("answer-eval", err)
		} else {
			ev = remote
		}
	}
	if ev == nil {
		// The fallback evaluator cannot fail.
		ev, _ = s.fallback.Evaluate(ctx, q.Text, answer, ec)
	}

	record := AnsweredQuestion{
		Number:     s.questionCount,
		Question:   q.Text,
		Category:   q.Category,
		Difficulty: q.Difficulty,
		Answer:     answer,
		Score:      ev.Score,
		Evaluation: ev,
		AnsweredAt: time.Now(),
	}
	s.history = append(s.history, record)
	s.current = nil

	s.log.Debug("answer evaluated",
		zap.Int("question", record.Number),
		zap.String("category", string(record.Category)),
		zap.Float64("score", record.Score))

	return &record
}
