/*
Package coach implements the request-level recommendation workflow: score
the profile, persist the session, build the prompts, fan the generation
calls out, and assemble the combined result.
*/
package coach

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fitcoach/internal/genai"
	"fitcoach/internal/profile"
	"fitcoach/internal/prompt"
	"fitcoach/internal/session"
)

// ErrSessionNotFound is returned by the follow-up workflows when the
// referenced session does not exist. Clients recover by re-submitting
// the initial request.
var ErrSessionNotFound = errors.New("session not found")

// Scorer maps a profile and its BMI to a recommendation level (0-6).
// Implemented by the rule table and by the trained-model scorer.
type Scorer interface {
	Score(p profile.UserProfile, bmi float64) (int, error)
}

// Dispatcher issues generation calls, bounding backend concurrency.
type Dispatcher interface {
	Generate(ctx context.Context, prompt string, opts genai.Options) genai.Result
	GenerateAsync(ctx context.Context, prompt string, opts genai.Options) <-chan genai.Result
}

// Plan is the assembled result of one generate-workout request. The
// three text fields carry either generated content or the fail-soft
// placeholder for a failed generation call.
type Plan struct {
	SessionID       string
	BMI             float64
	Level           int
	FitnessAnalysis string
	WorkoutPlan     string
	NutritionTips   string
}

// Service is the orchestrator. All collaborators are injected once at
// process start; the service holds no package-level state.
type Service struct {
	scorer   Scorer
	sessions *session.Store
	gen      Dispatcher
	log      zerolog.Logger
}

// NewService wires the orchestrator.
func NewService(scorer Scorer, sessions *session.Store, gen Dispatcher, log zerolog.Logger) *Service {
	return &Service{scorer: scorer, sessions: sessions, gen: gen, log: log}
}

// GenerateWorkout runs the full initial workflow. A scoring failure
// aborts the request; a failure inside any one generation call surfaces
// as placeholder text in that field only.
func (s *Service) GenerateWorkout(ctx context.Context, p profile.UserProfile, sessionID string) (Plan, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	bmi, err := profile.BMI(p.Weight, p.Height)
	if err != nil {
		return Plan{}, err
	}
	level, err := s.scorer.Score(p, bmi)
	if err != nil {
		return Plan{}, err
	}

	s.sessions.Create(sessionID, session.Session{
		Profile:   p,
		BMI:       bmi,
		Level:     level,
		CreatedAt: time.Now().UTC(),
	})

	s.log.Info().
		Str("session_id", sessionID).
		Float64("bmi", bmi).
		Int("level", level).
		Msg("Session stored, dispatching generation calls")

	plan := Plan{SessionID: sessionID, BMI: bmi, Level: level}

	// Three independent prompts, one barrier. The pool keeps the fan-out
	// within the process-wide backend bound; errors never cross fields.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		plan.FitnessAnalysis = s.gen.Generate(gctx, prompt.FitnessAnalysis(p, level, bmi), genai.Options{}).TextOrError()
		return nil
	})
	g.Go(func() error {
		plan.WorkoutPlan = s.gen.Generate(gctx, prompt.WorkoutPlan(p), genai.Options{}).TextOrError()
		return nil
	})
	g.Go(func() error {
		plan.NutritionTips = s.gen.Generate(gctx, prompt.NutritionTips(p.FitnessGoal, p.Hypertension, p.Diabetes, bmi), genai.Options{}).TextOrError()
		return nil
	})
	_ = g.Wait()

	return plan, nil
}

// GenerateNutrition rebuilds the nutrition prompt from a stored session
// and issues a single generation call.
func (s *Service) GenerateNutrition(ctx context.Context, sessionID string) (string, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	p := sess.Profile
	res := <-s.gen.GenerateAsync(ctx, prompt.NutritionTips(p.FitnessGoal, p.Hypertension, p.Diabetes, sess.BMI), genai.Options{})
	return res.TextOrError(), nil
}

// AnswerConcern addresses a free-text user concern in the context of a
// stored session.
func (s *Service) AnswerConcern(ctx context.Context, sessionID, concern string) (string, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return "", ErrSessionNotFound
	}
	full := prompt.ProfileContext(sess) + prompt.UserConcern(concern)
	res := s.gen.Generate(ctx, full, genai.Options{})
	return res.TextOrError(), nil
}

// SearchKeywords derives video-search relevance hints from a session.
func SearchKeywords(sess session.Session) []string {
	var kw []string
	for _, v := range []string{
		string(sess.Profile.FitnessGoal),
		string(sess.Profile.Experience),
		string(sess.Profile.Preference),
	} {
		if v != "" {
			kw = append(kw, v)
		}
	}
	return kw
}
