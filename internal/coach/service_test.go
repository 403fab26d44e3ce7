package coach_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"fitcoach/internal/coach"
	"fitcoach/internal/genai"
	"fitcoach/internal/profile"
	"fitcoach/internal/session"
)

// fakeDispatcher records every prompt and answers from a function.
type fakeDispatcher struct {
	mu      sync.Mutex
	prompts []string
	fn      func(prompt string) genai.Result
}

func (f *fakeDispatcher) Generate(ctx context.Context, prompt string, opts genai.Options) genai.Result {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(prompt)
	}
	return genai.Result{Text: "generated"}
}

func (f *fakeDispatcher) GenerateAsync(ctx context.Context, prompt string, opts genai.Options) <-chan genai.Result {
	out := make(chan genai.Result, 1)
	out <- f.Generate(ctx, prompt, opts)
	return out
}

func newService(gen *fakeDispatcher) (*coach.Service, *session.Store) {
	store := session.NewStore()
	svc := coach.NewService(ruleScorer{}, store, gen, zerolog.Nop())
	return svc, store
}

// ruleScorer avoids importing the recommender package here; the workflow
// only needs the contract.
type ruleScorer struct{}

func (ruleScorer) Score(p profile.UserProfile, bmi float64) (int, error) {
	if p.Age < 18 {
		return 5, nil
	}
	return 4, nil
}

func validProfile() profile.UserProfile {
	return profile.UserProfile{
		Weight:      70,
		Height:      175,
		Age:         30,
		FitnessGoal: profile.GoalMuscleGain,
		Preference:  profile.PreferenceStrength,
		Location:    profile.LocationGym,
		Duration:    "4 weeks",
		Experience:  profile.ExperienceIntermediate,
	}
}

func TestGenerateWorkout_AssemblesPlan(t *testing.T) {
	gen := &fakeDispatcher{fn: func(prompt string) genai.Result {
		return genai.Result{Text: "reply to " + prompt[:20]}
	}}
	svc, store := newService(gen)

	plan, err := svc.GenerateWorkout(context.Background(), validProfile(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.SessionID != "sess-1" {
		t.Fatalf("session id = %q", plan.SessionID)
	}
	if plan.BMI != 22.9 || plan.Level != 4 {
		t.Fatalf("bmi/level = %v/%d", plan.BMI, plan.Level)
	}
	for _, text := range []string{plan.FitnessAnalysis, plan.WorkoutPlan, plan.NutritionTips} {
		if text == "" {
			t.Fatal("all three fields must be populated")
		}
	}

	sess, ok := store.Get("sess-1")
	if !ok {
		t.Fatal("session not stored")
	}
	if sess.BMI != 22.9 || sess.Level != 4 {
		t.Fatalf("stored session mismatch: %+v", sess)
	}
}

func TestGenerateWorkout_MintsSessionID(t *testing.T) {
	svc, store := newService(&fakeDispatcher{})

	plan, err := svc.GenerateWorkout(context.Background(), validProfile(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.SessionID == "" {
		t.Fatal("expected a minted session id")
	}
	if _, ok := store.Get(plan.SessionID); !ok {
		t.Fatal("minted session not stored")
	}

	again, _ := svc.GenerateWorkout(context.Background(), validProfile(), "")
	if again.SessionID == plan.SessionID {
		t.Fatal("minted ids must not collide")
	}
}

func TestGenerateWorkout_InvalidHeightAborts(t *testing.T) {
	gen := &fakeDispatcher{}
	svc, store := newService(gen)

	p := validProfile()
	p.Height = 0
	_, err := svc.GenerateWorkout(context.Background(), p, "sess-bad")
	if !errors.Is(err, profile.ErrInvalidHeight) {
		t.Fatalf("got %v, want ErrInvalidHeight", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatal("no generation calls may be dispatched after a scorer failure")
	}
	if _, ok := store.Get("sess-bad"); ok {
		t.Fatal("no session may be stored after a scorer failure")
	}
}

// Each of the three fanned-out calls must receive its own prompt: the
// analysis prompt forbids workout content, the workout prompt mandates
// the exercise table, the nutrition prompt forbids workouts again but
// asks for meals.
func TestGenerateWorkout_PromptsAreIndependent(t *testing.T) {
	gen := &fakeDispatcher{}
	svc, _ := newService(gen)

	if _, err := svc.GenerateWorkout(context.Background(), validProfile(), "sess-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gen.prompts) != 3 {
		t.Fatalf("expected 3 prompts, got %d", len(gen.prompts))
	}

	var analysis, workout, nutrition int
	for _, p := range gen.prompts {
		switch {
		case strings.Contains(p, "User Fitness Overview"):
			analysis++
		case strings.Contains(p, "Workout Plan") && strings.Contains(p, "`Day`, `Exercise`"):
			workout++
		case strings.Contains(p, "Nutrition Plan"):
			nutrition++
		}
	}
	if analysis != 1 || workout != 1 || nutrition != 1 {
		t.Fatalf("prompt mix wrong: analysis=%d workout=%d nutrition=%d", analysis, workout, nutrition)
	}
}

func TestGenerateWorkout_FailSoftPerField(t *testing.T) {
	gen := &fakeDispatcher{fn: func(prompt string) genai.Result {
		if strings.Contains(prompt, "Nutrition Plan") {
			return genai.Result{Err: errors.New("backend exploded")}
		}
		return genai.Result{Text: "fine"}
	}}
	svc, _ := newService(gen)

	plan, err := svc.GenerateWorkout(context.Background(), validProfile(), "sess-1")
	if err != nil {
		t.Fatalf("one failed generation must not abort the request: %v", err)
	}
	if plan.FitnessAnalysis != "fine" || plan.WorkoutPlan != "fine" {
		t.Fatalf("healthy fields affected: %+v", plan)
	}
	if !strings.HasPrefix(plan.NutritionTips, "Error generating response: ") {
		t.Fatalf("failing field must carry the placeholder, got %q", plan.NutritionTips)
	}
}

func TestGenerateNutrition(t *testing.T) {
	gen := &fakeDispatcher{}
	svc, store := newService(gen)

	if _, err := svc.GenerateNutrition(context.Background(), "nope"); !errors.Is(err, coach.ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}

	store.Create("sess-1", session.Session{Profile: validProfile(), BMI: 22.9, Level: 4})
	tips, err := svc.GenerateNutrition(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tips != "generated" {
		t.Fatalf("tips = %q", tips)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Nutrition Plan") {
		t.Fatalf("expected one nutrition prompt, got %v", gen.prompts)
	}
}

func TestAnswerConcern(t *testing.T) {
	gen := &fakeDispatcher{}
	svc, store := newService(gen)

	if _, err := svc.AnswerConcern(context.Background(), "nope", "motivation"); !errors.Is(err, coach.ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}

	store.Create("sess-1", session.Session{Profile: validProfile()})
	answer, err := svc.AnswerConcern(context.Background(), "sess-1", "motivation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "generated" {
		t.Fatalf("answer = %q", answer)
	}

	// The prompt must carry the session context ahead of the concern.
	sent := gen.prompts[0]
	ctxIdx := strings.Index(sent, "User Context")
	concernIdx := strings.Index(sent, "Addressing Your Concern")
	if ctxIdx == -1 || concernIdx == -1 || ctxIdx > concernIdx {
		t.Fatalf("profile context must precede the concern:\n%s", sent)
	}
}

func TestSearchKeywords(t *testing.T) {
	sess := session.Session{Profile: validProfile()}
	got := coach.SearchKeywords(sess)
	want := []string{"Muscle Gain", "Intermediate", "Strength Training"}
	if len(got) != len(want) {
		t.Fatalf("keywords = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keywords = %v, want %v", got, want)
		}
	}

	if kw := coach.SearchKeywords(session.Session{}); len(kw) != 0 {
		t.Fatalf("empty profile must yield no keywords, got %v", kw)
	}
}
