package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fitcoach/internal/coach"
	"fitcoach/internal/profile"
)

// sessionHeader carries the opaque session id on the endpoints that take
// it as a header rather than a path parameter.
const sessionHeader = "session_id"

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// workoutRequest is the raw inbound profile. Enum fields arrive as free
// strings and are normalized exactly once, in toProfile.
type workoutRequest struct {
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	Gender            int     `json:"gender"`
	Age               int     `json:"age"`
	Hypertension      string  `json:"hypertension"`
	Diabetes          string  `json:"diabetes"`
	FitnessGoal       string  `json:"fitness_goal"`
	WorkoutPreference string  `json:"workout_preference"`
	WorkoutLocation   string  `json:"workout_location"`
	Duration          string  `json:"duration"`
	ExperienceLevel   string  `json:"experience_level"`
}

func (r workoutRequest) toProfile() profile.UserProfile {
	return profile.UserProfile{
		Weight:       r.Weight,
		Height:       r.Height,
		Gender:       r.Gender,
		Age:          r.Age,
		Hypertension: profile.ParseFlag(r.Hypertension),
		Diabetes:     profile.ParseFlag(r.Diabetes),
		FitnessGoal:  profile.ParseGoal(r.FitnessGoal),
		Preference:   profile.ParsePreference(r.WorkoutPreference),
		Location:     profile.ParseLocation(r.WorkoutLocation),
		Duration:     r.Duration,
		Experience:   profile.ParseExperience(r.ExperienceLevel),
	}
}

type workoutResponse struct {
	SessionID           string  `json:"session_id"`
	BMI                 float64 `json:"bmi"`
	RecommendationLevel int     `json:"recommendation_level"`
	FitnessAnalysis     string  `json:"fitness_analysis"`
	WorkoutPlan         string  `json:"workout_plan"`
	NutritionTips       string  `json:"nutrition_tips"`
}

type concernRequest struct {
	Concern string `json:"concern"`
}

type searchRequest struct {
	Query         string `json:"query"`
	MaxResults    int    `json:"max_results,omitempty"`
	VideoDuration string `json:"video_duration,omitempty"`
}

/* =================================================================================
									HANDLERS
=================================================================================*/

// generateWorkoutHandler runs the initial workflow: score, store the
// session, fan out the three generation calls, assemble the plan.
func (s *Server) generateWorkoutHandler(c echo.Context) error {
	var req workoutRequest
	if err := c.Bind(&req); err != nil {
		s.log.Error().Err(err).Msg("Failed to bind workout request")
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	plan, err := s.coach.GenerateWorkout(c.Request().Context(), req.toProfile(), c.Request().Header.Get(sessionHeader))
	if err != nil {
		// Scorer input failures abort the whole request.
		s.log.Error().Err(err).Msg("Workout generation aborted")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, workoutResponse{
		SessionID:           plan.SessionID,
		BMI:                 plan.BMI,
		RecommendationLevel: plan.Level,
		FitnessAnalysis:     plan.FitnessAnalysis,
		WorkoutPlan:         plan.WorkoutPlan,
		NutritionTips:       plan.NutritionTips,
	})
}

func (s *Server) generateNutritionHandler(c echo.Context) error {
	sessionID := c.Request().Header.Get(sessionHeader)
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing session_id header"})
	}

	tips, err := s.coach.GenerateNutrition(c.Request().Context(), sessionID)
	if errors.Is(err, coach.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	}
	if err != nil {
		s.log.Error().Err(err).Msg("Nutrition generation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"session_id":     sessionID,
		"nutrition_tips": tips,
	})
}

func (s *Server) userConcernsHandler(c echo.Context) error {
	sessionID := c.Param("session_id")
	if _, ok := s.sessions.Get(sessionID); !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	}

	var req concernRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Concern) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Concern is required"})
	}

	answer, err := s.coach.AnswerConcern(c.Request().Context(), sessionID, req.Concern)
	if errors.Is(err, coach.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	}
	if err != nil {
		s.log.Error().Err(err).Msg("Concern response failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"session_id":   sessionID,
		"user_concern": req.Concern,
		"response":     answer,
	})
}

func (s *Server) getSessionHandler(c echo.Context) error {
	sessionID := c.Param("session_id")
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"session_id": sessionID,
		"user_data":  sess,
	})
}

// deleteSessionHandler is idempotent: deleting an unknown id still
// answers 200.
func (s *Server) deleteSessionHandler(c echo.Context) error {
	sessionID := c.Param("session_id")
	s.sessions.Delete(sessionID)
	return c.JSON(http.StatusOK, map[string]string{
		"message":    "Session cleared",
		"session_id": sessionID,
	})
}

func (s *Server) youtubeSearchHandler(c echo.Context) error {
	if s.videos == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Video search is not configured"})
	}

	var req searchRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query is required"})
	}

	// A session id makes the search profile-aware: goal, experience and
	// preference become relevance hints.
	var keywords []string
	if sessionID := c.Request().Header.Get(sessionHeader); sessionID != "" {
		if sess, ok := s.sessions.Get(sessionID); ok {
			keywords = coach.SearchKeywords(sess)
		}
	}

	videos, err := s.videos.Search(c.Request().Context(), req.Query, req.MaxResults, keywords, req.VideoDuration)
	if err != nil {
		s.log.Error().Err(err).Msg("Video search failed")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"videos": videos})
}

func (s *Server) youtubeVideoHandler(c echo.Context) error {
	if s.videos == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Video search is not configured"})
	}

	details, err := s.videos.VideoDetails(c.Request().Context(), c.Param("video_id"))
	if err != nil {
		s.log.Error().Err(err).Msg("Video details lookup failed")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, details)
}
