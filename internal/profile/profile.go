/*
Package profile defines the user profile record accepted by the
recommendation endpoints, the enum normalization applied once on ingress,
and the metrics derived from it (BMI, BMI category).
*/
package profile

import (
	"errors"
	"math"
	"strings"
)

// ErrInvalidHeight is returned when a BMI is requested for a non-positive height.
var ErrInvalidHeight = errors.New("height must be greater than zero")

// Flag is a yes/no medical indicator. The wire format is the string
// "Yes"/"No" (any casing); it is parsed exactly once, on ingress.
type Flag bool

// ParseFlag interprets "yes" (case-insensitive) as true; anything else is false.
func ParseFlag(s string) Flag {
	return Flag(strings.EqualFold(strings.TrimSpace(s), "yes"))
}

// String renders the flag back in its wire form.
func (f Flag) String() string {
	if f {
		return "Yes"
	}
	return "No"
}

// Enum types are string-typed so that unrecognized raw values survive
// normalization and the prompt templates can fall back to their generic
// branches while still echoing what the user sent.
type (
	Goal       string
	Preference string
	Location   string
	Experience string
)

const (
	GoalMuscleGain Goal = "Muscle Gain"
	GoalWeightLoss Goal = "Weight Loss"
	GoalWeightGain Goal = "Weight Gain"

	PreferenceStrength Preference = "Strength Training"
	PreferenceCardio   Preference = "Cardio"
	PreferenceMixed    Preference = "Mixed"

	LocationHome Location = "Home"
	LocationGym  Location = "Gym"

	ExperienceBeginner     Experience = "Beginner"
	ExperienceIntermediate Experience = "Intermediate"
	ExperienceExpert       Experience = "Expert"
)

// ParseGoal canonicalizes a fitness goal, preserving unknown input verbatim.
func ParseGoal(s string) Goal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "muscle gain":
		return GoalMuscleGain
	case "weight loss":
		return GoalWeightLoss
	case "weight gain":
		return GoalWeightGain
	}
	return Goal(s)
}

// ParsePreference canonicalizes a workout preference.
func ParsePreference(s string) Preference {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strength training", "strength":
		return PreferenceStrength
	case "cardio":
		return PreferenceCardio
	case "mixed":
		return PreferenceMixed
	}
	return Preference(s)
}

// ParseLocation canonicalizes a workout location.
func ParseLocation(s string) Location {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home":
		return LocationHome
	case "gym":
		return LocationGym
	}
	return Location(s)
}

// ParseExperience canonicalizes an experience level.
func ParseExperience(s string) Experience {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return ExperienceBeginner
	case "intermediate":
		return ExperienceIntermediate
	case "expert":
		return ExperienceExpert
	}
	return Experience(s)
}

// UserProfile is the immutable input record for one recommendation request.
// All string enums are already normalized; handlers must build it through
// the parse functions above rather than casting raw request strings.
type UserProfile struct {
	Weight       float64    `json:"weight"` // kilograms
	Height       float64    `json:"height"` // centimeters
	Gender       int        `json:"gender"` // small integer code, passed through
	Age          int        `json:"age"`
	Hypertension Flag       `json:"hypertension"`
	Diabetes     Flag       `json:"diabetes"`
	FitnessGoal  Goal       `json:"fitness_goal"`
	Preference   Preference `json:"workout_preference"`
	Location     Location   `json:"workout_location"`
	Duration     string     `json:"duration"` // free-form label, e.g. "4 weeks"
	Experience   Experience `json:"experience_level"`
}

// HasMedicalCondition reports whether either medical flag is set.
func (p UserProfile) HasMedicalCondition() bool {
	return bool(p.Hypertension) || bool(p.Diabetes)
}

// BMI computes weight(kg)/height(m)^2 rounded to one decimal place.
func BMI(weight, height float64) (float64, error) {
	if height <= 0 {
		return 0, ErrInvalidHeight
	}
	m := height / 100
	return math.Round(weight/(m*m)*10) / 10, nil
}

// BMICategory buckets a BMI value into the standard four categories.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal weight"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
