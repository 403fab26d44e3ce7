/*
Package prompt renders the natural-language prompts sent to the text
generation backend. All builders are pure string assembly over an already
normalized profile; they perform no I/O and cannot fail.
*/
package prompt

import (
	"fmt"
	"strings"

	"fitcoach/internal/profile"
	"fitcoach/internal/session"
)

// FitnessAnalysis builds the fitness-overview prompt from the profile,
// the recommendation level, and the computed BMI.
func FitnessAnalysis(p profile.UserProfile, level int, bmi float64) string {
	warning := medicalWarningNone
	if p.HasMedicalCondition() {
		warning = medicalWarningPresent
	}

	advisory := exerciseAdvisorySafe
	if level <= 1 {
		advisory = exerciseAdvisoryNotRecommended
	}

	return fmt.Sprintf(fitnessAnalysisTemplate,
		profile.BMICategory(bmi),
		p.Hypertension,
		p.Diabetes,
		p.Age,
		p.Location,
		p.Experience,
		warning,
		advisory,
	)
}

// WorkoutPlan builds the workout-plan prompt, choosing the experience,
// location, and preference instruction blocks for the profile.
func WorkoutPlan(p profile.UserProfile) string {
	var experience string
	switch p.Experience {
	case profile.ExperienceBeginner:
		experience = experienceBeginner
	case profile.ExperienceIntermediate:
		experience = experienceIntermediate
	case profile.ExperienceExpert:
		experience = experienceExpert
	default:
		experience = experienceDefault
	}

	location := locationGym
	if p.Location == profile.LocationHome {
		location = locationHome
	}

	var preference string
	switch p.Preference {
	case profile.PreferenceStrength:
		preference = preferenceStrength
	case profile.PreferenceCardio:
		preference = preferenceCardio
	default:
		preference = preferenceHybrid
	}

	medical := ""
	if p.HasMedicalCondition() {
		medical = workoutMedicalAdvisory
	}

	return fmt.Sprintf(workoutPlanTemplate,
		p.Duration,
		p.FitnessGoal,
		p.Experience,
		p.Preference,
		p.Location,
		experience,
		location,
		preference,
		medical,
	)
}

// NutritionTips builds the nutrition-plan prompt from the fitness goal,
// medical flags, and BMI.
func NutritionTips(goal profile.Goal, hypertension, diabetes profile.Flag, bmi float64) string {
	var bmiGuidance string
	switch profile.BMICategory(bmi) {
	case "underweight":
		bmiGuidance = bmiGuidanceUnderweight
	case "normal weight":
		bmiGuidance = bmiGuidanceNormal
	case "overweight":
		bmiGuidance = bmiGuidanceOverweight
	default:
		bmiGuidance = bmiGuidanceObese
	}

	var focus string
	switch goal {
	case profile.GoalMuscleGain:
		focus = goalMuscleGain
	case profile.GoalWeightLoss:
		focus = goalWeightLoss
	case profile.GoalWeightGain:
		focus = goalWeightGain
	default:
		focus = goalDefault
	}

	medical := ""
	if hypertension || diabetes {
		medical = nutritionMedicalAdvisory
	}

	return fmt.Sprintf(nutritionTipsTemplate,
		bmiGuidance,
		goal,
		hypertension,
		diabetes,
		focus,
		medical,
	)
}

// UserConcern builds the response prompt for a free-text concern. Known
// topics get curated guidance; anything else falls back to general
// wellness advice.
func UserConcern(concern string) string {
	guidance, ok := concernGuidance[strings.ToLower(strings.TrimSpace(concern))]
	if !ok {
		guidance = concernGuidanceDefault
	}
	return fmt.Sprintf(userConcernTemplate, title(concern), guidance)
}

// ProfileContext renders the session summary block callers prepend to a
// concern prompt so the model answers in the user's context.
func ProfileContext(sess session.Session) string {
	p := sess.Profile
	return fmt.Sprintf(profileContextTemplate,
		orNotProvided(string(p.FitnessGoal)),
		orNotProvided(string(p.Experience)),
		orNotProvided(string(p.Preference)),
		orNotProvided(string(p.Location)),
		p.Hypertension,
		p.Diabetes,
	)
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

// title upper-cases the first letter of every word, for the concern heading.
func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		if len(r) > 0 {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
