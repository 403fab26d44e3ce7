/*
Package recommender classifies users into recommendation levels (0-6)
describing how much exercise intensity is advisable, from BMI, age, and
medical conditions. The rule scorer is pure and deterministic; an
alternative scorer backed by a trained model artifact lives in model.go.
*/
package recommender

import (
	"fitcoach/internal/profile"
)

// Recommendation levels:
//
//	0   no exercise recommended (severe medical concerns, extreme BMI)
//	1   minimal activity, medical supervision required
//	2   light exercise only, with doctor's approval
//	3-4 standard workout plan
//	5   weight management / special cases
//	6   good fitness condition
//
// The rules below overlap; evaluation order is part of the contract and
// the first matching rule wins.
func Level(bmi float64, age int, hypertension, diabetes profile.Flag) int {
	// Severe health risk: no exercise recommended.
	if bmi >= 40 {
		return 0
	}
	if bmi < 16 {
		return 0
	}
	if hypertension && diabetes {
		return 0
	}
	if age > 65 && (hypertension || diabetes) {
		return 0
	}

	// Light activity with medical advice.
	if bmi >= 35 || (age >= 60 && bmi >= 30) {
		return 1
	}
	if hypertension || diabetes {
		return 2
	}

	// Standard exercise recommendations.
	if 25 <= bmi && bmi < 35 {
		return 3
	}
	if 18.5 <= bmi && bmi < 25 {
		return 4
	}

	// Underweight or special cases.
	if bmi < 18.5 {
		return 5
	}
	if age < 18 {
		return 5
	}

	return 6
}

// RuleScorer adapts the rule table to the coach.Scorer contract.
type RuleScorer struct{}

// Score returns the recommendation level for an already-computed BMI.
func (RuleScorer) Score(p profile.UserProfile, bmi float64) (int, error) {
	return Level(bmi, p.Age, p.Hypertension, p.Diabetes), nil
}
