package recommender

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"fitcoach/internal/profile"
)

var (
	// ErrNotFitted indicates the artifact is missing its fitted scaler or
	// feature list, so no prediction can be made.
	ErrNotFitted = errors.New("model artifact has no fitted scaler or feature list")

	// ErrMissingColumns indicates a numeric column required for scaling is
	// not among the fitted features.
	ErrMissingColumns = errors.New("numeric columns missing from fitted features")
)

// scalerParams holds the per-column bounds of a fitted min-max scaler.
type scalerParams struct {
	Min map[string]float64 `json:"min"`
	Max map[string]float64 `json:"max"`
}

// modelArtifact is the on-disk JSON format for an exported classifier: the
// fitted preprocessing state plus linear one-vs-rest weights whose argmax
// is the predicted recommendation level.
type modelArtifact struct {
	FeatureNames   []string      `json:"feature_names"`
	NumericColumns []string      `json:"numeric_columns"`
	Scaler         *scalerParams `json:"scaler"`
	Classes        []int         `json:"classes"`
	Weights        [][]float64   `json:"weights"`
	Intercepts     []float64     `json:"intercepts"`
}

// ModelScorer predicts a recommendation level with a previously trained
// classifier instead of the rule table. It satisfies the same contract
// shape as RuleScorer.
type ModelScorer struct {
	art modelArtifact
}

// LoadModel reads and validates a model artifact from disk.
func LoadModel(path string) (*ModelScorer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var art modelArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if art.Scaler == nil || len(art.FeatureNames) == 0 {
		return nil, ErrNotFitted
	}
	if len(art.Weights) == 0 || len(art.Weights) != len(art.Classes) || len(art.Intercepts) != len(art.Classes) {
		return nil, fmt.Errorf("model artifact: %d classes, %d weight rows, %d intercepts", len(art.Classes), len(art.Weights), len(art.Intercepts))
	}
	for i, row := range art.Weights {
		if len(row) != len(art.FeatureNames) {
			return nil, fmt.Errorf("model artifact: weight row %d has %d columns, want %d", i, len(row), len(art.FeatureNames))
		}
	}

	return &ModelScorer{art: art}, nil
}

// Score builds the feature vector for the profile, applies the fitted
// scaling, and returns the argmax class of the linear classifier.
func (m *ModelScorer) Score(p profile.UserProfile, bmi float64) (int, error) {
	features := map[string]float64{
		"weight": p.Weight,
		"height": p.Height,
		"bmi":    bmi,
		"gender": float64(p.Gender),
		"age":    float64(p.Age),
	}
	return m.predict(features)
}

// predict reindexes the features to the fitted order (absent ones padded
// with zero), min-max scales the numeric columns, and scores each class.
func (m *ModelScorer) predict(features map[string]float64) (int, error) {
	if m.art.Scaler == nil || len(m.art.FeatureNames) == 0 {
		return 0, ErrNotFitted
	}

	index := make(map[string]int, len(m.art.FeatureNames))
	vec := make([]float64, len(m.art.FeatureNames))
	for i, name := range m.art.FeatureNames {
		index[name] = i
		vec[i] = features[name] // missing features stay zero
	}

	for _, col := range m.art.NumericColumns {
		i, ok := index[col]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumns, col)
		}
		lo, hi := m.art.Scaler.Min[col], m.art.Scaler.Max[col]
		if hi > lo {
			vec[i] = (vec[i] - lo) / (hi - lo)
		}
	}

	best, bestScore := 0, 0.0
	for c := range m.art.Classes {
		score := m.art.Intercepts[c]
		for i, w := range m.art.Weights[c] {
			score += w * vec[i]
		}
		if c == 0 || score > bestScore {
			best, bestScore = c, score
		}
	}
	return m.art.Classes[best], nil
}
