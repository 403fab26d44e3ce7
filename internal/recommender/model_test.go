package recommender_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fitcoach/internal/profile"
	"fitcoach/internal/recommender"
)

func writeArtifact(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// A two-class model over (weight, height, bmi, age) whose second class
// wins whenever the scaled bmi is above roughly the middle of its range.
const fittedArtifact = `{
	"feature_names": ["weight", "height", "bmi", "age"],
	"numeric_columns": ["weight", "height", "bmi", "age"],
	"scaler": {
		"min": {"weight": 40, "height": 140, "bmi": 14, "age": 10},
		"max": {"weight": 140, "height": 200, "bmi": 45, "age": 80}
	},
	"classes": [2, 4],
	"weights": [[0, 0, 5, 0], [0, 0, -5, 0]],
	"intercepts": [-2.5, 2.5]
}`

func TestLoadModel_NotFitted(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"no scaler", `{"feature_names": ["bmi"], "classes": [1], "weights": [[1]], "intercepts": [0]}`},
		{"no feature list", `{"scaler": {"min": {}, "max": {}}, "classes": [1], "weights": [[1]], "intercepts": [0]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := recommender.LoadModel(writeArtifact(t, tc.contents))
			if !errors.Is(err, recommender.ErrNotFitted) {
				t.Fatalf("got %v, want ErrNotFitted", err)
			}
		})
	}
}

func TestLoadModel_ShapeMismatch(t *testing.T) {
	bad := `{
		"feature_names": ["bmi", "age"],
		"numeric_columns": ["bmi"],
		"scaler": {"min": {"bmi": 14}, "max": {"bmi": 45}},
		"classes": [1, 2],
		"weights": [[1, 0]],
		"intercepts": [0]
	}`
	if _, err := recommender.LoadModel(writeArtifact(t, bad)); err == nil {
		t.Fatal("expected an error for mismatched weight rows")
	}
}

func TestModelScorer_MissingColumns(t *testing.T) {
	// A numeric column that is not among the fitted features cannot be
	// scaled even after zero-padding.
	art := `{
		"feature_names": ["bmi", "age"],
		"numeric_columns": ["bmi", "resting_heart_rate"],
		"scaler": {"min": {"bmi": 14, "resting_heart_rate": 40}, "max": {"bmi": 45, "resting_heart_rate": 200}},
		"classes": [1],
		"weights": [[1, 0]],
		"intercepts": [0]
	}`
	m, err := recommender.LoadModel(writeArtifact(t, art))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	_, err = m.Score(profile.UserProfile{Weight: 70, Height: 175, Age: 30}, 22.9)
	if !errors.Is(err, recommender.ErrMissingColumns) {
		t.Fatalf("got %v, want ErrMissingColumns", err)
	}
}

func TestModelScorer_Predict(t *testing.T) {
	m, err := recommender.LoadModel(writeArtifact(t, fittedArtifact))
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	tests := []struct {
		name string
		bmi  float64
		want int
	}{
		{"high bmi takes first class", 40, 2},
		{"low bmi takes second class", 18, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Score(profile.UserProfile{Weight: 80, Height: 175, Age: 30}, tc.bmi)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Score(bmi=%v) = %d, want %d", tc.bmi, got, tc.want)
			}
		})
	}
}
