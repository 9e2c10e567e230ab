package benchmark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	intm "benchmark-reporter/internal"
)

const defaultMaxRegression = 5.0

// Matrix describes which commands were benchmarked against each other and
// under which categories.
type Matrix struct {
	Current       string     `yaml:"current"`
	Baselines     []string   `yaml:"baselines"`
	MaxRegression *float64   `yaml:"max_regression"`
	Categories    []Category `yaml:"categories"`
}

// Threshold returns the allowed slowdown as a fraction of the baseline mean.
func (m Matrix) Threshold() float64 {
	if m.MaxRegression == nil {
		return defaultMaxRegression / 100.0
	}
	return *m.MaxRegression / 100.0
}

func (m Matrix) validate() error {
	if m.Current == "" {
		return fmt.Errorf("%w: current command is not set", intm.ErrMatrixRead)
	}
	if len(m.Baselines) == 0 {
		return fmt.Errorf("%w: no baseline commands", intm.ErrMatrixRead)
	}
	if m.MaxRegression != nil && *m.MaxRegression < 0 {
		return fmt.Errorf("%w: negative max_regression", intm.ErrMatrixRead)
	}
	for _, c := range m.Categories {
		if _, err := ParseCategory(c); err != nil {
			return err
		}
	}
	return nil
}

func LoadMatrix(path string) (Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("%w: %w", intm.ErrMatrixRead, err)
	}

	var m Matrix
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Matrix{}, fmt.Errorf("%w: %s: %w", intm.ErrMatrixRead, path, err)
	}
	if err := m.validate(); err != nil {
		return Matrix{}, err
	}
	return m, nil
}
