package model

import (
	"github.com/hupe1980/estigo/dataset"
)

// Estimator is the interface for models that learn from a dataset.
type Estimator interface {
	// Fit trains the model on the given dataset. Retraining overwrites
	// any previously learned state.
	Fit(ds *dataset.Dataset) error

	// IsFitted reports whether the model has been trained.
	IsFitted() bool
}

// Predictor is the interface for models that assign an integer label to
// each sample of a dataset.
type Predictor interface {
	// Predict returns one label per input sample, in input order. It
	// fails if the model has not been fitted and never mutates model
	// state.
	Predict(ds *dataset.Dataset) ([]int, error)
}

// Clusterer combines the interfaces implemented by clustering models.
type Clusterer interface {
	Estimator
	Predictor

	// Centroids returns the learned cluster representatives, one vector
	// per cluster index.
	Centroids() [][]float64
}

// FittedState tracks the untrained/trained lifecycle of an estimator.
// The zero value is not fitted. Estimators embed it and flip it exactly
// once per successful training run.
type FittedState struct {
	fitted bool
}

// IsFitted reports whether the estimator has been trained.
func (s *FittedState) IsFitted() bool {
	return s.fitted
}

// SetFitted marks the estimator as trained.
func (s *FittedState) SetFitted() {
	s.fitted = true
}

// Reset marks the estimator as untrained.
func (s *FittedState) Reset() {
	s.fitted = false
}
