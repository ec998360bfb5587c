// Package model defines the contracts shared by all estimators in the
// library: training, prediction, and the fitted-state lifecycle.
package model
