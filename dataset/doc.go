// Package dataset provides the ordered numeric sample container shared by
// all estimators, along with CSV loading and dataset splitting utilities.
//
// A Dataset is immutable once built: estimators read samples by index and
// must not mutate them. Weighted random draws (used for probabilistic
// seeding) and splitting helpers take an explicit rand source so callers
// can make them reproducible.
package dataset
