// Package estigo provides a small library of estimators sharing common
// dataset and distance abstractions.
//
// The centerpiece is the mini-batch K-Means clustering engine in the
// cluster package. Supporting packages supply the collaborators every
// estimator needs:
//
//   - dataset: ordered numeric sample containers, CSV(.gz) loading,
//     weighted sampling and train/test splitting
//   - distance: pluggable distance kernels (Euclidean by default)
//   - model: the Estimator/Predictor contracts
//   - ensemble: voting aggregation over trained predictors
//   - activation: activation functions for simple estimators
//
// # Quick Start
//
//	ds, _ := dataset.FromSlice([][]float64{
//	    {0, 0}, {0, 1}, {10, 0}, {10, 1},
//	})
//
//	km, _ := cluster.NewMiniBatchKMeans(2,
//	    cluster.WithBatchSize(4),
//	    cluster.WithMaxEpochs(50),
//	)
//	_ = km.Fit(ds)
//
//	labels, _ := km.Predict(ds)
//
// # Logging
//
// Estimators accept an optional *estigo.Logger (a thin slog wrapper) for
// human-readable training progress. Logging is fire-and-forget and has no
// effect on algorithm behavior:
//
//	km, _ := cluster.NewMiniBatchKMeans(8,
//	    cluster.WithLogger(estigo.NewTextLogger(slog.LevelDebug)),
//	)
//
// # Determinism
//
// All randomness (seeding, per-epoch shuffling) flows through a single
// injectable rand source, so training runs are reproducible:
//
//	km, _ := cluster.NewMiniBatchKMeans(8,
//	    cluster.WithRandomSource(rand.New(rand.NewSource(42))),
//	)
package estigo
