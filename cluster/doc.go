// Package cluster provides clustering estimators.
//
// MiniBatchKMeans partitions a dataset into k groups by refining a set of
// centroid vectors over streamed mini-batches. Centroids are seeded with
// k-means++ (weighted probabilistic initialization) and updated online
// with an exponential-moving-average step, so no historical assignments
// are stored. Training stops once per-epoch label reassignments fall
// below a threshold, or after a fixed number of epochs.
package cluster
