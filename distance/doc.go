// Package distance provides pluggable distance kernels for estimators.
//
// A Kernel is a pure function computing a nonnegative dissimilarity
// between two equal-length vectors. Estimators take a Kernel directly or
// select one through the Metric enum and Provider.
package distance
