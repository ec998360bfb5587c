// Package ensemble aggregates predictions from multiple trained
// predictors. Members are treated as read-only collaborators, so their
// predictions are gathered in parallel before voting.
package ensemble
