package ensemble

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/estigo/dataset"
	"github.com/hupe1980/estigo/model"
)

// Voting aggregates member predictions by majority vote per sample.
// Ties resolve to the lowest label.
type Voting struct {
	members []model.Predictor
}

// NewVoting creates a Voting ensemble over the given trained predictors.
func NewVoting(members ...model.Predictor) (*Voting, error) {
	if len(members) == 0 {
		return nil, errors.New("ensemble requires at least one member")
	}
	return &Voting{members: members}, nil
}

// Predict gathers one label sequence per member and majority-votes each
// sample. Member predictions run in parallel; members must not mutate
// state during Predict. Any member error fails the whole call.
func (v *Voting) Predict(ds *dataset.Dataset) ([]int, error) {
	votes := make([][]int, len(v.members))

	var g errgroup.Group
	for i, member := range v.members {
		i, member := i, member
		g.Go(func() error {
			labels, err := member.Predict(ds)
			if err != nil {
				return err
			}
			votes[i] = labels
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	if ds != nil {
		n = ds.Len()
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = majority(votes, i)
	}

	return labels, nil
}

// majority returns the most frequent label for sample i across all
// members, preferring the lowest label on ties.
func majority(votes [][]int, i int) int {
	counts := make(map[int]int)
	for _, memberLabels := range votes {
		counts[memberLabels[i]]++
	}

	best, bestCount := 0, -1
	for label, count := range counts {
		if count > bestCount || (count == bestCount && label < best) {
			best = label
			bestCount = count
		}
	}

	return best
}
