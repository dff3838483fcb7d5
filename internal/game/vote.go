package game

import (
	"github.com/frostveil/frozenbridges/internal/models"
)

// VoteOutcome is the result of tallying a ballot
type VoteOutcome int

const (
	// VoteOngoing means the vote has neither passed nor become unwinnable
	VoteOngoing VoteOutcome = iota

	// VotePassed means the yes count reached the required threshold
	VotePassed

	// VoteFailedImpossible means even unanimous remaining yes ballots could
	// not reach the threshold
	VoteFailedImpossible
)

// Vote is an in-progress quorum vote. The starter's yes ballot is seeded at
// creation. A vote is destroyed when it resolves, times out, or the game ends.
type Vote struct {
	// ID distinguishes this vote from any later vote in the same game, so a
	// stale timeout task can recognise it has been superseded
	ID string

	// Type is what the vote decides
	Type models.VoteType

	// StarterID is the player who opened the vote
	StarterID string

	// TargetID is the player being voted on, for skip and kick votes
	TargetID string

	ballots map[string]bool
}

// NewVote creates a vote with the starter's yes ballot pre-seeded
func NewVote(id string, voteType models.VoteType, starterID, targetID string) *Vote {
	return &Vote{
		ID:        id,
		Type:      voteType,
		StarterID: starterID,
		TargetID:  targetID,
		ballots:   map[string]bool{starterID: true},
	}
}

// RequiredVotes returns the yes threshold for the given number of active
// players: floor(n/2)+1. Majority rather than unanimity, so a single holdout
// cannot deadlock the vote.
func RequiredVotes(activeCount int) int {
	return activeCount/2 + 1
}

// CastBallot records a voter's ballot and tallies the outcome against the
// current active player count. A voter with an existing ballot is rejected
// with no state change.
//
// The impossibility check runs after the new ballot is recorded, so the
// remaining-voter pool it reasons about is accurate.
func (v *Vote) CastBallot(voterID string, yes bool, activeCount int) (VoteOutcome, error) {
	if _, ok := v.ballots[voterID]; ok {
		return VoteOngoing, ErrAlreadyVoted
	}

	v.ballots[voterID] = yes

	required := RequiredVotes(activeCount)
	yesCount := v.YesCount()

	if yesCount >= required {
		return VotePassed, nil
	}

	remaining := activeCount - len(v.ballots)
	if yesCount+remaining < required {
		return VoteFailedImpossible, nil
	}

	return VoteOngoing, nil
}

// HasVoted reports whether the voter already holds a ballot
func (v *Vote) HasVoted(voterID string) bool {
	_, ok := v.ballots[voterID]
	return ok
}

// YesCount returns the number of yes ballots
func (v *Vote) YesCount() int {
	count := 0
	for _, yes := range v.ballots {
		if yes {
			count++
		}
	}
	return count
}

// NoCount returns the number of no ballots
func (v *Vote) NoCount() int {
	return len(v.ballots) - v.YesCount()
}

// Voters returns the ids that voted yes and no, in no particular order
func (v *Vote) Voters() (yesVoters, noVoters []string) {
	for id, yes := range v.ballots {
		if yes {
			yesVoters = append(yesVoters, id)
		} else {
			noVoters = append(noVoters, id)
		}
	}
	return yesVoters, noVoters
}
