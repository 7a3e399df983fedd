package services

import (
	"fmt"
	"sort"

	"marketloop-backend/application/queries"
	"marketloop-backend/domain/core/entities"
)

// CandidateScorer merges candidate lists, computes the weighted relevance
// score and produces the ranked, capped connection suggestion list. Scoring
// is pure computation over already-fetched data.
type CandidateScorer struct {
	tuning TuningProvider
}

// NewCandidateScorer creates a new candidate scorer.
func NewCandidateScorer(tuning TuningProvider) *CandidateScorer {
	return &CandidateScorer{tuning: tuning}
}

type scoredCandidate struct {
	entities.Candidate
	sharedFocus []string
	score       int
}

// Rank deduplicates the concatenated candidate lists, scores each unique
// candidate against the viewer's interests and returns at most limit
// suggestions, best first. Ties keep input order, then user id ascending so
// the ranking is fully deterministic. The internal score never leaves this
// function.
func (s *CandidateScorer) Rank(viewer *entities.ViewerContext, limit int, lists ...[]entities.Candidate) []queries.ConnectionSuggestion {
	tuning := s.tuning()
	merged := entities.MergeCandidates(lists...)

	scored := make([]scoredCandidate, 0, len(merged))
	for _, candidate := range merged {
		sharedFocus := viewer.Interests.Overlap(candidate.SharedGroups)
		profileScore := candidate.FollowersCount*tuning.FollowerWeight + candidate.LikesCount*tuning.LikeWeight
		overlapScore := len(candidate.SharedGroups) * tuning.SharedGroupWeight
		focusScore := len(sharedFocus) * tuning.SharedFocusWeight
		scored = append(scored, scoredCandidate{
			Candidate:   candidate,
			sharedFocus: sharedFocus,
			score:       profileScore + overlapScore + focusScore,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].UserID < scored[j].UserID
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	suggestions := make([]queries.ConnectionSuggestion, 0, len(scored))
	for _, candidate := range scored {
		suggestions = append(suggestions, queries.ConnectionSuggestion{
			ID:                fmt.Sprintf("user:%d", candidate.UserID),
			UserID:            candidate.UserID,
			Name:              candidate.Name,
			Headline:          candidate.Headline,
			Location:          candidate.Location,
			MutualConnections: mutualConnections(viewer, candidate.Candidate),
			SharedGroups:      sharedGroupsOrEmpty(candidate.SharedGroups),
			Status:            viewer.StatusFor(candidate.UserID),
			Reason:            connectionReason(candidate.SharedGroups, candidate.FollowersCount),
		})
	}
	return suggestions
}

// mutualConnections is a deterministic proxy: co-membership in shared groups
// stands in for mutual-connection counting, bounded by how many accepted
// connections the viewer actually has.
func mutualConnections(viewer *entities.ViewerContext, candidate entities.Candidate) int {
	if len(candidate.SharedGroups) == 0 {
		return 0
	}
	accepted := 0
	for _, status := range viewer.ConnectionStatus {
		if status == entities.ConnectionStatusAccepted {
			accepted++
		}
	}
	if accepted < len(candidate.SharedGroups) {
		return accepted
	}
	return len(candidate.SharedGroups)
}

// connectionReason builds the human-readable reason line. Shared-group
// phrasing wins over the follower-count fallback, which wins over the
// generic activity line.
func connectionReason(sharedGroups []string, followers int) string {
	switch {
	case len(sharedGroups) == 1:
		return fmt.Sprintf("You both participate in %s — continue the conversation.", sharedGroups[0])
	case len(sharedGroups) > 1:
		return fmt.Sprintf("You both participate in %s and %d other groups — continue the conversation.", sharedGroups[0], len(sharedGroups)-1)
	case followers > 0:
		return fmt.Sprintf("Followed by %d people across the community.", followers)
	default:
		return "Active this week — a good time to reach out."
	}
}

func sharedGroupsOrEmpty(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
