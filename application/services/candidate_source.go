package services

import (
	"context"

	"go.uber.org/zap"

	"marketloop-backend/application/ports"
	"marketloop-backend/domain/core/entities"
)

// CandidateSource produces unscored connection candidates from two
// independent signals: co-membership in the viewer's active groups and
// global popularity. Both deliberately overfetch so that deduplication and
// ranking further down the pipeline cannot starve the final list.
type CandidateSource struct {
	memberships ports.MembershipStore
	ranking     ports.RankingStore
	tuning      TuningProvider
	logger      *zap.Logger
}

// NewCandidateSource creates a new candidate source.
func NewCandidateSource(
	memberships ports.MembershipStore,
	ranking ports.RankingStore,
	tuning TuningProvider,
	logger *zap.Logger,
) *CandidateSource {
	return &CandidateSource{
		memberships: memberships,
		ranking:     ranking,
		tuning:      tuning,
		logger:      logger,
	}
}

// GroupCandidates returns members who share an active group with the viewer,
// one candidate per user with the shared group names unioned. An empty group
// list returns nothing without querying the store.
func (s *CandidateSource) GroupCandidates(ctx context.Context, groupIDs []int64, excludedUserIDs []int64, limit int) ([]entities.Candidate, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	overfetch := limit * s.tuning().GroupOverfetch
	members, err := s.memberships.FindActiveMembersByGroupIDs(ctx, groupIDs, excludedUserIDs, overfetch)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]int)
	candidates := []entities.Candidate{}
	for _, m := range members {
		if m.User == nil {
			continue
		}
		groupName := ""
		if m.Group != nil {
			groupName = m.Group.Name
		}
		if i, ok := byID[m.UserID]; ok {
			if groupName != "" {
				candidates[i].SharedGroups = appendGroupName(candidates[i].SharedGroups, groupName)
			}
			continue
		}
		candidate := candidateFromUser(m.User)
		if groupName != "" {
			candidate.SharedGroups = []string{groupName}
		}
		byID[m.UserID] = len(candidates)
		candidates = append(candidates, candidate)
	}

	s.logger.Debug("Group candidates sourced",
		zap.Int("groups", len(groupIDs)),
		zap.Int("members", len(members)),
		zap.Int("candidates", len(candidates)),
	)

	return candidates, nil
}

// TrendingCandidates returns the globally most-followed profiles outside the
// exclusion set. Users below the minimum follower floor are dropped so the
// trending signal never surfaces accounts nobody follows.
func (s *CandidateSource) TrendingCandidates(ctx context.Context, excludedUserIDs []int64, limit int) ([]entities.Candidate, error) {
	tuning := s.tuning()
	overfetch := limit * tuning.TrendingOverfetch
	users, err := s.ranking.FindTopProfilesByFollowersThenLikes(ctx, excludedUserIDs, overfetch)
	if err != nil {
		return nil, err
	}

	candidates := make([]entities.Candidate, 0, len(users))
	for i := range users {
		candidate := candidateFromUser(&users[i])
		if candidate.FollowersCount < tuning.TrendingMinFollows {
			continue
		}
		candidates = append(candidates, candidate)
	}

	s.logger.Debug("Trending candidates sourced", zap.Int("candidates", len(candidates)))

	return candidates, nil
}

func candidateFromUser(user *entities.User) entities.Candidate {
	candidate := entities.Candidate{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.DisplayName(),
	}
	if profile := user.Profile; profile != nil {
		candidate.Headline = profile.Headline
		candidate.Location = profile.Location
		candidate.Company = profile.Company
		candidate.FollowersCount = profile.FollowersCount
		candidate.LikesCount = profile.LikesCount
		if candidate.Name == "" {
			candidate.Name = profile.Name
		}
	}
	return candidate
}

func appendGroupName(names []string, name string) []string {
	for _, existing := range names {
		if existing == name {
			return names
		}
	}
	return append(names, name)
}
