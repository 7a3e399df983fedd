package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"marketloop-backend/application/ports"
	"marketloop-backend/application/queries"
	"marketloop-backend/domain/core/entities"
)

const maxGroupFocusTokens = 4

// GroupSuggestionBuilder ranks groups the viewer has not joined by member
// count and interest overlap.
type GroupSuggestionBuilder struct {
	groups ports.GroupStore
	logger *zap.Logger
}

// NewGroupSuggestionBuilder creates a new group suggestion builder.
func NewGroupSuggestionBuilder(groups ports.GroupStore, logger *zap.Logger) *GroupSuggestionBuilder {
	return &GroupSuggestionBuilder{groups: groups, logger: logger}
}

// Build returns at most limit group suggestions. The store excludes groups
// the viewer is actively a member of and orders by live active-member count
// descending then creation time descending; this builder annotates each
// group with focus tokens, interest overlap and a reason.
func (b *GroupSuggestionBuilder) Build(ctx context.Context, viewer *entities.ViewerContext, limit int) ([]queries.GroupSuggestion, error) {
	fetchLimit := limit
	if fetchLimit < 3 {
		fetchLimit = 3
	}

	groups, err := b.groups.FindGroupsExcluding(ctx, viewer.ActiveGroupIDs(), fetchLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]bool)
	suggestions := make([]queries.GroupSuggestion, 0, len(groups))
	for i := range groups {
		group := &groups[i]
		if seen[group.ID] {
			continue
		}
		seen[group.ID] = true

		focus := group.FocusTokens(maxGroupFocusTokens)
		shared := viewer.Interests.Overlap(focus)

		status := "available"
		if s, ok := viewer.MembershipStatus[group.ID]; ok {
			status = s
		}

		suggestions = append(suggestions, queries.GroupSuggestion{
			ID:                   fmt.Sprintf("group:%d", group.ID),
			GroupID:              group.ID,
			Name:                 group.Name,
			Summary:              group.Summary,
			Focus:                focus,
			Location:             group.Location,
			MemberCount:          group.ActiveMemberCount,
			Status:               status,
			JoinRequiresApproval: group.JoinRequiresApproval(),
			Reason:               groupReason(shared, group.ActiveMemberCount),
		})
		if len(suggestions) == limit {
			break
		}
	}

	b.logger.Debug("Group suggestions built",
		zap.Int("fetched", len(groups)),
		zap.Int("suggested", len(suggestions)),
	)

	return suggestions, nil
}

// groupReason prefers shared-focus phrasing over member-count phrasing over
// the generic trending line.
func groupReason(sharedFocus []string, memberCount int) string {
	switch {
	case len(sharedFocus) > 0:
		return fmt.Sprintf("Aligned with your interest in %s.", sharedFocus[0])
	case memberCount > 0:
		return fmt.Sprintf("%d members are already active here.", memberCount)
	default:
		return "Trending across the community."
	}
}
