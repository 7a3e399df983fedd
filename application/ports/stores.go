package ports

import (
	"context"

	"marketloop-backend/domain/core/entities"
)

// ProfileStore reads member profiles.
type ProfileStore interface {
	// FindProfileByUserID returns the profile for a user, or nil when the
	// user has not created one.
	FindProfileByUserID(ctx context.Context, userID int64) (*entities.Profile, error)
}

// MembershipStore reads group memberships.
type MembershipStore interface {
	// FindMembershipsByUserID returns every membership of a user, any
	// status, with the group preloaded.
	FindMembershipsByUserID(ctx context.Context, userID int64) ([]entities.Membership, error)

	// FindActiveMembersByGroupIDs returns active memberships in the given
	// groups, excluding the given user ids, with user and profile preloaded.
	// The limit is an overfetch guard, not an exact result size.
	FindActiveMembersByGroupIDs(ctx context.Context, groupIDs []int64, excludedUserIDs []int64, limit int) ([]entities.Membership, error)
}

// ConnectionStore reads connection edges.
type ConnectionStore interface {
	// FindConnectionsInvolving returns every edge where the user is either
	// the requester or the addressee.
	FindConnectionsInvolving(ctx context.Context, userID int64) ([]entities.ConnectionEdge, error)
}

// RankingStore reads globally popular profiles.
type RankingStore interface {
	// FindTopProfilesByFollowersThenLikes returns users ordered by follower
	// count descending then like count descending, excluding the given ids,
	// with the profile preloaded.
	FindTopProfilesByFollowersThenLikes(ctx context.Context, excludedUserIDs []int64, limit int) ([]entities.User, error)
}

// GroupStore reads groups.
type GroupStore interface {
	// FindGroupsExcluding returns groups whose id is not in the given list,
	// annotated with their active member count, ordered by that count
	// descending then creation time descending.
	FindGroupsExcluding(ctx context.Context, excludedGroupIDs []int64, limit int) ([]entities.Group, error)
}

// PostStore reads feed posts.
type PostStore interface {
	// FindRecentPosts returns the newest posts first, with author and
	// profile preloaded.
	FindRecentPosts(ctx context.Context, limit int) ([]entities.Post, error)
}
