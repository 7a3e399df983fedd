package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"marketloop-backend/domain/core/entities"
)

// MockProfileStore mocks ports.ProfileStore
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) FindProfileByUserID(ctx context.Context, userID int64) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	var profile *entities.Profile
	if v := args.Get(0); v != nil {
		profile = v.(*entities.Profile)
	}
	return profile, args.Error(1)
}

// MockMembershipStore mocks ports.MembershipStore
type MockMembershipStore struct {
	mock.Mock
}

func (m *MockMembershipStore) FindMembershipsByUserID(ctx context.Context, userID int64) ([]entities.Membership, error) {
	args := m.Called(ctx, userID)
	var memberships []entities.Membership
	if v := args.Get(0); v != nil {
		memberships = v.([]entities.Membership)
	}
	return memberships, args.Error(1)
}

func (m *MockMembershipStore) FindActiveMembersByGroupIDs(ctx context.Context, groupIDs []int64, excludedUserIDs []int64, limit int) ([]entities.Membership, error) {
	args := m.Called(ctx, groupIDs, excludedUserIDs, limit)
	var memberships []entities.Membership
	if v := args.Get(0); v != nil {
		memberships = v.([]entities.Membership)
	}
	return memberships, args.Error(1)
}

// MockConnectionStore mocks ports.ConnectionStore
type MockConnectionStore struct {
	mock.Mock
}

func (m *MockConnectionStore) FindConnectionsInvolving(ctx context.Context, userID int64) ([]entities.ConnectionEdge, error) {
	args := m.Called(ctx, userID)
	var edges []entities.ConnectionEdge
	if v := args.Get(0); v != nil {
		edges = v.([]entities.ConnectionEdge)
	}
	return edges, args.Error(1)
}

// MockRankingStore mocks ports.RankingStore
type MockRankingStore struct {
	mock.Mock
}

func (m *MockRankingStore) FindTopProfilesByFollowersThenLikes(ctx context.Context, excludedUserIDs []int64, limit int) ([]entities.User, error) {
	args := m.Called(ctx, excludedUserIDs, limit)
	var users []entities.User
	if v := args.Get(0); v != nil {
		users = v.([]entities.User)
	}
	return users, args.Error(1)
}

// MockGroupStore mocks ports.GroupStore
type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) FindGroupsExcluding(ctx context.Context, excludedGroupIDs []int64, limit int) ([]entities.Group, error) {
	args := m.Called(ctx, excludedGroupIDs, limit)
	var groups []entities.Group
	if v := args.Get(0); v != nil {
		groups = v.([]entities.Group)
	}
	return groups, args.Error(1)
}

// MockPostStore mocks ports.PostStore
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) FindRecentPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	args := m.Called(ctx, limit)
	var posts []entities.Post
	if v := args.Get(0); v != nil {
		posts = v.([]entities.Post)
	}
	return posts, args.Error(1)
}
