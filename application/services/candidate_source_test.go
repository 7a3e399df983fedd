package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketloop-backend/domain/core/entities"
	"marketloop-backend/tests/fixtures"
	"marketloop-backend/tests/mocks"
)

func newSource(memberships *mocks.MockMembershipStore, ranking *mocks.MockRankingStore) *CandidateSource {
	return NewCandidateSource(memberships, ranking, StaticTuning(DefaultTuning()), zap.NewNop())
}

func TestCandidateSource_GroupCandidates_EmptyGroupListSkipsStore(t *testing.T) {
	// Arrange
	mockMemberships := new(mocks.MockMembershipStore)
	source := newSource(mockMemberships, new(mocks.MockRankingStore))

	// Act
	candidates, err := source.GroupCandidates(context.Background(), nil, []int64{1}, 6)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, candidates)
	mockMemberships.AssertNotCalled(t, "FindActiveMembersByGroupIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCandidateSource_GroupCandidates_AggregatesSharedGroups(t *testing.T) {
	// Arrange
	designGuild := fixtures.NewGroupBuilder().WithID(10).WithName("Design Guild").Build()
	makersMarket := fixtures.NewGroupBuilder().WithID(11).WithName("Makers Market").Build()
	chi := fixtures.NewUserBuilder().WithID(7).WithName("Chi Nguyen").
		WithProfile(fixtures.NewProfileBuilder().WithUserID(7).WithFollowers(180).WithLikes(400).Build()).
		Build()
	dee := fixtures.NewUserBuilder().WithID(8).WithName("Dee Okafor").Build()

	members := []entities.Membership{
		fixtures.NewMembershipBuilder().WithGroupID(10).WithUserID(7).WithGroup(designGuild).WithUser(chi).Build(),
		fixtures.NewMembershipBuilder().WithGroupID(11).WithUserID(7).WithGroup(makersMarket).WithUser(chi).Build(),
		fixtures.NewMembershipBuilder().WithGroupID(10).WithUserID(8).WithGroup(designGuild).WithUser(dee).Build(),
	}

	mockMemberships := new(mocks.MockMembershipStore)
	// limit 6 with the default overfetch factor of 8
	mockMemberships.On("FindActiveMembersByGroupIDs", mock.Anything, []int64{10, 11}, []int64{1}, 48).
		Return(members, nil)

	source := newSource(mockMemberships, new(mocks.MockRankingStore))

	// Act
	candidates, err := source.GroupCandidates(context.Background(), []int64{10, 11}, []int64{1}, 6)

	// Assert
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, int64(7), candidates[0].UserID)
	assert.Equal(t, []string{"Design Guild", "Makers Market"}, candidates[0].SharedGroups)
	assert.Equal(t, 180, candidates[0].FollowersCount)
	assert.Equal(t, 400, candidates[0].LikesCount)
	assert.Equal(t, int64(8), candidates[1].UserID)
	assert.Equal(t, []string{"Design Guild"}, candidates[1].SharedGroups)
	mockMemberships.AssertExpectations(t)
}

func TestCandidateSource_GroupCandidates_SkipsMembershipsWithoutUser(t *testing.T) {
	// Arrange
	members := []entities.Membership{
		fixtures.NewMembershipBuilder().WithGroupID(10).WithUserID(7).Build(),
	}
	mockMemberships := new(mocks.MockMembershipStore)
	mockMemberships.On("FindActiveMembersByGroupIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(members, nil)

	source := newSource(mockMemberships, new(mocks.MockRankingStore))

	// Act
	candidates, err := source.GroupCandidates(context.Background(), []int64{10}, nil, 6)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestCandidateSource_TrendingCandidates_MapsUsers(t *testing.T) {
	// Arrange
	bo := fixtures.NewUserBuilder().WithID(2).WithName("Bo Lindqvist").
		WithProfile(fixtures.NewProfileBuilder().WithUserID(2).WithFollowers(310).WithLikes(95).Build()).
		Build()

	mockRanking := new(mocks.MockRankingStore)
	// limit 6 with the default overfetch factor of 4
	mockRanking.On("FindTopProfilesByFollowersThenLikes", mock.Anything, []int64{1}, 24).
		Return([]entities.User{bo}, nil)

	source := newSource(new(mocks.MockMembershipStore), mockRanking)

	// Act
	candidates, err := source.TrendingCandidates(context.Background(), []int64{1}, 6)

	// Assert
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(2), candidates[0].UserID)
	assert.Equal(t, "Bo Lindqvist", candidates[0].Name)
	assert.Equal(t, 310, candidates[0].FollowersCount)
	assert.Empty(t, candidates[0].SharedGroups)
	mockRanking.AssertExpectations(t)
}

func TestCandidateSource_TrendingCandidates_DropsUsersBelowFollowerFloor(t *testing.T) {
	// Arrange
	bo := fixtures.NewUserBuilder().WithID(2).
		WithProfile(fixtures.NewProfileBuilder().WithUserID(2).WithFollowers(310).Build()).
		Build()
	eli := fixtures.NewUserBuilder().WithID(5).
		WithProfile(fixtures.NewProfileBuilder().WithUserID(5).WithFollowers(12).Build()).
		Build()
	noProfile := fixtures.NewUserBuilder().WithID(6).Build()

	mockRanking := new(mocks.MockRankingStore)
	mockRanking.On("FindTopProfilesByFollowersThenLikes", mock.Anything, mock.Anything, mock.Anything).
		Return([]entities.User{bo, eli, noProfile}, nil)

	tuning := DefaultTuning()
	tuning.TrendingMinFollows = 50
	source := NewCandidateSource(new(mocks.MockMembershipStore), mockRanking, StaticTuning(tuning), zap.NewNop())

	// Act
	candidates, err := source.TrendingCandidates(context.Background(), nil, 6)

	// Assert
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(2), candidates[0].UserID)
}

func TestCandidateSource_TrendingCandidates_ZeroFloorKeepsEveryone(t *testing.T) {
	// Arrange
	noProfile := fixtures.NewUserBuilder().WithID(6).Build()
	mockRanking := new(mocks.MockRankingStore)
	mockRanking.On("FindTopProfilesByFollowersThenLikes", mock.Anything, mock.Anything, mock.Anything).
		Return([]entities.User{noProfile}, nil)

	tuning := DefaultTuning()
	tuning.TrendingMinFollows = 0
	source := NewCandidateSource(new(mocks.MockMembershipStore), mockRanking, StaticTuning(tuning), zap.NewNop())

	// Act
	candidates, err := source.TrendingCandidates(context.Background(), nil, 6)

	// Assert
	require.NoError(t, err)
	require.Len(t, candidates, 1)
}
