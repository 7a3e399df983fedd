package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketloop-backend/domain/core/entities"
	"marketloop-backend/domain/core/valueobjects"
	"marketloop-backend/tests/fixtures"
	"marketloop-backend/tests/mocks"
)

func TestGroupSuggestionBuilder_BuildsSuggestions(t *testing.T) {
	// Arrange
	viewerCtx := entities.EmptyViewerContext()
	viewerCtx.Interests = valueobjects.NewTokenSet("craft")

	groups := []entities.Group{
		fixtures.NewGroupBuilder().WithID(11).WithName("Makers Market").
			WithFocusAreas("craft, sustainability").
			WithMemberPolicy("approval").
			WithActiveMemberCount(128).
			Build(),
		fixtures.NewGroupBuilder().WithID(12).WithName("Freelance Founders").
			WithActiveMemberCount(40).
			Build(),
	}

	mockGroups := new(mocks.MockGroupStore)
	mockGroups.On("FindGroupsExcluding", mock.Anything, []int64{}, 3).Return(groups, nil)

	builder := NewGroupSuggestionBuilder(mockGroups, zap.NewNop())

	// Act
	suggestions, err := builder.Build(context.Background(), viewerCtx, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	first := suggestions[0]
	assert.Equal(t, "group:11", first.ID)
	assert.Equal(t, []string{"craft", "sustainability"}, first.Focus)
	assert.Equal(t, 128, first.MemberCount)
	assert.True(t, first.JoinRequiresApproval)
	assert.Equal(t, "available", first.Status)
	assert.Equal(t, "Aligned with your interest in craft.", first.Reason)

	second := suggestions[1]
	assert.False(t, second.JoinRequiresApproval)
	assert.Equal(t, "40 members are already active here.", second.Reason)
	mockGroups.AssertExpectations(t)
}

func TestGroupSuggestionBuilder_ExcludesActiveGroupsOnly(t *testing.T) {
	// Arrange: the viewer has one active and one pending membership; only
	// the active one is excluded from the query, and the pending one keeps
	// its status in the suggestion.
	viewerCtx := entities.EmptyViewerContext()
	viewerCtx.ActiveMemberships = []entities.Membership{
		fixtures.NewMembershipBuilder().WithGroupID(10).Build(),
	}
	viewerCtx.MembershipStatus = map[int64]string{10: "active", 11: "pending"}

	pendingGroup := fixtures.NewGroupBuilder().WithID(11).WithName("Makers Market").Build()

	mockGroups := new(mocks.MockGroupStore)
	mockGroups.On("FindGroupsExcluding", mock.Anything, []int64{10}, 3).
		Return([]entities.Group{pendingGroup}, nil)

	builder := NewGroupSuggestionBuilder(mockGroups, zap.NewNop())

	// Act
	suggestions, err := builder.Build(context.Background(), viewerCtx, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "pending", suggestions[0].Status)
	mockGroups.AssertExpectations(t)
}

func TestGroupSuggestionBuilder_DeduplicatesAndCaps(t *testing.T) {
	// Arrange
	viewerCtx := entities.EmptyViewerContext()
	groups := []entities.Group{
		fixtures.NewGroupBuilder().WithID(11).Build(),
		fixtures.NewGroupBuilder().WithID(11).Build(),
		fixtures.NewGroupBuilder().WithID(12).Build(),
		fixtures.NewGroupBuilder().WithID(13).Build(),
		fixtures.NewGroupBuilder().WithID(14).Build(),
	}

	mockGroups := new(mocks.MockGroupStore)
	mockGroups.On("FindGroupsExcluding", mock.Anything, mock.Anything, mock.Anything).Return(groups, nil)

	builder := NewGroupSuggestionBuilder(mockGroups, zap.NewNop())

	// Act
	suggestions, err := builder.Build(context.Background(), viewerCtx, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, suggestions, 3)
	assert.Equal(t, int64(11), suggestions[0].GroupID)
	assert.Equal(t, int64(12), suggestions[1].GroupID)
	assert.Equal(t, int64(13), suggestions[2].GroupID)
}

func TestGroupSuggestionBuilder_EmptyGroupFallsBackToTrendingReason(t *testing.T) {
	// Arrange
	viewerCtx := entities.EmptyViewerContext()
	group := fixtures.NewGroupBuilder().WithID(11).WithActiveMemberCount(0).Build()

	mockGroups := new(mocks.MockGroupStore)
	mockGroups.On("FindGroupsExcluding", mock.Anything, mock.Anything, mock.Anything).
		Return([]entities.Group{group}, nil)

	builder := NewGroupSuggestionBuilder(mockGroups, zap.NewNop())

	// Act
	suggestions, err := builder.Build(context.Background(), viewerCtx, 3)

	// Assert
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Trending across the community.", suggestions[0].Reason)
}

func TestGroupSuggestionBuilder_StoreFailurePropagates(t *testing.T) {
	// Arrange
	storeErr := errors.New("query timeout")
	mockGroups := new(mocks.MockGroupStore)
	mockGroups.On("FindGroupsExcluding", mock.Anything, mock.Anything, mock.Anything).Return(nil, storeErr)

	builder := NewGroupSuggestionBuilder(mockGroups, zap.NewNop())

	// Act
	suggestions, err := builder.Build(context.Background(), entities.EmptyViewerContext(), 3)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, suggestions)
}
