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
	"marketloop-backend/tests/fixtures"
	"marketloop-backend/tests/mocks"
)

func newLoader(profiles *mocks.MockProfileStore, memberships *mocks.MockMembershipStore, connections *mocks.MockConnectionStore) *ViewerContextLoader {
	return NewViewerContextLoader(profiles, memberships, connections, zap.NewNop())
}

func TestViewerContextLoader_AnonymousViewerShortCircuits(t *testing.T) {
	// Arrange
	mockProfiles := new(mocks.MockProfileStore)
	mockMemberships := new(mocks.MockMembershipStore)
	mockConnections := new(mocks.MockConnectionStore)
	loader := newLoader(mockProfiles, mockMemberships, mockConnections)

	// Act
	viewerCtx, err := loader.Load(context.Background(), nil)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, viewerCtx)
	assert.Nil(t, viewerCtx.Profile)
	assert.Empty(t, viewerCtx.ActiveMemberships)
	assert.Empty(t, viewerCtx.MembershipStatus)
	assert.Empty(t, viewerCtx.ConnectionStatus)
	assert.Zero(t, viewerCtx.Interests.Len())
	mockProfiles.AssertNotCalled(t, "FindProfileByUserID", mock.Anything, mock.Anything)
	mockMemberships.AssertNotCalled(t, "FindMembershipsByUserID", mock.Anything, mock.Anything)
	mockConnections.AssertNotCalled(t, "FindConnectionsInvolving", mock.Anything, mock.Anything)
}

func TestViewerContextLoader_BuildsContext(t *testing.T) {
	// Arrange
	viewerID := int64(1)
	profile := fixtures.NewProfileBuilder().
		WithUserID(1).
		WithSkills("branding, typography").
		Build()

	designGuild := fixtures.NewGroupBuilder().
		WithID(10).
		WithName("Design Guild").
		WithFocusAreas("design").
		Build()
	makersMarket := fixtures.NewGroupBuilder().
		WithID(11).
		WithName("Makers Market").
		WithFocusAreas("craft").
		Build()

	memberships := []entities.Membership{
		fixtures.NewMembershipBuilder().WithGroupID(10).WithUserID(1).WithGroup(designGuild).Build(),
		fixtures.NewMembershipBuilder().WithGroupID(11).WithUserID(1).WithStatus("pending").WithGroup(makersMarket).Build(),
	}
	edges := []entities.ConnectionEdge{
		{RequesterID: 1, AddresseeID: 2, Status: entities.ConnectionStatusAccepted},
		{RequesterID: 3, AddresseeID: 1, Status: entities.ConnectionStatusPending},
		{RequesterID: 1, AddresseeID: 4, Status: "declined"},
	}

	mockProfiles := new(mocks.MockProfileStore)
	mockMemberships := new(mocks.MockMembershipStore)
	mockConnections := new(mocks.MockConnectionStore)
	mockProfiles.On("FindProfileByUserID", mock.Anything, viewerID).Return(&profile, nil)
	mockMemberships.On("FindMembershipsByUserID", mock.Anything, viewerID).Return(memberships, nil)
	mockConnections.On("FindConnectionsInvolving", mock.Anything, viewerID).Return(edges, nil)

	loader := newLoader(mockProfiles, mockMemberships, mockConnections)

	// Act
	viewerCtx, err := loader.Load(context.Background(), &viewerID)

	// Assert
	require.NoError(t, err)

	// Only the active membership feeds candidate sourcing
	require.Len(t, viewerCtx.ActiveMemberships, 1)
	assert.Equal(t, int64(10), viewerCtx.ActiveMemberships[0].GroupID)
	assert.Equal(t, []int64{10}, viewerCtx.ActiveGroupIDs())

	// The status index covers all memberships, any status
	assert.Equal(t, map[int64]string{10: "active", 11: "pending"}, viewerCtx.MembershipStatus)

	// Declined edges leave the counterpart eligible
	assert.Equal(t, map[int64]string{2: "accepted", 3: "pending"}, viewerCtx.ConnectionStatus)

	// Interests union profile fields with active group metadata and name
	interests := viewerCtx.Interests
	assert.True(t, interests.Contains("branding"))
	assert.True(t, interests.Contains("typography"))
	assert.True(t, interests.Contains("design"))
	assert.True(t, interests.Contains("design guild"))
	assert.False(t, interests.Contains("craft"), "pending membership must not feed interests")

	mockProfiles.AssertExpectations(t)
	mockMemberships.AssertExpectations(t)
	mockConnections.AssertExpectations(t)
}

func TestViewerContextLoader_MissingProfileIsNotAnError(t *testing.T) {
	// Arrange
	viewerID := int64(1)
	mockProfiles := new(mocks.MockProfileStore)
	mockMemberships := new(mocks.MockMembershipStore)
	mockConnections := new(mocks.MockConnectionStore)
	mockProfiles.On("FindProfileByUserID", mock.Anything, viewerID).Return(nil, nil)
	mockMemberships.On("FindMembershipsByUserID", mock.Anything, viewerID).Return([]entities.Membership{}, nil)
	mockConnections.On("FindConnectionsInvolving", mock.Anything, viewerID).Return([]entities.ConnectionEdge{}, nil)

	loader := newLoader(mockProfiles, mockMemberships, mockConnections)

	// Act
	viewerCtx, err := loader.Load(context.Background(), &viewerID)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, viewerCtx.Profile)
	assert.Zero(t, viewerCtx.Interests.Len())
}

func TestViewerContextLoader_StoreFailurePropagatesUnchanged(t *testing.T) {
	// Arrange
	viewerID := int64(1)
	storeErr := errors.New("connection refused")

	mockProfiles := new(mocks.MockProfileStore)
	mockMemberships := new(mocks.MockMembershipStore)
	mockConnections := new(mocks.MockConnectionStore)
	mockProfiles.On("FindProfileByUserID", mock.Anything, viewerID).Return(nil, nil).Maybe()
	mockMemberships.On("FindMembershipsByUserID", mock.Anything, viewerID).Return(nil, storeErr)
	mockConnections.On("FindConnectionsInvolving", mock.Anything, viewerID).Return([]entities.ConnectionEdge{}, nil).Maybe()

	loader := newLoader(mockProfiles, mockMemberships, mockConnections)

	// Act
	viewerCtx, err := loader.Load(context.Background(), &viewerID)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, viewerCtx)
}
