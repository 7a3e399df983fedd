package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"marketloop-backend/application/ports"
	"marketloop-backend/domain/core/entities"
	"marketloop-backend/domain/core/valueobjects"
)

// ViewerContextLoader builds the per-request viewer context: profile,
// memberships, connection edges and the derived interest token set.
type ViewerContextLoader struct {
	profiles    ports.ProfileStore
	memberships ports.MembershipStore
	connections ports.ConnectionStore
	logger      *zap.Logger
}

// NewViewerContextLoader creates a new viewer context loader.
func NewViewerContextLoader(
	profiles ports.ProfileStore,
	memberships ports.MembershipStore,
	connections ports.ConnectionStore,
	logger *zap.Logger,
) *ViewerContextLoader {
	return &ViewerContextLoader{
		profiles:    profiles,
		memberships: memberships,
		connections: connections,
		logger:      logger,
	}
}

// Load builds the viewer context. Anonymous viewers (nil id) short-circuit to
// an empty context without touching the store. The three reads are
// independent and run concurrently; any store failure fails the whole load.
func (l *ViewerContextLoader) Load(ctx context.Context, viewerID *int64) (*entities.ViewerContext, error) {
	if viewerID == nil {
		return entities.EmptyViewerContext(), nil
	}

	var (
		profile     *entities.Profile
		memberships []entities.Membership
		edges       []entities.ConnectionEdge
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = l.profiles.FindProfileByUserID(gctx, *viewerID)
		return err
	})
	g.Go(func() error {
		var err error
		memberships, err = l.memberships.FindMembershipsByUserID(gctx, *viewerID)
		return err
	})
	g.Go(func() error {
		var err error
		edges, err = l.connections.FindConnectionsInvolving(gctx, *viewerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	viewerCtx := entities.EmptyViewerContext()
	viewerCtx.ViewerID = viewerID
	viewerCtx.Profile = profile

	for _, m := range memberships {
		viewerCtx.MembershipStatus[m.GroupID] = m.Status
		if m.IsActive() {
			viewerCtx.ActiveMemberships = append(viewerCtx.ActiveMemberships, m)
		}
	}

	for _, edge := range edges {
		switch edge.Status {
		case entities.ConnectionStatusAccepted, entities.ConnectionStatusPending:
			viewerCtx.ConnectionStatus[edge.CounterpartOf(*viewerID)] = edge.Status
		}
	}

	viewerCtx.Interests = deriveInterests(profile, viewerCtx.ActiveMemberships)

	l.logger.Debug("Viewer context loaded",
		zap.Int64("viewerID", *viewerID),
		zap.Int("activeMemberships", len(viewerCtx.ActiveMemberships)),
		zap.Int("connections", len(viewerCtx.ConnectionStatus)),
		zap.Int("interests", viewerCtx.Interests.Len()),
	)

	return viewerCtx, nil
}

// deriveInterests unions interest tokens from the profile's free-text fields
// and from the metadata of every active group. Malformed fields degrade to
// empty token lists, never to an error.
func deriveInterests(profile *entities.Profile, active []entities.Membership) valueobjects.TokenSet {
	interests := valueobjects.NewTokenSet()
	if profile != nil {
		for _, source := range profile.InterestSources() {
			interests = interests.UnionTokens(valueobjects.ExtractTokens(source))
		}
	}
	for _, m := range active {
		if m.Group == nil {
			continue
		}
		interests = interests.UnionTokens(m.Group.InterestTokens())
	}
	return interests
}
