package entities

import (
	"sort"

	"marketloop-backend/domain/core/valueobjects"
)

// ViewerContext holds everything the suggestion pipeline needs to know about
// the requesting viewer. It is built once per orchestration call and never
// mutated afterwards.
type ViewerContext struct {
	ViewerID          *int64
	Profile           *Profile
	ActiveMemberships []Membership

	// MembershipStatus indexes every membership by group id, any status.
	MembershipStatus map[int64]string

	// ConnectionStatus maps counterpart user id to "accepted" or "pending".
	// Other edge statuses are absent.
	ConnectionStatus map[int64]string

	Interests valueobjects.TokenSet
}

// EmptyViewerContext returns the context for an anonymous viewer.
func EmptyViewerContext() *ViewerContext {
	return &ViewerContext{
		MembershipStatus: map[int64]string{},
		ConnectionStatus: map[int64]string{},
		Interests:        valueobjects.NewTokenSet(),
	}
}

// ActiveGroupIDs returns the ids of the viewer's active groups, in
// membership order.
func (c *ViewerContext) ActiveGroupIDs() []int64 {
	ids := make([]int64, 0, len(c.ActiveMemberships))
	for _, m := range c.ActiveMemberships {
		ids = append(ids, m.GroupID)
	}
	return ids
}

// ExclusionSet returns the user ids that must never be suggested: the viewer
// and every counterpart with an accepted or pending connection. Counterparts
// are sorted so the set is deterministic.
func (c *ViewerContext) ExclusionSet() []int64 {
	ids := []int64{}
	if c.ViewerID != nil {
		ids = append(ids, *c.ViewerID)
	}
	counterparts := make([]int64, 0, len(c.ConnectionStatus))
	for userID := range c.ConnectionStatus {
		counterparts = append(counterparts, userID)
	}
	sort.Slice(counterparts, func(i, j int) bool { return counterparts[i] < counterparts[j] })
	return append(ids, counterparts...)
}

// StatusFor maps a candidate's connection state to its suggestion status.
func (c *ViewerContext) StatusFor(userID int64) string {
	switch c.ConnectionStatus[userID] {
	case ConnectionStatusAccepted:
		return "connected"
	case ConnectionStatusPending:
		return "pending"
	default:
		return "available"
	}
}
