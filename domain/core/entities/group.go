package entities

import (
	"strings"
	"time"

	"marketloop-backend/domain/core/valueobjects"
)

// GroupPolicyOpen is the member policy that lets anyone join without approval.
const GroupPolicyOpen = "open"

// Group is a plain snapshot of a community group. ActiveMemberCount is
// annotated by the store when the query asks for it.
type Group struct {
	ID                int64
	Name              string
	Summary           string
	Location          string
	FocusAreas        any
	Topics            any
	MemberPolicy      string
	ActiveMemberCount int
	CreatedAt         time.Time
}

// FocusTokens derives up to max focus tokens from the group's metadata.
func (g *Group) FocusTokens(max int) []string {
	set := valueobjects.ExtractTokenSet(g.FocusAreas)
	set = set.UnionTokens(valueobjects.ExtractTokens(g.Topics))
	return set.Capped(max)
}

// InterestTokens returns the tokens the group contributes to a member's
// interest set: its focus metadata plus its own name.
func (g *Group) InterestTokens() []string {
	set := valueobjects.ExtractTokenSet(g.FocusAreas)
	set = set.UnionTokens(valueobjects.ExtractTokens(g.Topics))
	set = set.UnionTokens(valueobjects.ExtractTokens(g.Name))
	return set.List()
}

// JoinRequiresApproval reports whether joining needs moderator approval.
// True whenever a member policy is set and is not "open".
func (g *Group) JoinRequiresApproval() bool {
	return g.MemberPolicy != "" && !strings.EqualFold(g.MemberPolicy, GroupPolicyOpen)
}
