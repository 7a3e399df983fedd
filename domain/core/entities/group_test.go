package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup_FocusTokensCapsAndMergesMetadata(t *testing.T) {
	group := Group{
		FocusAreas: "design, branding, craft",
		Topics:     []any{"critique", "pricing"},
	}

	assert.Equal(t, []string{"design", "branding", "craft", "critique"}, group.FocusTokens(4))
}

func TestGroup_InterestTokensIncludeGroupName(t *testing.T) {
	group := Group{Name: "Design Guild", FocusAreas: "design"}

	assert.Equal(t, []string{"design", "design guild"}, group.InterestTokens())
}

func TestGroup_JoinRequiresApproval(t *testing.T) {
	assert.False(t, (&Group{}).JoinRequiresApproval())
	assert.False(t, (&Group{MemberPolicy: "open"}).JoinRequiresApproval())
	assert.False(t, (&Group{MemberPolicy: "Open"}).JoinRequiresApproval())
	assert.True(t, (&Group{MemberPolicy: "approval"}).JoinRequiresApproval())
	assert.True(t, (&Group{MemberPolicy: "invite"}).JoinRequiresApproval())
}
