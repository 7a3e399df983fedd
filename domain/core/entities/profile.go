package entities

// Profile is a plain snapshot of a member's public profile. Store adapters
// map their records onto this shape at the boundary, so the recommendation
// pipeline never sees driver-specific types. The free-text interest fields
// keep whatever shape the client stored (string, array, object) and are only
// interpreted through token extraction.
type Profile struct {
	UserID         int64
	Name           string
	Headline       string
	Location       string
	Company        string
	FollowersCount int
	LikesCount     int

	Skills                 any
	FocusAreas             any
	EngagementTopics       any
	CollaborationInterests any
	ImpactAreas            any
}

// InterestSources returns the free-text fields that feed interest token
// extraction, in a fixed order.
func (p *Profile) InterestSources() []any {
	return []any{
		p.Skills,
		p.FocusAreas,
		p.EngagementTopics,
		p.CollaborationInterests,
		p.ImpactAreas,
	}
}
