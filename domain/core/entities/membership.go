package entities

// MembershipStatusActive marks the only membership status that feeds interest
// derivation and candidate sourcing. Other statuses still contribute to the
// viewer's membership-status index.
const MembershipStatusActive = "active"

// Membership links a user to a group. Group and User are preloaded by the
// store when the query asks for them and may be nil otherwise.
type Membership struct {
	GroupID int64
	UserID  int64
	Role    string
	Status  string
	Group   *Group
	User    *User
}

// IsActive reports whether this membership is active.
func (m *Membership) IsActive() bool {
	return m.Status == MembershipStatusActive
}
