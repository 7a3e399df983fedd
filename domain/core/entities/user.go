package entities

// User is a plain account snapshot. Profile is preloaded by the store when
// the query asks for it and may be nil otherwise.
type User struct {
	ID      int64
	Email   string
	Name    string
	Profile *Profile
}

// DisplayName returns the best human-readable name for the user.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Profile != nil && u.Profile.Name != "" {
		return u.Profile.Name
	}
	return ""
}
