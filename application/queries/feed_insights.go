package queries

import (
	"marketloop-backend/application/ports"
)

// FeedInsightsQuery is the request for the feed insights pipeline.
// ViewerID is nil for anonymous viewers. Limit zero means "not provided" and
// defaults to 6; positive values are clamped to [1, 24]; negative values are
// rejected with a validation error.
type FeedInsightsQuery struct {
	ViewerID *int64 `validate:"omitempty,gt=0"`
	Limit    int    `validate:"gte=0"`

	// Session optionally carries the caller's transactional read handle.
	Session ports.ReadSession `validate:"-"`
}

// ConnectionSuggestion is one ranked connection recommendation. The internal
// relevance score is stripped before this shape is built.
type ConnectionSuggestion struct {
	ID                string   `json:"id"`
	UserID            int64    `json:"userId"`
	Name              string   `json:"name"`
	Headline          string   `json:"headline,omitempty"`
	Location          string   `json:"location,omitempty"`
	MutualConnections int      `json:"mutualConnections"`
	SharedGroups      []string `json:"sharedGroups"`
	Status            string   `json:"status"`
	Reason            string   `json:"reason"`
}

// GroupSuggestion is one ranked group recommendation.
type GroupSuggestion struct {
	ID                   string   `json:"id"`
	GroupID              int64    `json:"groupId"`
	Name                 string   `json:"name"`
	Summary              string   `json:"summary,omitempty"`
	Focus                []string `json:"focus"`
	Location             string   `json:"location,omitempty"`
	MemberCount          int      `json:"memberCount"`
	Status               string   `json:"status"`
	JoinRequiresApproval bool     `json:"joinRequiresApproval"`
	Reason               string   `json:"reason"`
}

// Moment is one compact feed-post projection in the live activity feed.
type Moment struct {
	ID        string `json:"id"`
	PostID    int64  `json:"postId"`
	Title     string `json:"title"`
	Tag       string `json:"tag"`
	Icon      string `json:"icon"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

// FeedInsightsResult is the assembled feed insights payload.
type FeedInsightsResult struct {
	GeneratedAt           string                 `json:"generatedAt"`
	Interests             []string               `json:"interests"`
	ConnectionSuggestions []ConnectionSuggestion `json:"connectionSuggestions"`
	GroupSuggestions      []GroupSuggestion      `json:"groupSuggestions"`
	LiveMoments           []Moment               `json:"liveMoments"`
}
