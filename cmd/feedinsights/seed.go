package main

import (
	"time"

	"marketloop-backend/domain/core/entities"
	"marketloop-backend/infrastructure/persistence/memory"
)

// seedDemoStore builds a small marketplace dataset for local runs.
func seedDemoStore() *memory.Store {
	store := memory.NewStore()
	now := time.Now()

	users := []entities.User{
		{ID: 1, Email: "ana@example.com", Name: "Ana Ribeiro"},
		{ID: 2, Email: "bo@example.com", Name: "Bo Lindqvist"},
		{ID: 3, Email: "chi@example.com", Name: "Chi Nguyen"},
		{ID: 4, Email: "dee@example.com", Name: "Dee Okafor"},
		{ID: 5, Email: "eli@example.com", Name: "Eli Navarro"},
	}
	for _, user := range users {
		store.AddUser(user)
	}

	store.AddProfile(entities.Profile{
		UserID: 1, Name: "Ana Ribeiro", Headline: "Brand designer",
		Location: "Lisbon", Company: "Studio Norte",
		FollowersCount: 42, LikesCount: 120,
		Skills:     "branding, typography/illustration",
		FocusAreas: []any{"design", map[string]any{"name": "community building"}},
	})
	store.AddProfile(entities.Profile{
		UserID: 2, Name: "Bo Lindqvist", Headline: "Full-stack developer",
		Location: "Malmö", Company: "Fjord Labs",
		FollowersCount: 310, LikesCount: 95,
		Skills: "go|typescript|postgres",
	})
	store.AddProfile(entities.Profile{
		UserID: 3, Name: "Chi Nguyen", Headline: "Product photographer",
		Location: "Hanoi", FollowersCount: 180, LikesCount: 400,
		Skills: "photography, lighting", EngagementTopics: "design",
	})
	store.AddProfile(entities.Profile{
		UserID: 4, Name: "Dee Okafor", Headline: "Community manager",
		Location: "Lagos", Company: "Hive Collective",
		FollowersCount: 95, LikesCount: 60,
		CollaborationInterests: "events/workshops",
	})
	store.AddProfile(entities.Profile{
		UserID: 5, Name: "Eli Navarro", Headline: "Woodworker",
		Location: "Oaxaca", FollowersCount: 12, LikesCount: 30,
		ImpactAreas: "sustainability",
	})

	store.AddGroup(entities.Group{
		ID: 10, Name: "Design Guild", Summary: "Critique and craft for working designers",
		Location: "Remote", FocusAreas: "design, branding", Topics: "critique",
		MemberPolicy: "open", CreatedAt: now.AddDate(0, -8, 0),
	})
	store.AddGroup(entities.Group{
		ID: 11, Name: "Makers Market", Summary: "Sell what you make",
		FocusAreas: "craft, sustainability", MemberPolicy: "approval",
		CreatedAt: now.AddDate(0, -3, 0),
	})
	store.AddGroup(entities.Group{
		ID: 12, Name: "Freelance Founders", Summary: "Running a one-person business",
		FocusAreas: "freelancing, pricing", CreatedAt: now.AddDate(0, -1, 0),
	})

	memberships := []entities.Membership{
		{GroupID: 10, UserID: 1, Role: "member", Status: "active"},
		{GroupID: 10, UserID: 3, Role: "member", Status: "active"},
		{GroupID: 10, UserID: 4, Role: "moderator", Status: "active"},
		{GroupID: 11, UserID: 5, Role: "member", Status: "active"},
		{GroupID: 11, UserID: 1, Role: "member", Status: "pending"},
		{GroupID: 12, UserID: 2, Role: "member", Status: "active"},
	}
	for _, membership := range memberships {
		store.AddMembership(membership)
	}

	store.AddConnection(entities.ConnectionEdge{RequesterID: 1, AddresseeID: 2, Status: "accepted"})
	store.AddConnection(entities.ConnectionEdge{RequesterID: 4, AddresseeID: 1, Status: "pending"})

	posts := []entities.Post{
		{ID: 100, AuthorID: 2, Type: "launchpad", Title: "Fjord Labs starter kit is live", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 101, AuthorID: 3, Type: "media", Summary: "New product shoot for a ceramics studio", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: 102, AuthorID: 5, Type: "gig", Content: "Taking two custom furniture commissions for the spring", CreatedAt: now.Add(-26 * time.Hour)},
		{ID: 103, AuthorID: 4, Type: "update", CreatedAt: now.Add(-30 * time.Hour)},
		{ID: 104, AuthorID: 1, Type: "news", Title: "Marketloop meetup recap", CreatedAt: now.Add(-48 * time.Hour)},
	}
	for _, post := range posts {
		store.AddPost(post)
	}

	return store
}
