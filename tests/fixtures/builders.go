package fixtures

import (
	"time"

	"marketloop-backend/domain/core/entities"
)

// ProfileBuilder helps create test profiles with default values
type ProfileBuilder struct {
	profile entities.Profile
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		profile: entities.Profile{
			UserID:         1,
			Name:           "Test Member",
			Headline:       "Test headline",
			Location:       "Test City",
			FollowersCount: 0,
			LikesCount:     0,
		},
	}
}

func (b *ProfileBuilder) WithUserID(id int64) *ProfileBuilder {
	b.profile.UserID = id
	return b
}

func (b *ProfileBuilder) WithName(name string) *ProfileBuilder {
	b.profile.Name = name
	return b
}

func (b *ProfileBuilder) WithFollowers(count int) *ProfileBuilder {
	b.profile.FollowersCount = count
	return b
}

func (b *ProfileBuilder) WithLikes(count int) *ProfileBuilder {
	b.profile.LikesCount = count
	return b
}

func (b *ProfileBuilder) WithSkills(skills any) *ProfileBuilder {
	b.profile.Skills = skills
	return b
}

func (b *ProfileBuilder) WithFocusAreas(focus any) *ProfileBuilder {
	b.profile.FocusAreas = focus
	return b
}

func (b *ProfileBuilder) Build() entities.Profile {
	return b.profile
}

// UserBuilder helps create test users with default values
type UserBuilder struct {
	user entities.User
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		user: entities.User{
			ID:    1,
			Email: "member@example.com",
			Name:  "Test Member",
		},
	}
}

func (b *UserBuilder) WithID(id int64) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithProfile(profile entities.Profile) *UserBuilder {
	copied := profile
	b.user.Profile = &copied
	return b
}

func (b *UserBuilder) Build() entities.User {
	return b.user
}

// GroupBuilder helps create test groups with default values
type GroupBuilder struct {
	group entities.Group
}

func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{
		group: entities.Group{
			ID:        10,
			Name:      "Test Group",
			Summary:   "A group for testing",
			CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func (b *GroupBuilder) WithID(id int64) *GroupBuilder {
	b.group.ID = id
	return b
}

func (b *GroupBuilder) WithName(name string) *GroupBuilder {
	b.group.Name = name
	return b
}

func (b *GroupBuilder) WithFocusAreas(focus any) *GroupBuilder {
	b.group.FocusAreas = focus
	return b
}

func (b *GroupBuilder) WithMemberPolicy(policy string) *GroupBuilder {
	b.group.MemberPolicy = policy
	return b
}

func (b *GroupBuilder) WithActiveMemberCount(count int) *GroupBuilder {
	b.group.ActiveMemberCount = count
	return b
}

func (b *GroupBuilder) WithCreatedAt(createdAt time.Time) *GroupBuilder {
	b.group.CreatedAt = createdAt
	return b
}

func (b *GroupBuilder) Build() entities.Group {
	return b.group
}

// MembershipBuilder helps create test memberships with default values
type MembershipBuilder struct {
	membership entities.Membership
}

func NewMembershipBuilder() *MembershipBuilder {
	return &MembershipBuilder{
		membership: entities.Membership{
			GroupID: 10,
			UserID:  1,
			Role:    "member",
			Status:  entities.MembershipStatusActive,
		},
	}
}

func (b *MembershipBuilder) WithGroupID(id int64) *MembershipBuilder {
	b.membership.GroupID = id
	return b
}

func (b *MembershipBuilder) WithUserID(id int64) *MembershipBuilder {
	b.membership.UserID = id
	return b
}

func (b *MembershipBuilder) WithStatus(status string) *MembershipBuilder {
	b.membership.Status = status
	return b
}

func (b *MembershipBuilder) WithGroup(group entities.Group) *MembershipBuilder {
	copied := group
	b.membership.Group = &copied
	return b
}

func (b *MembershipBuilder) WithUser(user entities.User) *MembershipBuilder {
	copied := user
	b.membership.User = &copied
	return b
}

func (b *MembershipBuilder) Build() entities.Membership {
	return b.membership
}

// PostBuilder helps create test posts with default values
type PostBuilder struct {
	post entities.Post
}

func NewPostBuilder() *PostBuilder {
	return &PostBuilder{
		post: entities.Post{
			ID:        100,
			AuthorID:  1,
			Type:      "update",
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

func (b *PostBuilder) WithID(id int64) *PostBuilder {
	b.post.ID = id
	return b
}

func (b *PostBuilder) WithAuthorID(id int64) *PostBuilder {
	b.post.AuthorID = id
	return b
}

func (b *PostBuilder) WithType(postType string) *PostBuilder {
	b.post.Type = postType
	return b
}

func (b *PostBuilder) WithTitle(title string) *PostBuilder {
	b.post.Title = title
	return b
}

func (b *PostBuilder) WithSummary(summary string) *PostBuilder {
	b.post.Summary = summary
	return b
}

func (b *PostBuilder) WithContent(content string) *PostBuilder {
	b.post.Content = content
	return b
}

func (b *PostBuilder) WithCreatedAt(createdAt time.Time) *PostBuilder {
	b.post.CreatedAt = createdAt
	return b
}

func (b *PostBuilder) WithAuthor(user entities.User) *PostBuilder {
	copied := user
	b.post.Author = &copied
	return b
}

func (b *PostBuilder) Build() entities.Post {
	return b.post
}
