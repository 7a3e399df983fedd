package gormdb

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"marketloop-backend/domain/core/entities"
)

// Database models. These are the only place that knows the relational
// schema; every read maps onto the plain entity shapes before leaving this
// package.

type userModel struct {
	ID      int64         `gorm:"primaryKey"`
	Email   string        `gorm:"column:email"`
	Name    string        `gorm:"column:name"`
	Profile *profileModel `gorm:"foreignKey:UserID"`
}

func (userModel) TableName() string { return "users" }

type profileModel struct {
	ID                     int64          `gorm:"primaryKey"`
	UserID                 int64          `gorm:"column:user_id;index"`
	Name                   string         `gorm:"column:name"`
	Headline               string         `gorm:"column:headline"`
	Location               string         `gorm:"column:location"`
	Company                string         `gorm:"column:company"`
	FollowersCount         int            `gorm:"column:followers_count"`
	LikesCount             int            `gorm:"column:likes_count"`
	Skills                 datatypes.JSON `gorm:"column:skills"`
	FocusAreas             datatypes.JSON `gorm:"column:focus_areas"`
	EngagementTopics       datatypes.JSON `gorm:"column:engagement_topics"`
	CollaborationInterests datatypes.JSON `gorm:"column:collaboration_interests"`
	ImpactAreas            datatypes.JSON `gorm:"column:impact_areas"`
}

func (profileModel) TableName() string { return "profiles" }

type groupModel struct {
	ID                int64          `gorm:"primaryKey"`
	Name              string         `gorm:"column:name"`
	Summary           string         `gorm:"column:summary"`
	Location          string         `gorm:"column:location"`
	FocusAreas        datatypes.JSON `gorm:"column:focus_areas"`
	Topics            datatypes.JSON `gorm:"column:topics"`
	MemberPolicy      string         `gorm:"column:member_policy"`
	ActiveMemberCount int            `gorm:"column:active_member_count;->"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
}

func (groupModel) TableName() string { return "groups" }

type membershipModel struct {
	ID      int64       `gorm:"primaryKey"`
	GroupID int64       `gorm:"column:group_id;index"`
	UserID  int64       `gorm:"column:user_id;index"`
	Role    string      `gorm:"column:role"`
	Status  string      `gorm:"column:status"`
	Group   *groupModel `gorm:"foreignKey:GroupID"`
	User    *userModel  `gorm:"foreignKey:UserID;references:ID"`
}

func (membershipModel) TableName() string { return "group_memberships" }

type connectionModel struct {
	ID          int64  `gorm:"primaryKey"`
	RequesterID int64  `gorm:"column:requester_id;index"`
	AddresseeID int64  `gorm:"column:addressee_id;index"`
	Status      string `gorm:"column:status"`
}

func (connectionModel) TableName() string { return "connections" }

type postModel struct {
	ID        int64      `gorm:"primaryKey"`
	AuthorID  int64      `gorm:"column:author_id;index"`
	Type      string     `gorm:"column:type"`
	Title     string     `gorm:"column:title"`
	Summary   string     `gorm:"column:summary"`
	Content   string     `gorm:"column:content"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	Author    *userModel `gorm:"foreignKey:AuthorID;references:ID"`
}

func (postModel) TableName() string { return "posts" }

// Entity mapping. jsonValue keeps the soft-degradation contract: a column
// that fails to parse contributes nothing to token extraction instead of
// failing the read.

func jsonValue(raw datatypes.JSON) any {
	if len(raw) == 0 {
		return nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}

func (m *profileModel) toEntity() *entities.Profile {
	if m == nil {
		return nil
	}
	return &entities.Profile{
		UserID:                 m.UserID,
		Name:                   m.Name,
		Headline:               m.Headline,
		Location:               m.Location,
		Company:                m.Company,
		FollowersCount:         m.FollowersCount,
		LikesCount:             m.LikesCount,
		Skills:                 jsonValue(m.Skills),
		FocusAreas:             jsonValue(m.FocusAreas),
		EngagementTopics:       jsonValue(m.EngagementTopics),
		CollaborationInterests: jsonValue(m.CollaborationInterests),
		ImpactAreas:            jsonValue(m.ImpactAreas),
	}
}

func (m *userModel) toEntity() *entities.User {
	if m == nil {
		return nil
	}
	return &entities.User{
		ID:      m.ID,
		Email:   m.Email,
		Name:    m.Name,
		Profile: m.Profile.toEntity(),
	}
}

func (m *groupModel) toEntity() *entities.Group {
	if m == nil {
		return nil
	}
	return &entities.Group{
		ID:                m.ID,
		Name:              m.Name,
		Summary:           m.Summary,
		Location:          m.Location,
		FocusAreas:        jsonValue(m.FocusAreas),
		Topics:            jsonValue(m.Topics),
		MemberPolicy:      m.MemberPolicy,
		ActiveMemberCount: m.ActiveMemberCount,
		CreatedAt:         m.CreatedAt,
	}
}

func (m *membershipModel) toEntity() entities.Membership {
	return entities.Membership{
		GroupID: m.GroupID,
		UserID:  m.UserID,
		Role:    m.Role,
		Status:  m.Status,
		Group:   m.Group.toEntity(),
		User:    m.User.toEntity(),
	}
}

func (m *connectionModel) toEntity() entities.ConnectionEdge {
	return entities.ConnectionEdge{
		RequesterID: m.RequesterID,
		AddresseeID: m.AddresseeID,
		Status:      m.Status,
	}
}

func (m *postModel) toEntity() entities.Post {
	return entities.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Type:      m.Type,
		Title:     m.Title,
		Summary:   m.Summary,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		Author:    m.Author.toEntity(),
	}
}
