package gormdb

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketloop-backend/application/ports"
	"marketloop-backend/domain/core/entities"
	pkgerrors "marketloop-backend/pkg/errors"
)

// Store implements every read port on top of the relational store through
// GORM. All methods are read-only; the engine never opens a transaction of
// its own, but it honors a caller-provided one carried in the context as a
// ports.ReadSession wrapping a *gorm.DB.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a new GORM-backed store.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Session wraps a transaction handle so callers can thread it through a
// single orchestration call.
func Session(tx *gorm.DB) ports.ReadSession {
	return tx
}

// session resolves the DB handle for this call: the caller's read session
// when one is attached to the context, the shared handle otherwise.
func (s *Store) session(ctx context.Context) *gorm.DB {
	if raw, ok := ports.ReadSessionFrom(ctx); ok {
		if tx, ok := raw.(*gorm.DB); ok {
			return tx.WithContext(ctx)
		}
	}
	return s.db.WithContext(ctx)
}

// FindProfileByUserID implements ports.ProfileStore.
func (s *Store) FindProfileByUserID(ctx context.Context, userID int64) (*entities.Profile, error) {
	var model profileModel
	err := s.session(ctx).Where("user_id = ?", userID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.NewUpstream("failed to load profile", err)
	}
	return model.toEntity(), nil
}

// FindMembershipsByUserID implements ports.MembershipStore.
func (s *Store) FindMembershipsByUserID(ctx context.Context, userID int64) ([]entities.Membership, error) {
	var models []membershipModel
	err := s.session(ctx).
		Preload("Group").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, pkgerrors.NewUpstream("failed to load memberships", err)
	}

	memberships := make([]entities.Membership, 0, len(models))
	for i := range models {
		memberships = append(memberships, models[i].toEntity())
	}
	return memberships, nil
}

// FindActiveMembersByGroupIDs implements ports.MembershipStore.
func (s *Store) FindActiveMembersByGroupIDs(ctx context.Context, groupIDs []int64, excludedUserIDs []int64, limit int) ([]entities.Membership, error) {
	query := s.session(ctx).
		Preload("Group").
		Preload("User.Profile").
		Where("group_id IN ?", groupIDs).
		Where("status = ?", entities.MembershipStatusActive)
	if len(excludedUserIDs) > 0 {
		query = query.Where("user_id NOT IN ?", excludedUserIDs)
	}

	var models []membershipModel
	if err := query.Order("id ASC").Limit(limit).Find(&models).Error; err != nil {
		return nil, pkgerrors.NewUpstream("failed to load group members", err)
	}

	memberships := make([]entities.Membership, 0, len(models))
	for i := range models {
		memberships = append(memberships, models[i].toEntity())
	}
	return memberships, nil
}

// FindConnectionsInvolving implements ports.ConnectionStore.
func (s *Store) FindConnectionsInvolving(ctx context.Context, userID int64) ([]entities.ConnectionEdge, error) {
	var models []connectionModel
	err := s.session(ctx).
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, pkgerrors.NewUpstream("failed to load connections", err)
	}

	edges := make([]entities.ConnectionEdge, 0, len(models))
	for i := range models {
		edges = append(edges, models[i].toEntity())
	}
	return edges, nil
}

// trendingOrder ranks users by their profile metrics. Profiles arrive via a
// LEFT JOIN, so a user without one yields NULL metrics; Postgres sorts NULLs
// first under DESC, which would push profile-less users ahead of the most
// followed. Missing metrics coalesce to zero instead.
const trendingOrder = `COALESCE("Profile".followers_count, 0) DESC, COALESCE("Profile".likes_count, 0) DESC, users.id ASC`

// FindTopProfilesByFollowersThenLikes implements ports.RankingStore.
func (s *Store) FindTopProfilesByFollowersThenLikes(ctx context.Context, excludedUserIDs []int64, limit int) ([]entities.User, error) {
	query := s.session(ctx).
		Joins("Profile").
		Order(trendingOrder)
	if len(excludedUserIDs) > 0 {
		query = query.Where("users.id NOT IN ?", excludedUserIDs)
	}

	var models []userModel
	if err := query.Limit(limit).Find(&models).Error; err != nil {
		return nil, pkgerrors.NewUpstream("failed to load trending profiles", err)
	}

	users := make([]entities.User, 0, len(models))
	for i := range models {
		users = append(users, *models[i].toEntity())
	}
	return users, nil
}

// FindGroupsExcluding implements ports.GroupStore.
func (s *Store) FindGroupsExcluding(ctx context.Context, excludedGroupIDs []int64, limit int) ([]entities.Group, error) {
	session := s.session(ctx)
	memberCount := session.Session(&gorm.Session{NewDB: true}).
		Model(&membershipModel{}).
		Select("COUNT(*)").
		Where("group_memberships.group_id = groups.id").
		Where("group_memberships.status = ?", entities.MembershipStatusActive)

	query := session.
		Model(&groupModel{}).
		Select("groups.*, (?) AS active_member_count", memberCount).
		Order("active_member_count DESC, created_at DESC, id ASC")
	if len(excludedGroupIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedGroupIDs)
	}

	var models []groupModel
	if err := query.Limit(limit).Find(&models).Error; err != nil {
		return nil, pkgerrors.NewUpstream("failed to load group suggestions", err)
	}

	groups := make([]entities.Group, 0, len(models))
	for i := range models {
		groups = append(groups, *models[i].toEntity())
	}
	return groups, nil
}

// FindRecentPosts implements ports.PostStore.
func (s *Store) FindRecentPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	var models []postModel
	err := s.session(ctx).
		Preload("Author.Profile").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, pkgerrors.NewUpstream("failed to load recent posts", err)
	}

	posts := make([]entities.Post, 0, len(models))
	for i := range models {
		posts = append(posts, models[i].toEntity())
	}
	return posts, nil
}
