package memory

import (
	"context"
	"sort"
	"sync"

	"marketloop-backend/domain/core/entities"
)

// Store is an in-memory implementation of every read port. It backs the
// integration tests and the demo mode of the CLI. All reads are served from
// copies, so callers can never observe shared mutable state.
type Store struct {
	mu          sync.RWMutex
	users       map[int64]entities.User
	profiles    map[int64]entities.Profile
	groups      map[int64]entities.Group
	memberships []entities.Membership
	connections []entities.ConnectionEdge
	posts       []entities.Post
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]entities.User),
		profiles: make(map[int64]entities.Profile),
		groups:   make(map[int64]entities.Group),
	}
}

// AddUser seeds a user.
func (s *Store) AddUser(user entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.Profile = nil // profiles are joined on read
	s.users[user.ID] = user
}

// AddProfile seeds a profile.
func (s *Store) AddProfile(profile entities.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
}

// AddGroup seeds a group.
func (s *Store) AddGroup(group entities.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[group.ID] = group
}

// AddMembership seeds a membership.
func (s *Store) AddMembership(membership entities.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	membership.Group = nil
	membership.User = nil
	s.memberships = append(s.memberships, membership)
}

// AddConnection seeds a connection edge.
func (s *Store) AddConnection(edge entities.ConnectionEdge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connections = append(s.connections, edge)
}

// AddPost seeds a feed post.
func (s *Store) AddPost(post entities.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.Author = nil
	s.posts = append(s.posts, post)
}

// FindProfileByUserID implements ports.ProfileStore.
func (s *Store) FindProfileByUserID(ctx context.Context, userID int64) (*entities.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := profile
	return &copied, nil
}

// FindMembershipsByUserID implements ports.MembershipStore.
func (s *Store) FindMembershipsByUserID(ctx context.Context, userID int64) ([]entities.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entities.Membership{}
	for _, m := range s.memberships {
		if m.UserID != userID {
			continue
		}
		m.Group = s.groupRef(m.GroupID)
		out = append(out, m)
	}
	return out, nil
}

// FindActiveMembersByGroupIDs implements ports.MembershipStore.
func (s *Store) FindActiveMembersByGroupIDs(ctx context.Context, groupIDs []int64, excludedUserIDs []int64, limit int) ([]entities.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := toSet(groupIDs)
	excluded := toSet(excludedUserIDs)

	out := []entities.Membership{}
	for _, m := range s.memberships {
		if len(out) == limit {
			break
		}
		if m.Status != entities.MembershipStatusActive || !wanted[m.GroupID] || excluded[m.UserID] {
			continue
		}
		m.Group = s.groupRef(m.GroupID)
		m.User = s.userRef(m.UserID)
		out = append(out, m)
	}
	return out, nil
}

// FindConnectionsInvolving implements ports.ConnectionStore.
func (s *Store) FindConnectionsInvolving(ctx context.Context, userID int64) ([]entities.ConnectionEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []entities.ConnectionEdge{}
	for _, edge := range s.connections {
		if edge.RequesterID == userID || edge.AddresseeID == userID {
			out = append(out, edge)
		}
	}
	return out, nil
}

// FindTopProfilesByFollowersThenLikes implements ports.RankingStore.
func (s *Store) FindTopProfilesByFollowersThenLikes(ctx context.Context, excludedUserIDs []int64, limit int) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excluded := toSet(excludedUserIDs)

	out := []entities.User{}
	for id, user := range s.users {
		if excluded[id] {
			continue
		}
		user.Profile = s.profileRef(id)
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := followerCounts(out[i].Profile), followerCounts(out[j].Profile)
		li, lj := likeCounts(out[i].Profile), likeCounts(out[j].Profile)
		if fi != fj {
			return fi > fj
		}
		if li != lj {
			return li > lj
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// FindGroupsExcluding implements ports.GroupStore.
func (s *Store) FindGroupsExcluding(ctx context.Context, excludedGroupIDs []int64, limit int) ([]entities.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	excluded := toSet(excludedGroupIDs)

	out := []entities.Group{}
	for id, group := range s.groups {
		if excluded[id] {
			continue
		}
		group.ActiveMemberCount = s.activeMemberCount(id)
		out = append(out, group)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ActiveMemberCount != out[j].ActiveMemberCount {
			return out[i].ActiveMemberCount > out[j].ActiveMemberCount
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// FindRecentPosts implements ports.PostStore.
func (s *Store) FindRecentPosts(ctx context.Context, limit int) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Post, len(s.posts))
	copy(out, s.posts)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Author = s.userRef(out[i].AuthorID)
	}
	return out, nil
}

func (s *Store) groupRef(id int64) *entities.Group {
	group, ok := s.groups[id]
	if !ok {
		return nil
	}
	copied := group
	return &copied
}

func (s *Store) userRef(id int64) *entities.User {
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	copied := user
	copied.Profile = s.profileRef(id)
	return &copied
}

func (s *Store) profileRef(userID int64) *entities.Profile {
	profile, ok := s.profiles[userID]
	if !ok {
		return nil
	}
	copied := profile
	return &copied
}

func (s *Store) activeMemberCount(groupID int64) int {
	count := 0
	for _, m := range s.memberships {
		if m.GroupID == groupID && m.Status == entities.MembershipStatusActive {
			count++
		}
	}
	return count
}

func followerCounts(p *entities.Profile) int {
	if p == nil {
		return 0
	}
	return p.FollowersCount
}

func likeCounts(p *entities.Profile) int {
	if p == nil {
		return 0
	}
	return p.LikesCount
}

func toSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
