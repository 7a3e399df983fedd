package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"marketloop-backend/application/ports"
	"marketloop-backend/application/queries"
	"marketloop-backend/domain/core/entities"
)

const momentTitleLimit = 80

// momentMeta maps a post type to its display tag and icon. Unknown types
// fall back to the update entry.
type momentMeta struct {
	Tag  string
	Icon string
}

var momentMetaByType = map[string]momentMeta{
	"update":       {Tag: "Update", Icon: "sparkles"},
	"media":        {Tag: "Media", Icon: "camera"},
	"job":          {Tag: "Jobs", Icon: "briefcase"},
	"gig":          {Tag: "Gig", Icon: "zap"},
	"project":      {Tag: "Project", Icon: "hammer"},
	"volunteering": {Tag: "Volunteering", Icon: "heart"},
	"launchpad":    {Tag: "Launchpad", Icon: "rocket"},
	"news":         {Tag: "News", Icon: "newspaper"},
}

// LiveMomentsBuilder projects recent feed posts into the compact live
// activity feed.
type LiveMomentsBuilder struct {
	posts  ports.PostStore
	logger *zap.Logger
}

// NewLiveMomentsBuilder creates a new live moments builder.
func NewLiveMomentsBuilder(posts ports.PostStore, logger *zap.Logger) *LiveMomentsBuilder {
	return &LiveMomentsBuilder{posts: posts, logger: logger}
}

// Build returns at most limit moments, newest post first.
func (b *LiveMomentsBuilder) Build(ctx context.Context, limit int) ([]queries.Moment, error) {
	fetchLimit := limit
	if fetchLimit < 5 {
		fetchLimit = 5
	}

	posts, err := b.posts.FindRecentPosts(ctx, fetchLimit)
	if err != nil {
		return nil, err
	}

	moments := make([]queries.Moment, 0, len(posts))
	for i := range posts {
		if len(moments) == limit {
			break
		}
		moments = append(moments, projectMoment(&posts[i]))
	}

	b.logger.Debug("Live moments built",
		zap.Int("fetched", len(posts)),
		zap.Int("moments", len(moments)),
	)

	return moments, nil
}

func projectMoment(post *entities.Post) queries.Moment {
	postType := post.Type
	if postType == "" {
		postType = "update"
	}
	meta, ok := momentMetaByType[postType]
	if !ok {
		meta = momentMetaByType["update"]
	}

	return queries.Moment{
		ID:        fmt.Sprintf("post:%d", post.ID),
		PostID:    post.ID,
		Title:     momentTitle(post, postType),
		Tag:       meta.Tag,
		Icon:      meta.Icon,
		Timestamp: post.CreatedAt.UTC().Format(time.RFC3339),
		Type:      postType,
	}
}

// momentTitle picks the first available title source: the explicit post
// title, a truncated quoted summary, a truncated quoted content snippet,
// then a generic author line.
func momentTitle(post *entities.Post, postType string) string {
	if post.Title != "" {
		return post.Title
	}
	if post.Summary != "" {
		return fmt.Sprintf("\"%s\"", truncate(post.Summary, momentTitleLimit))
	}
	if post.Content != "" {
		return fmt.Sprintf("\"%s\"", truncate(post.Content, momentTitleLimit))
	}

	author := post.Author.DisplayName()
	if author == "" {
		author = "A member"
	}
	return fmt.Sprintf("%s posted a %s", author, postType)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
