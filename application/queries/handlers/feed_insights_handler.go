package handlers

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"marketloop-backend/application/ports"
	"marketloop-backend/application/queries"
	"marketloop-backend/application/services"
	"marketloop-backend/domain/core/entities"
	pkgerrors "marketloop-backend/pkg/errors"
	"marketloop-backend/pkg/observability"
)

const (
	defaultLimit = 6
	minLimit     = 1
	maxLimit     = 24
	maxInterests = 12
)

// FeedInsightsHandler is the top-level entry point of the recommendation
// engine. It loads the viewer context once, fans out to the three suggestion
// builders concurrently and assembles the final payload. Any branch failure
// fails the whole call; there are no retries and no partial results at this
// layer.
type FeedInsightsHandler struct {
	contextLoader *services.ViewerContextLoader
	candidates    *services.CandidateSource
	scorer        *services.CandidateScorer
	groups        *services.GroupSuggestionBuilder
	moments       *services.LiveMomentsBuilder
	metrics       *observability.Collector
	validate      *validator.Validate
	tracer        trace.Tracer
	logger        *zap.Logger
}

// NewFeedInsightsHandler creates a new feed insights handler.
func NewFeedInsightsHandler(
	contextLoader *services.ViewerContextLoader,
	candidates *services.CandidateSource,
	scorer *services.CandidateScorer,
	groups *services.GroupSuggestionBuilder,
	moments *services.LiveMomentsBuilder,
	metrics *observability.Collector,
	logger *zap.Logger,
) *FeedInsightsHandler {
	return &FeedInsightsHandler{
		contextLoader: contextLoader,
		candidates:    candidates,
		scorer:        scorer,
		groups:        groups,
		moments:       moments,
		metrics:       metrics,
		validate:      validator.New(),
		tracer:        otel.Tracer("feedinsights"),
		logger:        logger,
	}
}

// Handle executes the feed insights query.
func (h *FeedInsightsHandler) Handle(ctx context.Context, query queries.FeedInsightsQuery) (*queries.FeedInsightsResult, error) {
	started := time.Now()

	if err := h.validate.Struct(query); err != nil {
		h.metrics.ObserveRequest("invalid", time.Since(started))
		return nil, pkgerrors.NewValidation("invalid feed insights query: " + err.Error())
	}

	limit := clampLimit(query.Limit)
	groupLimit := maxInt(3, limit/2)
	momentLimit := maxInt(4, int(math.Round(float64(limit)*1.5)))

	requestID := uuid.NewString()
	logger := h.logger.With(zap.String("requestID", requestID))

	if query.Session != nil {
		ctx = ports.WithReadSession(ctx, query.Session)
	}

	ctx, span := h.tracer.Start(ctx, "feedinsights.Handle",
		trace.WithAttributes(attribute.Int("limit", limit)),
	)
	defer span.End()

	viewerCtx, err := h.contextLoader.Load(ctx, query.ViewerID)
	if err != nil {
		h.metrics.ObserveRequest("error", time.Since(started))
		return nil, err
	}

	var (
		connectionSuggestions []queries.ConnectionSuggestion
		groupSuggestions      []queries.GroupSuggestion
		liveMoments           []queries.Moment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		branchStarted := time.Now()
		defer func() { h.metrics.ObserveBranch("connections", time.Since(branchStarted)) }()

		suggestions, err := h.buildConnectionSuggestions(gctx, viewerCtx, limit)
		if err != nil {
			return err
		}
		connectionSuggestions = suggestions
		return nil
	})
	g.Go(func() error {
		branchStarted := time.Now()
		defer func() { h.metrics.ObserveBranch("groups", time.Since(branchStarted)) }()

		suggestions, err := h.groups.Build(gctx, viewerCtx, groupLimit)
		if err != nil {
			return err
		}
		groupSuggestions = suggestions
		return nil
	})
	g.Go(func() error {
		branchStarted := time.Now()
		defer func() { h.metrics.ObserveBranch("moments", time.Since(branchStarted)) }()

		moments, err := h.moments.Build(gctx, momentLimit)
		if err != nil {
			return err
		}
		liveMoments = moments
		return nil
	})
	if err := g.Wait(); err != nil {
		h.metrics.ObserveRequest("error", time.Since(started))
		logger.Error("Feed insights orchestration failed", zap.Error(err))
		return nil, err
	}

	result := &queries.FeedInsightsResult{
		GeneratedAt:           time.Now().UTC().Format(time.RFC3339),
		Interests:             mergeInterests(viewerCtx.Interests.List(), liveMoments),
		ConnectionSuggestions: connectionSuggestions,
		GroupSuggestions:      groupSuggestions,
		LiveMoments:           liveMoments,
	}

	h.metrics.ObserveRequest("ok", time.Since(started))
	h.metrics.ObserveSection("connections", len(connectionSuggestions))
	h.metrics.ObserveSection("groups", len(groupSuggestions))
	h.metrics.ObserveSection("moments", len(liveMoments))

	logger.Info("Feed insights assembled",
		zap.Int("limit", limit),
		zap.Int("connectionSuggestions", len(connectionSuggestions)),
		zap.Int("groupSuggestions", len(groupSuggestions)),
		zap.Int("liveMoments", len(liveMoments)),
		zap.Duration("took", time.Since(started)),
	)

	return result, nil
}

// buildConnectionSuggestions runs the two candidate sub-sources concurrently
// and ranks the concatenated result, group-based candidates first so their
// records win the structural merge.
func (h *FeedInsightsHandler) buildConnectionSuggestions(ctx context.Context, viewerCtx *entities.ViewerContext, limit int) ([]queries.ConnectionSuggestion, error) {
	excluded := viewerCtx.ExclusionSet()

	var groupCandidates, trendingCandidates []entities.Candidate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		candidates, err := h.candidates.GroupCandidates(gctx, viewerCtx.ActiveGroupIDs(), excluded, limit)
		if err != nil {
			return err
		}
		groupCandidates = candidates
		return nil
	})
	g.Go(func() error {
		candidates, err := h.candidates.TrendingCandidates(gctx, excluded, limit)
		if err != nil {
			return err
		}
		trendingCandidates = candidates
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return h.scorer.Rank(viewerCtx, limit, groupCandidates, trendingCandidates), nil
}

// mergeInterests unions the viewer's interests with the moment types observed
// in this payload, capped for the response.
func mergeInterests(interests []string, moments []queries.Moment) []string {
	merged := make([]string, 0, len(interests)+len(moments))
	merged = append(merged, interests...)
	for _, moment := range moments {
		merged = append(merged, moment.Type)
	}
	return capInterests(merged, maxInterests)
}

func capInterests(tokens []string, n int) []string {
	seen := make(map[string]bool, len(tokens))
	out := []string{}
	for _, token := range tokens {
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
		if len(out) == n {
			break
		}
	}
	return out
}

func clampLimit(limit int) int {
	if limit == 0 {
		return defaultLimit
	}
	if limit < minLimit {
		return minLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
