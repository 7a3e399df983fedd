//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"marketloop-backend/application/queries/handlers"
	"marketloop-backend/application/services"
	"marketloop-backend/pkg/observability"
)

// InitializeFeedInsightsHandler wires the full feed insights pipeline from a
// store bundle, the live tuning provider and the ambient dependencies.
func InitializeFeedInsightsHandler(
	stores Stores,
	tuning services.TuningProvider,
	metrics *observability.Collector,
	logger *zap.Logger,
) *handlers.FeedInsightsHandler {
	wire.Build(
		provideProfileStore,
		provideMembershipStore,
		provideConnectionStore,
		provideRankingStore,
		provideGroupStore,
		providePostStore,
		services.NewViewerContextLoader,
		services.NewCandidateSource,
		services.NewCandidateScorer,
		services.NewGroupSuggestionBuilder,
		services.NewLiveMomentsBuilder,
		handlers.NewFeedInsightsHandler,
	)
	return nil
}
