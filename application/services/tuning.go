package services

// Tuning holds the heuristic constants of the ranking pipeline. The weights
// and overfetch factors are tunable, not semantic contracts; operators adjust
// them at runtime through the ranking config watcher.
type Tuning struct {
	FollowerWeight     int
	LikeWeight         int
	SharedGroupWeight  int
	SharedFocusWeight  int
	GroupOverfetch     int
	TrendingOverfetch  int
	TrendingMinFollows int
}

// DefaultTuning returns the production defaults.
func DefaultTuning() Tuning {
	return Tuning{
		FollowerWeight:     2,
		LikeWeight:         1,
		SharedGroupWeight:  10,
		SharedFocusWeight:  4,
		GroupOverfetch:     8,
		TrendingOverfetch:  4,
		TrendingMinFollows: 1,
	}
}

// TuningProvider yields the current tuning; hot-reloaded config plugs in here.
type TuningProvider func() Tuning

// StaticTuning wraps a fixed tuning in a provider.
func StaticTuning(t Tuning) TuningProvider {
	return func() Tuning { return t }
}
