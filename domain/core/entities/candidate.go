package entities

// Candidate is an unscored, possibly-duplicated profile considered for a
// connection suggestion. Sourcing passes may yield the same user more than
// once; MergeCandidates folds duplicates into one record per user.
type Candidate struct {
	UserID         int64
	Email          string
	Name           string
	Headline       string
	Location       string
	Company        string
	SharedGroups   []string
	FollowersCount int
	LikesCount     int
}

// MergeCandidates deduplicates candidates by user id as a pure fold over the
// input order. The first occurrence wins structurally; shared groups are
// unioned across all occurrences and empty location/company fields are filled
// from later ones (first non-empty wins).
func MergeCandidates(lists ...[]Candidate) []Candidate {
	byID := make(map[int64]int)
	merged := []Candidate{}

	for _, list := range lists {
		for _, candidate := range list {
			i, ok := byID[candidate.UserID]
			if !ok {
				copied := candidate
				copied.SharedGroups = unionGroups(nil, candidate.SharedGroups)
				byID[candidate.UserID] = len(merged)
				merged = append(merged, copied)
				continue
			}
			merged[i].SharedGroups = unionGroups(merged[i].SharedGroups, candidate.SharedGroups)
			if merged[i].Location == "" {
				merged[i].Location = candidate.Location
			}
			if merged[i].Company == "" {
				merged[i].Company = candidate.Company
			}
		}
	}

	return merged
}

func unionGroups(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, name := range existing {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	for _, name := range incoming {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
