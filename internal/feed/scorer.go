package feed

import (
	"strings"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/config"
)

// RelevanceScorer computes per-viewer relevance for one item. It is a
// pure function of (content tags, car make, viewer interests); scores
// are never persisted.
type RelevanceScorer struct {
	cfg config.ScoringConfig
}

func NewRelevanceScorer(cfg config.ScoringConfig) *RelevanceScorer {
	return &RelevanceScorer{cfg: cfg}
}

// Score starts from the configured base and adds a bonus per viewer
// interest that matches a tag or the car make (case-insensitive
// substring match), capped at the configured maximum. The base score is
// also the floor: no item scores below it.
func (s *RelevanceScorer) Score(tags []string, carMake string, interests []string) float64 {
	score := s.cfg.BaseScore

	lowerTags := make([]string, len(tags))
	for i, t := range tags {
		lowerTags[i] = strings.ToLower(t)
	}
	lowerMake := strings.ToLower(carMake)

	for _, interest := range interests {
		in := strings.ToLower(interest)
		if in == "" {
			continue
		}
		for _, tag := range lowerTags {
			if strings.Contains(tag, in) {
				score += s.cfg.TagMatchBonus
				break
			}
		}
		if lowerMake != "" && strings.Contains(lowerMake, in) {
			score += s.cfg.MakeMatchBonus
		}
	}

	if score > s.cfg.MaxScore {
		score = s.cfg.MaxScore
	}
	return score
}

// Reason explains why an item is shown. Branches are evaluated in
// order, first match wins. The third branch tests exact tag membership
// in the interest set, not the substring match Score uses.
func (s *RelevanceScorer) Reason(score float64, tags, interests []string) string {
	switch {
	case score > 80:
		return "Matches your interests"
	case score > 60:
		return "Similar to content you liked"
	}

	interestSet := make(map[string]struct{}, len(interests))
	for _, in := range interests {
		interestSet[strings.ToLower(in)] = struct{}{}
	}
	for _, tag := range tags {
		if _, ok := interestSet[strings.ToLower(tag)]; ok {
			return "Based on your preferences"
		}
	}

	return "Trending in community"
}
