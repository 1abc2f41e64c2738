package feed

import (
	"context"
	"log/slog"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// Auxiliary block limits per feed mode.
const (
	personalizedTopics      = 10
	personalizedSuggestions = 5
	trendingTopics          = 15
	friendsTopics           = 5
	friendsSuggestions      = 3
)

// Service is the public entry point of the feed core. Each operation
// assembles a complete response: ranked page, stories rail, trending
// topics, friend suggestions, stats and pagination metadata.
type Service struct {
	aggregator *Aggregator
	annotator  *Annotator
	stories    *StoryManager
	trending   *TrendingComputer
	stats      *StatsComputer
	social     SocialGraph
	logger     *slog.Logger
}

func NewService(
	aggregator *Aggregator,
	annotator *Annotator,
	stories *StoryManager,
	trending *TrendingComputer,
	stats *StatsComputer,
	social SocialGraph,
	logger *slog.Logger,
) *Service {
	return &Service{
		aggregator: aggregator,
		annotator:  annotator,
		stories:    stories,
		trending:   trending,
		stats:      stats,
		social:     social,
		logger:     logger.With("component", "feed_service"),
	}
}

// GetPersonalizedFeed ranks candidates against the viewer's interests
// and sorts by the requested mode.
func (s *Service) GetPersonalizedFeed(ctx context.Context, req domain.FeedRequest) (*domain.FeedResponse, error) {
	req.Normalize()

	interests, friendIDs := s.resolveViewer(ctx, req.ViewerID)

	items, err := s.aggregator.Aggregate(ctx, domain.ModePersonalized, req, interests, friendIDs)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, req, items, req.SortMode, personalizedTopics, personalizedSuggestions)
}

// GetTrendingFeed ignores the viewer's interests and the requested sort
// mode; items always come back by relevance score descending.
func (s *Service) GetTrendingFeed(ctx context.Context, req domain.FeedRequest) (*domain.FeedResponse, error) {
	req.Normalize()

	items, err := s.aggregator.Aggregate(ctx, domain.ModeTrending, req, nil, nil)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, req, items, domain.SortRelevance, trendingTopics, 0)
}

// GetFriendsFeed requires a viewer; without one there is nothing to
// show and no source is consulted. Items are forced to recency order.
func (s *Service) GetFriendsFeed(ctx context.Context, req domain.FeedRequest) (*domain.FeedResponse, error) {
	req.Normalize()

	if req.ViewerID == "" {
		resp := &domain.FeedResponse{
			Items:      []domain.FeedItem{},
			Pagination: domain.NewPagination(req.Page, req.PageSize, 0),
		}
		return resp, nil
	}

	_, friendIDs := s.resolveViewer(ctx, req.ViewerID)

	items, err := s.aggregator.Aggregate(ctx, domain.ModeFriends, req, nil, friendIDs)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, req, items, domain.SortNewest, friendsTopics, friendsSuggestions)
}

// GetSourceFeed serves a single content type. Unknown type names yield
// an empty feed, not an error.
func (s *Service) GetSourceFeed(ctx context.Context, req domain.FeedRequest) (*domain.FeedResponse, error) {
	req.Normalize()

	interests, _ := s.resolveViewer(ctx, req.ViewerID)

	items, err := s.aggregator.Aggregate(ctx, domain.ModeSingleSource, req, interests, nil)
	if err != nil {
		return nil, err
	}

	return s.assemble(ctx, req, items, req.SortMode, personalizedTopics, 0)
}

// resolveViewer loads the viewer's interests and friend ids. Failures
// degrade to empty context; an anonymous or unresolvable viewer still
// gets a feed.
func (s *Service) resolveViewer(ctx context.Context, viewerID string) (interests, friendIDs []string) {
	if viewerID == "" {
		return nil, nil
	}

	var err error
	interests, err = s.social.Interests(ctx, viewerID)
	if err != nil {
		s.logger.Warn("interest lookup failed", "viewer_id", viewerID, "error", err)
		interests = nil
	}
	friendIDs, err = s.social.FriendIDs(ctx, viewerID)
	if err != nil {
		s.logger.Warn("friend lookup failed", "viewer_id", viewerID, "error", err)
		friendIDs = nil
	}
	return interests, friendIDs
}

// assemble sorts, paginates, loads the comment prefix for the visible
// page and attaches the auxiliary blocks. Any auxiliary block failure
// degrades to an empty collection; only the primary item pipeline can
// fail the call.
func (s *Service) assemble(ctx context.Context, req domain.FeedRequest, items []domain.FeedItem, sortMode domain.SortMode, topicLimit, suggestionLimit int) (*domain.FeedResponse, error) {
	sorted := SortItems(items, sortMode)
	total := len(sorted)
	page := PaginateItems(sorted, req.Page, req.PageSize)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.annotator.LoadInitialComments(ctx, page, req.ViewerID)

	resp := &domain.FeedResponse{
		Items:          page,
		Pagination:     domain.NewPagination(req.Page, req.PageSize, total),
		HasMoreContent: req.Page*req.PageSize < total,
	}

	stories, err := s.stories.ActiveStories(ctx, req.ViewerID)
	if err != nil {
		s.logger.Warn("stories block failed", "error", err)
		stories = []domain.StoryFeedItem{}
	}
	resp.Stories = stories

	topics, err := s.trending.ComputeTrendingTopics(ctx, topicLimit)
	if err != nil {
		s.logger.Warn("trending block failed", "error", err)
		topics = []domain.TrendingTopic{}
	}
	resp.TrendingTopics = topics

	if suggestionLimit > 0 && req.ViewerID != "" {
		suggestions, err := s.social.Suggestions(ctx, req.ViewerID, suggestionLimit)
		if err != nil {
			s.logger.Warn("suggestions block failed", "viewer_id", req.ViewerID, "error", err)
			suggestions = []domain.FriendSuggestion{}
		}
		resp.FriendSuggestions = suggestions
	}

	stats, err := s.stats.ComputeStats(ctx, req.ViewerID)
	if err != nil {
		s.logger.Warn("stats block failed", "error", err)
		stats = domain.FeedStats{}
	}
	resp.Stats = stats

	return resp, nil
}
