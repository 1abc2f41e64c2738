package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/feed/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	news         *mocks.MockNewsSource
	reviews      *mocks.MockReviewSource
	questions    *mocks.MockQuestionSource
	stories      *mocks.MockStorySource
	interactions *mocks.MockInteractionStore
	users        *mocks.MockUserDirectory
	comments     *mocks.MockCommentReader
	social       *mocks.MockSocialGraph

	service *Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.news = mocks.NewMockNewsSource(s.ctrl)
	s.reviews = mocks.NewMockReviewSource(s.ctrl)
	s.questions = mocks.NewMockQuestionSource(s.ctrl)
	s.stories = mocks.NewMockStorySource(s.ctrl)
	s.interactions = mocks.NewMockInteractionStore(s.ctrl)
	s.users = mocks.NewMockUserDirectory(s.ctrl)
	s.comments = mocks.NewMockCommentReader(s.ctrl)
	s.social = mocks.NewMockSocialGraph(s.ctrl)

	logger := testLogger()
	cfg := testFeedConfig()
	scorer := NewRelevanceScorer(testScoringConfig())
	aggregator := NewAggregator(s.news, s.reviews, s.questions, s.stories, s.interactions, s.users, scorer, cfg, logger)
	annotator := NewAnnotator(s.comments, cfg.InitialComments, cfg.WorkerCap, logger)
	storyManager := NewStoryManager(s.stories, nil, cfg.ActiveStoryCap, logger)
	trending := NewTrendingComputer(s.news, s.reviews, logger)
	stats := NewStatsComputer(s.news, s.reviews, s.questions, s.stories, logger)

	s.service = NewService(aggregator, annotator, storyManager, trending, stats, s.social, logger)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// stubBackground leaves every auxiliary block empty: no stories, no
// topics, zero stats and no comment prefixes.
func (s *ServiceTestSuite) stubBackground() {
	s.stories.EXPECT().GetActive(gomock.Any(), 20).Return(nil, nil).AnyTimes()
	s.stories.EXPECT().GetActive(gomock.Any(), 0).Return(nil, nil).AnyTimes()
	s.news.EXPECT().GetPublished(gomock.Any(), 0).Return(nil, nil).AnyTimes()
	s.reviews.EXPECT().GetApproved(gomock.Any(), 0).Return(nil, nil).AnyTimes()
	s.questions.EXPECT().GetAll(gomock.Any(), 0).Return(nil, nil).AnyTimes()
	s.comments.EXPECT().GetComments(gomock.Any(), gomock.Any(), gomock.Any(), 1, 3).Return(nil, nil).AnyTimes()
}

func (s *ServiceTestSuite) TestGetFriendsFeed_NoViewerTouchesNothing() {
	resp, err := s.service.GetFriendsFeed(context.Background(), domain.FeedRequest{Page: 1, PageSize: 10})

	s.NoError(err)
	s.Empty(resp.Items)
	s.Equal(0, resp.Pagination.TotalCount)
	s.Equal(0, resp.Pagination.TotalPages)
}

func (s *ServiceTestSuite) TestGetPersonalizedFeed_AssemblesResponse() {
	ctx := context.Background()
	s.stubBackground()

	s.social.EXPECT().Interests(gomock.Any(), "u1").Return([]string{"bmw"}, nil)
	s.social.EXPECT().FriendIDs(gomock.Any(), "u1").Return(nil, nil)

	s.news.EXPECT().GetPublished(gomock.Any(), 10).Return([]domain.FeedItem{
		newsItem("n1", "a1", "bmw"),
		newsItem("n2", "a2", "sedan"),
	}, nil)
	s.reviews.EXPECT().GetApproved(gomock.Any(), 10).Return(nil, nil)
	s.questions.EXPECT().GetAll(gomock.Any(), 10).Return(nil, nil)
	s.stories.EXPECT().GetActive(gomock.Any(), 5).Return(nil, nil)

	s.interactions.EXPECT().GetReaction(gomock.Any(), gomock.Any(), domain.ContentNews, "u1").Return(false, nil).Times(2)
	s.interactions.EXPECT().GetBookmark(gomock.Any(), gomock.Any(), domain.ContentNews, "u1").Return(false, nil).Times(2)

	s.social.EXPECT().Suggestions(gomock.Any(), "u1", 5).Return([]domain.FriendSuggestion{
		{UserID: "u9", DisplayName: "Khalid"},
	}, nil)

	resp, err := s.service.GetPersonalizedFeed(ctx, domain.FeedRequest{ViewerID: "u1", Page: 1, PageSize: 10})

	s.NoError(err)
	s.Require().Len(resp.Items, 2)
	s.Equal("n1", resp.Items[0].ID) // interest match ranks first
	s.Equal("n2", resp.Items[1].ID)
	s.Equal(2, resp.Pagination.TotalCount)
	s.False(resp.HasMoreContent)
	s.Len(resp.FriendSuggestions, 1)
	s.Empty(resp.Stories)
	s.Empty(resp.TrendingTopics)
}

func (s *ServiceTestSuite) TestGetPersonalizedFeed_HasMoreContent() {
	ctx := context.Background()
	s.stubBackground()

	s.social.EXPECT().Interests(gomock.Any(), "u1").Return(nil, nil)
	s.social.EXPECT().FriendIDs(gomock.Any(), "u1").Return(nil, nil)

	s.news.EXPECT().GetPublished(gomock.Any(), 10).Return([]domain.FeedItem{
		newsItem("n1", "a1"), newsItem("n2", "a2"), newsItem("n3", "a3"),
	}, nil)
	s.reviews.EXPECT().GetApproved(gomock.Any(), 10).Return(nil, nil)
	s.questions.EXPECT().GetAll(gomock.Any(), 10).Return(nil, nil)
	s.stories.EXPECT().GetActive(gomock.Any(), 5).Return(nil, nil)

	s.interactions.EXPECT().GetReaction(gomock.Any(), gomock.Any(), gomock.Any(), "u1").Return(false, nil).AnyTimes()
	s.interactions.EXPECT().GetBookmark(gomock.Any(), gomock.Any(), gomock.Any(), "u1").Return(false, nil).AnyTimes()
	s.social.EXPECT().Suggestions(gomock.Any(), "u1", 5).Return(nil, nil)

	resp, err := s.service.GetPersonalizedFeed(ctx, domain.FeedRequest{ViewerID: "u1", Page: 1, PageSize: 2})

	s.NoError(err)
	s.Len(resp.Items, 2)
	s.True(resp.HasMoreContent)
	s.Equal(3, resp.Pagination.TotalCount)
	s.Equal(2, resp.Pagination.TotalPages)
	s.True(resp.Pagination.HasNextPage)
}

func (s *ServiceTestSuite) TestGetTrendingFeed_IgnoresRequestedSort() {
	ctx := context.Background()
	s.stubBackground()

	older := newsItem("older", "a1")
	newer := newsItem("newer", "a2")
	newer.CreatedAt = older.CreatedAt.Add(30 * time.Minute)

	s.news.EXPECT().GetPublished(gomock.Any(), 10).Return([]domain.FeedItem{older, newer}, nil)
	s.reviews.EXPECT().GetApproved(gomock.Any(), 10).Return(nil, nil)
	s.questions.EXPECT().GetAll(gomock.Any(), 10).Return(nil, nil)
	s.stories.EXPECT().GetActive(gomock.Any(), 5).Return(nil, nil)

	resp, err := s.service.GetTrendingFeed(ctx, domain.FeedRequest{Page: 1, PageSize: 10, SortMode: domain.SortNewest})

	s.NoError(err)
	s.Require().Len(resp.Items, 2)
	// The requested newest sort is overridden with relevance. Scores tie
	// at the base without interests, and the stable sort keeps source
	// order; honoring the request would have put "newer" first.
	s.Equal("older", resp.Items[0].ID)
	s.Equal("newer", resp.Items[1].ID)
}

func (s *ServiceTestSuite) TestGetSourceFeed_UnknownTypeYieldsEmptyFeed() {
	ctx := context.Background()
	s.stubBackground()

	resp, err := s.service.GetSourceFeed(ctx, domain.FeedRequest{Page: 1, PageSize: 10, ContentType: "podcast"})

	s.NoError(err)
	s.Empty(resp.Items)
	s.Equal(0, resp.Pagination.TotalCount)
}

func (s *ServiceTestSuite) TestAuxiliaryBlockFailuresDegrade() {
	ctx := context.Background()

	s.social.EXPECT().Interests(gomock.Any(), "u1").Return(nil, nil)
	s.social.EXPECT().FriendIDs(gomock.Any(), "u1").Return(nil, nil)

	s.news.EXPECT().GetPublished(gomock.Any(), 10).Return([]domain.FeedItem{newsItem("n1", "a1")}, nil)
	s.reviews.EXPECT().GetApproved(gomock.Any(), 10).Return(nil, nil)
	s.questions.EXPECT().GetAll(gomock.Any(), 10).Return(nil, nil)
	s.stories.EXPECT().GetActive(gomock.Any(), 5).Return(nil, nil)

	s.interactions.EXPECT().GetReaction(gomock.Any(), "n1", domain.ContentNews, "u1").Return(false, nil)
	s.interactions.EXPECT().GetBookmark(gomock.Any(), "n1", domain.ContentNews, "u1").Return(false, nil)
	s.comments.EXPECT().GetComments(gomock.Any(), "n1", domain.ContentNews, 1, 3).Return(nil, nil)

	// Every auxiliary block fails; the page itself must still come back.
	s.stories.EXPECT().GetActive(gomock.Any(), 20).Return(nil, errors.New("stories down"))
	s.news.EXPECT().GetPublished(gomock.Any(), 0).Return(nil, errors.New("news down")).Times(2)
	s.reviews.EXPECT().GetApproved(gomock.Any(), 0).Return(nil, errors.New("reviews down")).AnyTimes()
	s.questions.EXPECT().GetAll(gomock.Any(), 0).Return(nil, errors.New("questions down"))
	s.stories.EXPECT().GetActive(gomock.Any(), 0).Return(nil, errors.New("stories down"))
	s.social.EXPECT().Suggestions(gomock.Any(), "u1", 5).Return(nil, errors.New("graph down"))

	resp, err := s.service.GetPersonalizedFeed(ctx, domain.FeedRequest{ViewerID: "u1", Page: 1, PageSize: 10})

	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Empty(resp.Stories)
	s.Empty(resp.TrendingTopics)
	s.Empty(resp.FriendSuggestions)
	s.Equal(domain.FeedStats{}, resp.Stats)
}

func (s *ServiceTestSuite) TestViewerResolutionFailureDegrades() {
	ctx := context.Background()
	s.stubBackground()

	s.social.EXPECT().Interests(gomock.Any(), "u1").Return(nil, errors.New("redis down"))
	s.social.EXPECT().FriendIDs(gomock.Any(), "u1").Return(nil, errors.New("redis down"))

	s.news.EXPECT().GetPublished(gomock.Any(), 10).Return([]domain.FeedItem{newsItem("n1", "a1", "bmw")}, nil)
	s.reviews.EXPECT().GetApproved(gomock.Any(), 10).Return(nil, nil)
	s.questions.EXPECT().GetAll(gomock.Any(), 10).Return(nil, nil)
	s.stories.EXPECT().GetActive(gomock.Any(), 5).Return(nil, nil)

	s.interactions.EXPECT().GetReaction(gomock.Any(), "n1", domain.ContentNews, "u1").Return(false, nil)
	s.interactions.EXPECT().GetBookmark(gomock.Any(), "n1", domain.ContentNews, "u1").Return(false, nil)
	s.social.EXPECT().Suggestions(gomock.Any(), "u1", 5).Return(nil, nil)

	resp, err := s.service.GetPersonalizedFeed(ctx, domain.FeedRequest{ViewerID: "u1", Page: 1, PageSize: 10})

	s.NoError(err)
	s.Require().Len(resp.Items, 1)
	// No interests resolved, so the item sits at the base score.
	s.Equal(50.0, resp.Items[0].RelevanceScore)
}
