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

type TrendingTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	news     *mocks.MockNewsSource
	reviews  *mocks.MockReviewSource
	computer *TrendingComputer
}

func (s *TrendingTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.news = mocks.NewMockNewsSource(s.ctrl)
	s.reviews = mocks.NewMockReviewSource(s.ctrl)
	s.computer = NewTrendingComputer(s.news, s.reviews, testLogger())
}

func (s *TrendingTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTrendingTestSuite(t *testing.T) {
	suite.Run(t, new(TrendingTestSuite))
}

func (s *TrendingTestSuite) TestComputeTrendingTopics_MergesTagAndMakeFacets() {
	ctx := context.Background()
	bmw := "BMW"
	created := time.Now().Add(-2 * time.Hour)

	s.news.EXPECT().GetPublished(ctx, 0).Return([]domain.FeedItem{
		{ID: "n1", Tags: []string{"electric", "suv"}, LikeCount: 4, CommentCount: 1, CreatedAt: created},
		{ID: "n2", Tags: []string{"electric"}, CarMake: &bmw, LikeCount: 2, CreatedAt: created.Add(time.Hour)},
	}, nil)
	s.reviews.EXPECT().GetApproved(ctx, 0).Return([]domain.FeedItem{
		{ID: "r1", CarMake: &bmw, CommentCount: 3, CreatedAt: created},
	}, nil)

	topics, err := s.computer.ComputeTrendingTopics(ctx, 4)

	s.NoError(err)
	s.Require().NotEmpty(topics)

	byTopic := make(map[string]domain.TrendingTopic, len(topics))
	for _, topic := range topics {
		byTopic[topic.Topic] = topic
	}

	electric, ok := byTopic["electric"]
	s.Require().True(ok)
	s.Equal("tag", electric.Category)
	s.Equal(2, electric.PostCount)
	s.Equal(7, electric.EngagementCount)
	s.Equal(27.0, electric.TrendingScore)
	s.NotEmpty(electric.TimeAgo)

	make_, ok := byTopic["BMW"]
	s.Require().True(ok)
	s.Equal("car_make", make_.Category)
	s.Equal(2, make_.PostCount)

	for i := 1; i < len(topics); i++ {
		s.GreaterOrEqual(topics[i-1].TrendingScore, topics[i].TrendingScore)
	}
}

func (s *TrendingTestSuite) TestComputeTrendingTopics_SplitsBudget() {
	ctx := context.Background()

	s.news.EXPECT().GetPublished(ctx, 0).Return([]domain.FeedItem{
		{ID: "n1", Tags: []string{"a", "b", "c", "d"}},
	}, nil)
	s.reviews.EXPECT().GetApproved(ctx, 0).Return(nil, nil)

	topics, err := s.computer.ComputeTrendingTopics(ctx, 4)

	s.NoError(err)
	// Four tags compete for the tag half of the budget only.
	s.Len(topics, 2)
	for _, topic := range topics {
		s.Equal("tag", topic.Category)
	}
}

func (s *TrendingTestSuite) TestComputeTrendingTopics_ReviewFailureSkipsMakes() {
	ctx := context.Background()
	bmw := "BMW"

	s.news.EXPECT().GetPublished(ctx, 0).Return([]domain.FeedItem{
		{ID: "n1", Tags: []string{"electric"}, CarMake: &bmw},
	}, nil)
	s.reviews.EXPECT().GetApproved(ctx, 0).Return(nil, errors.New("db down"))

	topics, err := s.computer.ComputeTrendingTopics(ctx, 4)

	s.NoError(err)
	s.Require().Len(topics, 2)
}

func (s *TrendingTestSuite) TestComputeTrendingTopics_NewsFailureIsFatal() {
	ctx := context.Background()

	s.news.EXPECT().GetPublished(ctx, 0).Return(nil, errors.New("db down"))

	topics, err := s.computer.ComputeTrendingTopics(ctx, 4)

	s.Error(err)
	s.Nil(topics)
}

func (s *TrendingTestSuite) TestComputeTrendingTopics_ZeroLimit() {
	topics, err := s.computer.ComputeTrendingTopics(context.Background(), 0)

	s.NoError(err)
	s.Nil(topics)
}

func (s *TrendingTestSuite) TestComputeTrendingTopics_CaseInsensitiveMerge() {
	ctx := context.Background()

	s.news.EXPECT().GetPublished(ctx, 0).Return([]domain.FeedItem{
		{ID: "n1", Tags: []string{"Electric"}},
		{ID: "n2", Tags: []string{"electric"}},
	}, nil)
	s.reviews.EXPECT().GetApproved(ctx, 0).Return(nil, nil)

	topics, err := s.computer.ComputeTrendingTopics(ctx, 2)

	s.NoError(err)
	s.Require().Len(topics, 1)
	s.Equal(2, topics[0].PostCount)
}
