package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/feed/mocks"
)

type InteractionsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	store        *mocks.MockInteractionStore
	events       *mocks.MockEventPublisher
	interactions *Interactions
}

func (s *InteractionsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockInteractionStore(s.ctrl)
	s.events = mocks.NewMockEventPublisher(s.ctrl)
	s.interactions = NewInteractions(s.store, s.events, testLogger())
}

func (s *InteractionsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInteractionsTestSuite(t *testing.T) {
	suite.Run(t, new(InteractionsTestSuite))
}

func (s *InteractionsTestSuite) TestBookmark_ToggleTwiceReturnsToOriginal() {
	ctx := context.Background()

	bookmarked := false
	s.store.EXPECT().ToggleBookmark(ctx, "u1", "n1", domain.ContentNews).
		DoAndReturn(func(context.Context, string, string, domain.ContentType) (bool, error) {
			bookmarked = !bookmarked
			return bookmarked, nil
		}).Times(2)
	s.events.EXPECT().Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event domain.ModerationEvent) {
			s.Equal("bookmark", event.Action)
		}).Return(nil).Times(2)

	first, err := s.interactions.Bookmark(ctx, "u1", "n1", domain.ContentNews)
	s.NoError(err)
	s.True(first)

	second, err := s.interactions.Bookmark(ctx, "u1", "n1", domain.ContentNews)
	s.NoError(err)
	s.False(second)
}

func (s *InteractionsTestSuite) TestBookmark_EventCarriesDetail() {
	ctx := context.Background()

	s.store.EXPECT().ToggleBookmark(ctx, "u1", "n1", domain.ContentNews).Return(true, nil)
	s.events.EXPECT().Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event domain.ModerationEvent) {
			s.Equal("added", event.Detail)
			s.Equal("u1", event.ViewerID)
			s.Equal("n1", event.ContentID)
		}).Return(nil)

	_, err := s.interactions.Bookmark(ctx, "u1", "n1", domain.ContentNews)
	s.NoError(err)
}

func (s *InteractionsTestSuite) TestBookmark_RejectsMissingIDs() {
	ctx := context.Background()

	_, err := s.interactions.Bookmark(ctx, "", "n1", domain.ContentNews)
	s.Error(err)

	_, err = s.interactions.Bookmark(ctx, "u1", "", domain.ContentNews)
	s.Error(err)
}

func (s *InteractionsTestSuite) TestBookmark_StoreError() {
	ctx := context.Background()

	s.store.EXPECT().ToggleBookmark(ctx, "u1", "n1", domain.ContentNews).
		Return(false, errors.New("deadlock"))

	_, err := s.interactions.Bookmark(ctx, "u1", "n1", domain.ContentNews)
	s.Error(err)
	s.Contains(err.Error(), "toggle bookmark")
}

func (s *InteractionsTestSuite) TestBookmark_PublishFailureDoesNotFailToggle() {
	ctx := context.Background()

	s.store.EXPECT().ToggleBookmark(ctx, "u1", "n1", domain.ContentNews).Return(true, nil)
	s.events.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

	bookmarked, err := s.interactions.Bookmark(ctx, "u1", "n1", domain.ContentNews)
	s.NoError(err)
	s.True(bookmarked)
}

func (s *InteractionsTestSuite) TestReport_EmitsReason() {
	ctx := context.Background()

	s.events.EXPECT().Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event domain.ModerationEvent) {
			s.Equal("report", event.Action)
			s.Equal("spam", event.Detail)
		}).Return(nil)

	s.NoError(s.interactions.Report(ctx, "u1", "n1", domain.ContentNews, "spam"))
}

func (s *InteractionsTestSuite) TestHide_Emits() {
	ctx := context.Background()

	s.events.EXPECT().Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event domain.ModerationEvent) {
			s.Equal("hide", event.Action)
		}).Return(nil)

	s.NoError(s.interactions.Hide(ctx, "u1", "r1", domain.ContentReview))
}

func (s *InteractionsTestSuite) TestMarkSeen_Persists() {
	ctx := context.Background()

	s.store.EXPECT().MarkSeen(ctx, "u1", "q1", domain.ContentQuestion).Return(nil)
	s.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	s.NoError(s.interactions.MarkSeen(ctx, "u1", "q1", domain.ContentQuestion))
}

func (s *InteractionsTestSuite) TestMarkSeen_AnonymousIsNoop() {
	s.NoError(s.interactions.MarkSeen(context.Background(), "", "q1", domain.ContentQuestion))
}

func (s *InteractionsTestSuite) TestMarkSeen_StoreError() {
	ctx := context.Background()

	s.store.EXPECT().MarkSeen(ctx, "u1", "q1", domain.ContentQuestion).
		Return(errors.New("constraint"))

	err := s.interactions.MarkSeen(ctx, "u1", "q1", domain.ContentQuestion)
	s.Error(err)
}

func (s *InteractionsTestSuite) TestNoPublisherConfigured() {
	ctx := context.Background()
	interactions := NewInteractions(s.store, nil, testLogger())

	s.store.EXPECT().ToggleBookmark(ctx, "u1", "n1", domain.ContentNews).Return(true, nil)

	bookmarked, err := interactions.Bookmark(ctx, "u1", "n1", domain.ContentNews)
	s.NoError(err)
	s.True(bookmarked)
}
