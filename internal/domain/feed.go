package domain

import "time"

// ContentType identifies which source a feed item came from.
type ContentType string

const (
	ContentNews     ContentType = "news"
	ContentReview   ContentType = "review"
	ContentQuestion ContentType = "question"
	ContentStory    ContentType = "story"
)

// ParseContentType maps a user-supplied name to a ContentType.
// Unknown names return ok=false; callers treat that as "no content
// applicable", not as an error.
func ParseContentType(s string) (ContentType, bool) {
	switch ContentType(normalizeLower(s)) {
	case ContentNews:
		return ContentNews, true
	case ContentReview:
		return ContentReview, true
	case ContentQuestion:
		return ContentQuestion, true
	case ContentStory:
		return ContentStory, true
	}
	return "", false
}

// SortMode selects feed ordering.
type SortMode string

const (
	SortNewest     SortMode = "newest"
	SortPopular    SortMode = "popular"
	SortTrending   SortMode = "trending"
	SortEngagement SortMode = "engagement"
	SortRelevance  SortMode = "relevance" // default
)

// FeedMode selects which aggregation strategy serves the request.
type FeedMode string

const (
	ModePersonalized FeedMode = "personalized"
	ModeTrending     FeedMode = "trending"
	ModeFriends      FeedMode = "friends"
	ModeSingleSource FeedMode = "single"
)

// FeedItem is the normalized representation of one piece of content,
// regardless of which source produced it. Relevance fields are computed
// per request and never persisted.
type FeedItem struct {
	ID          string
	ContentType ContentType

	Title     string
	TitleAr   *string
	Body      *string
	BodyAr    *string
	Summary   *string
	SummaryAr *string
	ImageURL  *string

	AuthorID   string
	AuthorName string

	ViewCount    int
	LikeCount    int
	CommentCount int
	ShareCount   int

	IsLikedByUser      bool
	IsBookmarkedByUser bool

	Tags           []string
	CarMake        *string
	CarModel       *string
	CarYear        *int
	CarDisplayName *string

	CreatedAt time.Time
	UpdatedAt time.Time
	TimeAgo   string

	RelevanceScore   float64
	ReasonForShowing string
	IsTrending       bool
	IsFeatured       bool
	IsAnswered       bool
	IsExpired        bool

	InitialComments []Comment
}

// FeedRequest carries the caller's view of one feed page.
// ViewerID may be empty (anonymous feeds are allowed).
type FeedRequest struct {
	ViewerID    string
	ContentType string // empty = all sources
	SortMode    SortMode
	Page        int // 1-based
	PageSize    int
}

// Normalize clamps paging values into valid ranges.
func (r *FeedRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = 10
	}
	if r.SortMode == "" {
		r.SortMode = SortRelevance
	}
}

// Comment is one comment attached to a feed item.
type Comment struct {
	ID         string
	ContentID  string
	AuthorID   string
	AuthorName string
	Body       string
	CreatedAt  time.Time
	TimeAgo    string
}

// StoryStatus is the persisted lifecycle state of a story.
// "Expired" is not stored; it is the predicate expiresAt < now.
type StoryStatus string

const (
	StoryActive   StoryStatus = "active"
	StoryArchived StoryStatus = "archived"
)

// StoryFeedItem is an ephemeral content unit. It disappears from feeds
// once ExpiresAt passes and is later archived by the cleanup job.
type StoryFeedItem struct {
	ID            string
	AuthorID      string
	AuthorName    string
	Caption       *string
	ImageURL      *string
	ViewCount     int
	Status        StoryStatus
	CreatedAt     time.Time
	ExpiresAt     time.Time
	TimeRemaining string
}

// Expired reports whether the story's lifetime has passed at now.
func (s StoryFeedItem) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// TrendingTopic is a derived aggregate over tags and car makes.
// It is recomputed on each request and never persisted.
type TrendingTopic struct {
	Topic           string
	Category        string
	PostCount       int
	EngagementCount int
	TrendingScore   float64
	LastActivityAt  time.Time
	TimeAgo         string
}

// FriendSuggestion is one "people you may know" entry.
type FriendSuggestion struct {
	UserID        string
	DisplayName   string
	AvatarURL     *string
	MutualFriends int
}

// FeedStats aggregates engagement counters across whole sources, not
// just the current page. UnseenItems, TrendingItems and FriendsItems
// are placeholder constants until a per-viewer last-seen watermark
// exists.
type FeedStats struct {
	TotalNews      int
	TotalReviews   int
	TotalQuestions int
	TotalStories   int
	TotalLikes     int
	TotalComments  int
	TotalShares    int
	TotalViews     int
	UnseenItems    int
	TrendingItems  int
	FriendsItems   int
}

// Pagination is derived metadata shared by every feed mode.
type Pagination struct {
	CurrentPage     int
	PageSize        int
	TotalCount      int
	TotalPages      int
	StartItem       int
	EndItem         int
	HasNextPage     bool
	HasPreviousPage bool
}

// NewPagination computes page metadata from (page, pageSize, totalCount)
// with the one shared formula used by all feed modes.
func NewPagination(page, pageSize, totalCount int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (totalCount + pageSize - 1) / pageSize

	start := 0
	end := 0
	if totalCount > 0 && page <= totalPages {
		start = (page-1)*pageSize + 1
		end = page * pageSize
		if end > totalCount {
			end = totalCount
		}
	}

	return Pagination{
		CurrentPage:     page,
		PageSize:        pageSize,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		StartItem:       start,
		EndItem:         end,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && totalCount > 0,
	}
}

// FeedResponse is the fully composed result of one orchestrator call.
type FeedResponse struct {
	Items             []FeedItem
	Stories           []StoryFeedItem
	TrendingTopics    []TrendingTopic
	FriendSuggestions []FriendSuggestion
	Stats             FeedStats
	Pagination        Pagination
	HasMoreContent    bool
}

// ModerationEvent is emitted for interaction actions so a moderation
// consumer can be attached downstream.
type ModerationEvent struct {
	Action      string      `json:"action"` // "bookmark", "report", "hide", "seen"
	ViewerID    string      `json:"viewer_id"`
	ContentID   string      `json:"content_id"`
	ContentType ContentType `json:"content_type"`
	Detail      string      `json:"detail,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}
