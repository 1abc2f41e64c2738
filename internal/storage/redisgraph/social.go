package redisgraph

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/config"
	"github.com/Mostafa-SAID7/Community-Car-MVC-sub003/internal/domain"
)

// Client reads the externally-owned social graph and user directory
// out of Redis: friend and interest sets per user, display names in a
// hash, plus an active-user set used for suggestions. The feed core
// never writes here.
type Client struct {
	rdb    *redis.Client
	logger *slog.Logger
}

func New(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{rdb: rdb, logger: logger.With("component", "redisgraph")}, nil
}

func friendsKey(userID string) string   { return "friends:" + userID }
func interestsKey(userID string) string { return "interests:" + userID }

const (
	usernamesKey   = "usernames"
	activeUsersKey = "users:active"
)

func (c *Client) FriendIDs(ctx context.Context, viewerID string) ([]string, error) {
	ids, err := c.rdb.SMembers(ctx, friendsKey(viewerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("friends for %s: %w", viewerID, err)
	}
	return ids, nil
}

func (c *Client) Interests(ctx context.Context, viewerID string) ([]string, error) {
	interests, err := c.rdb.SMembers(ctx, interestsKey(viewerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("interests for %s: %w", viewerID, err)
	}
	return interests, nil
}

// DisplayName resolves an author id. A missing entry is not an error;
// the caller keeps the id and an empty name.
func (c *Client) DisplayName(ctx context.Context, userID string) (string, error) {
	name, err := c.rdb.HGet(ctx, usernamesKey, userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("display name for %s: %w", userID, err)
	}
	return name, nil
}

// Suggestions samples active users the viewer is not already friends
// with and ranks nothing beyond mutual-friend counts; sampling keeps
// the call cheap at the cost of variety between requests.
func (c *Client) Suggestions(ctx context.Context, viewerID string, limit int) ([]domain.FriendSuggestion, error) {
	if limit <= 0 {
		return nil, nil
	}

	candidates, err := c.rdb.SRandMemberN(ctx, activeUsersKey, int64(limit*3)).Result()
	if err != nil {
		return nil, fmt.Errorf("sample active users: %w", err)
	}

	friends, err := c.rdb.SMembers(ctx, friendsKey(viewerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("friends for %s: %w", viewerID, err)
	}
	friendSet := make(map[string]struct{}, len(friends))
	for _, f := range friends {
		friendSet[f] = struct{}{}
	}

	var suggestions []domain.FriendSuggestion
	for _, candidate := range candidates {
		if candidate == viewerID {
			continue
		}
		if _, isFriend := friendSet[candidate]; isFriend {
			continue
		}

		name, err := c.DisplayName(ctx, candidate)
		if err != nil {
			c.logger.Debug("suggestion name lookup failed", "user_id", candidate, "error", err)
		}

		mutual, err := c.rdb.SInterCard(ctx, 0, friendsKey(viewerID), friendsKey(candidate)).Result()
		if err != nil {
			mutual = 0
		}

		suggestions = append(suggestions, domain.FriendSuggestion{
			UserID:        candidate,
			DisplayName:   name,
			MutualFriends: int(mutual),
		})
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
