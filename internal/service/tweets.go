package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
	"github.com/pribylovaa/go-video-hosting/pkg/log"
)

// CreateTweetInput — создание твита или ответа (ParentID пуст для корня).
type CreateTweetInput struct {
	OwnerID  string
	Content  string
	ParentID string
}

// CreateTweet — бизнес-операция создания твита.
//
// Валидация: owner/content обязательны; если задан ParentID, родитель
// обязан существовать (ErrNotFound).
func (s *Service) CreateTweet(ctx context.Context, in CreateTweetInput) (*models.Tweet, error) {
	const op = "service/tweets/CreateTweet"

	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.Content = strings.TrimSpace(in.Content)
	in.ParentID = strings.TrimSpace(in.ParentID)
	lg := log.From(ctx).With("op", op, "owner_id", in.OwnerID, "parent_id", in.ParentID)

	if in.OwnerID == "" || in.Content == "" {
		lg.Warn("invalid argument: empty owner_id or content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ownerOID, err := parseActorID(in.OwnerID)
	if err != nil {
		lg.Warn("invalid argument: malformed owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	tweet := models.Tweet{
		Content: in.Content,
		OwnerID: ownerOID,
	}

	if in.ParentID != "" {
		parentOID, err := parseActorID(in.ParentID)
		if err != nil {
			lg.Warn("parent id malformed")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		tweet.ParentID = parentOID
	}

	result, err := s.storage.CreateTweet(ctx, tweet)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("parent tweet not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on CreateTweet", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// DeleteTweet — каскадное удаление своего твита: поддерево ответов и лайки
// каждого удалённого твита снимает сторадж.
func (s *Service) DeleteTweet(ctx context.Context, tweetID, actorID string) error {
	const op = "service/tweets/DeleteTweet"

	tweetID = strings.TrimSpace(tweetID)
	lg := log.From(ctx).With("op", op, "tweet_id", tweetID, "actor_id", actorID)

	if tweetID == "" {
		lg.Warn("invalid argument: empty tweet_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	tweet, err := s.storage.TweetByID(ctx, tweetID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("tweet not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on TweetByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !Owns(tweet.OwnerID.Hex(), actorID) {
		lg.Warn("deletion attempted by non-owner")
		return fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	if err := s.storage.DeleteTweet(ctx, tweetID); err != nil {
		lg.Error("storage error on DeleteTweet", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// UserTweets — твиты пользователя, новые первыми.
func (s *Service) UserTweets(ctx context.Context, ownerID string, p models.ListParams) ([]models.Tweet, error) {
	const op = "service/tweets/UserTweets"

	ownerID = strings.TrimSpace(ownerID)
	lg := log.From(ctx).With("op", op, "owner_id", ownerID)

	if ownerID == "" {
		lg.Warn("invalid argument: empty owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	tweets, err := s.storage.TweetsByOwner(ctx, ownerID, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("owner not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on TweetsByOwner", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return tweets, nil
}

// TweetReplies — страница ответов на твит с владельцами.
func (s *Service) TweetReplies(ctx context.Context, tweetID string, p models.ListParams) ([]models.TweetView, error) {
	const op = "service/tweets/TweetReplies"

	tweetID = strings.TrimSpace(tweetID)
	lg := log.From(ctx).With("op", op, "tweet_id", tweetID)

	if tweetID == "" {
		lg.Warn("invalid argument: empty tweet_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	replies, err := s.storage.TweetReplies(ctx, tweetID, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("tweet not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on TweetReplies", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return replies, nil
}
