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

// likeTargetExists проверяет существование цели лайка по её виду.
func (s *Service) likeTargetExists(ctx context.Context, target models.LikeTarget) error {
	switch target.Kind {
	case models.TargetVideo:
		_, err := s.storage.VideoByID(ctx, target.ID)
		return err
	case models.TargetComment:
		_, err := s.storage.CommentByID(ctx, target.ID)
		return err
	case models.TargetTweet:
		_, err := s.storage.TweetByID(ctx, target.ID)
		return err
	}

	return storage.ErrInvalidAssociation
}

// ToggleLike — бизнес-операция переключения лайка.
//
// Валидация: actor обязателен, target — корректное объединение
// (ErrInvalidTarget) с существующей целью (ErrNotFound). Сам toggle
// атомарен на уровне стораджа. Возвращает true, если лайк теперь стоит.
func (s *Service) ToggleLike(ctx context.Context, actorID string, target models.LikeTarget) (bool, error) {
	const op = "service/likes/ToggleLike"

	actorID = strings.TrimSpace(actorID)
	lg := log.From(ctx).With("op", op, "actor_id", actorID,
		"target_kind", string(target.Kind), "target_id", target.ID)

	if actorID == "" {
		lg.Warn("invalid argument: empty actor_id")
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !target.Valid() {
		lg.Warn("invalid like target")
		return false, fmt.Errorf("%s: %w", op, ErrInvalidTarget)
	}

	if err := s.likeTargetExists(ctx, target); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("like target not found")
			return false, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidAssociation):
			lg.Warn("invalid like target kind")
			return false, fmt.Errorf("%s: %w", op, ErrInvalidTarget)
		default:
			lg.Error("storage error on target lookup", "err", err)
			return false, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	liked, err := s.storage.ToggleLike(ctx, actorID, target)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAssociation):
			lg.Warn("invalid association rejected by storage")
			return false, fmt.Errorf("%s: %w", op, ErrInvalidTarget)
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("like target not found")
			return false, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on ToggleLike", "err", err)
			return false, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return liked, nil
}

// likedList — общий путь выдач liked-*.
func likedList[T any](
	ctx context.Context,
	op, userID string,
	p models.ListParams,
	fetch func(context.Context, string, models.ListParams) ([]T, error),
) ([]T, error) {
	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	out, err := fetch(ctx, userID, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on liked list", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return out, nil
}

// LikedVideos — страница лайкнутых пользователем видео.
func (s *Service) LikedVideos(ctx context.Context, userID string, p models.ListParams) ([]models.LikedVideo, error) {
	return likedList(ctx, "service/likes/LikedVideos", userID, p, s.storage.LikedVideos)
}

// LikedComments — страница лайкнутых пользователем комментариев.
func (s *Service) LikedComments(ctx context.Context, userID string, p models.ListParams) ([]models.LikedComment, error) {
	return likedList(ctx, "service/likes/LikedComments", userID, p, s.storage.LikedComments)
}

// LikedTweets — страница лайкнутых пользователем твитов.
func (s *Service) LikedTweets(ctx context.Context, userID string, p models.ListParams) ([]models.LikedTweet, error) {
	return likedList(ctx, "service/likes/LikedTweets", userID, p, s.storage.LikedTweets)
}
