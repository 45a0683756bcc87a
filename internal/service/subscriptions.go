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

// ToggleSubscription — переключение подписки subscriber → channel.
//
// Валидация: оба идентификатора обязательны, самоподписка запрещена
// (ErrInvalidArgument), канал обязан существовать (ErrNotFound).
// Возвращает true, если подписка теперь есть.
func (s *Service) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	const op = "service/subscriptions/ToggleSubscription"

	subscriberID = strings.TrimSpace(subscriberID)
	channelID = strings.TrimSpace(channelID)
	lg := log.From(ctx).With("op", op, "subscriber_id", subscriberID, "channel_id", channelID)

	if subscriberID == "" || channelID == "" {
		lg.Warn("invalid argument: empty subscriber_id or channel_id")
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if subscriberID == channelID {
		lg.Warn("self-subscription rejected")
		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.UserByID(ctx, channelID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("channel not found")
			return false, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)
			return false, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	subscribed, err := s.storage.ToggleSubscription(ctx, subscriberID, channelID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("subscriber not found")
			return false, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on ToggleSubscription", "err", err)
			return false, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return subscribed, nil
}

// Subscribers — рёбра подписок на канал.
func (s *Service) Subscribers(ctx context.Context, channelID string, p models.ListParams) ([]models.Subscription, error) {
	const op = "service/subscriptions/Subscribers"

	channelID = strings.TrimSpace(channelID)
	lg := log.From(ctx).With("op", op, "channel_id", channelID)

	if channelID == "" {
		lg.Warn("invalid argument: empty channel_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	edges, err := s.storage.Subscribers(ctx, channelID, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("channel not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on Subscribers", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return edges, nil
}

// SubscribedChannels — рёбра подписок пользователя.
func (s *Service) SubscribedChannels(ctx context.Context, subscriberID string, p models.ListParams) ([]models.Subscription, error) {
	const op = "service/subscriptions/SubscribedChannels"

	subscriberID = strings.TrimSpace(subscriberID)
	lg := log.From(ctx).With("op", op, "subscriber_id", subscriberID)

	if subscriberID == "" {
		lg.Warn("invalid argument: empty subscriber_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	edges, err := s.storage.SubscribedChannels(ctx, subscriberID, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("subscriber not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SubscribedChannels", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return edges, nil
}
