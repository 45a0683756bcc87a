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

// CreatePlaylistInput — создание плейлиста.
type CreatePlaylistInput struct {
	OwnerID     string
	Title       string
	Description string
}

// UpdatePlaylistInput — правка полей плейлиста; nil означает «не трогать».
type UpdatePlaylistInput struct {
	PlaylistID  string
	ActorID     string
	Title       *string
	Description *string
}

// CreatePlaylist — бизнес-операция создания плейлиста.
func (s *Service) CreatePlaylist(ctx context.Context, in CreatePlaylistInput) (*models.Playlist, error) {
	const op = "service/playlists/CreatePlaylist"

	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.Title = strings.TrimSpace(in.Title)
	lg := log.From(ctx).With("op", op, "owner_id", in.OwnerID, "title", in.Title)

	if in.OwnerID == "" || in.Title == "" {
		lg.Warn("invalid argument: empty owner_id or title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ownerOID, err := parseActorID(in.OwnerID)
	if err != nil {
		lg.Warn("invalid argument: malformed owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	playlist, err := s.storage.CreatePlaylist(ctx, models.Playlist{
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		OwnerID:     ownerOID,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on CreatePlaylist", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return playlist, nil
}

// playlistOwnedBy загружает плейлист и проверяет владение актором.
func (s *Service) playlistOwnedBy(ctx context.Context, op, playlistID, actorID string) (*models.Playlist, error) {
	lg := log.From(ctx).With("op", op, "playlist_id", playlistID, "actor_id", actorID)

	playlist, err := s.storage.PlaylistByID(ctx, playlistID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("playlist not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PlaylistByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !Owns(playlist.OwnerID.Hex(), actorID) {
		lg.Warn("mutation attempted by non-owner")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return playlist, nil
}

// AddVideoToPlaylist дописывает видео в конец своего плейлиста
// (дубликаты допустимы, порядок — порядок добавления).
func (s *Service) AddVideoToPlaylist(ctx context.Context, playlistID, videoID, actorID string) (*models.Playlist, error) {
	const op = "service/playlists/AddVideoToPlaylist"

	playlistID = strings.TrimSpace(playlistID)
	videoID = strings.TrimSpace(videoID)
	lg := log.From(ctx).With("op", op, "playlist_id", playlistID, "video_id", videoID)

	if playlistID == "" || videoID == "" {
		lg.Warn("invalid argument: empty playlist_id or video_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.playlistOwnedBy(ctx, op, playlistID, actorID); err != nil {
		return nil, err
	}

	playlist, err := s.storage.AddVideoToPlaylist(ctx, playlistID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("playlist or video not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on AddVideoToPlaylist", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return playlist, nil
}

// RemoveVideoFromPlaylist убирает все вхождения видео из своего плейлиста.
func (s *Service) RemoveVideoFromPlaylist(ctx context.Context, playlistID, videoID, actorID string) (*models.Playlist, error) {
	const op = "service/playlists/RemoveVideoFromPlaylist"

	playlistID = strings.TrimSpace(playlistID)
	videoID = strings.TrimSpace(videoID)
	lg := log.From(ctx).With("op", op, "playlist_id", playlistID, "video_id", videoID)

	if playlistID == "" || videoID == "" {
		lg.Warn("invalid argument: empty playlist_id or video_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.playlistOwnedBy(ctx, op, playlistID, actorID); err != nil {
		return nil, err
	}

	playlist, err := s.storage.RemoveVideoFromPlaylist(ctx, playlistID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("playlist not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on RemoveVideoFromPlaylist", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return playlist, nil
}

// UpdatePlaylistDetails — правка title/description своего плейлиста.
func (s *Service) UpdatePlaylistDetails(ctx context.Context, in UpdatePlaylistInput) (*models.Playlist, error) {
	const op = "service/playlists/UpdatePlaylistDetails"

	in.PlaylistID = strings.TrimSpace(in.PlaylistID)
	lg := log.From(ctx).With("op", op, "playlist_id", in.PlaylistID)

	if in.PlaylistID == "" {
		lg.Warn("invalid argument: empty playlist_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Title == nil && in.Description == nil {
		lg.Warn("invalid argument: nothing to update")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.playlistOwnedBy(ctx, op, in.PlaylistID, in.ActorID); err != nil {
		return nil, err
	}

	playlist, err := s.storage.UpdatePlaylistDetails(ctx, in.PlaylistID, storage.PlaylistUpdate{
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("playlist not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdatePlaylistDetails", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return playlist, nil
}

// DeletePlaylist удаляет свой плейлист; видео остаются нетронутыми.
func (s *Service) DeletePlaylist(ctx context.Context, playlistID, actorID string) error {
	const op = "service/playlists/DeletePlaylist"

	playlistID = strings.TrimSpace(playlistID)
	lg := log.From(ctx).With("op", op, "playlist_id", playlistID)

	if playlistID == "" {
		lg.Warn("invalid argument: empty playlist_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.playlistOwnedBy(ctx, op, playlistID, actorID); err != nil {
		return err
	}

	if err := s.storage.DeletePlaylist(ctx, playlistID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("playlist not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeletePlaylist", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// PlaylistByID — плейлист с подклеенными карточками видео.
func (s *Service) PlaylistByID(ctx context.Context, playlistID string, p models.ListParams) (*models.PlaylistView, error) {
	const op = "service/playlists/PlaylistByID"

	playlistID = strings.TrimSpace(playlistID)
	lg := log.From(ctx).With("op", op, "playlist_id", playlistID)

	if playlistID == "" {
		lg.Warn("invalid argument: empty playlist_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	view, err := s.storage.PlaylistView(ctx, playlistID, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("playlist not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PlaylistView", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return view, nil
}

// UserPlaylists — плейлисты пользователя.
func (s *Service) UserPlaylists(ctx context.Context, ownerID string) ([]models.Playlist, error) {
	const op = "service/playlists/UserPlaylists"

	ownerID = strings.TrimSpace(ownerID)
	lg := log.From(ctx).With("op", op, "owner_id", ownerID)

	if ownerID == "" {
		lg.Warn("invalid argument: empty owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	playlists, err := s.storage.PlaylistsByOwner(ctx, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("owner not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PlaylistsByOwner", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return playlists, nil
}
