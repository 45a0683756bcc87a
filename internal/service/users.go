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

// RegisterInput — создание учётной записи.
// PasswordHash — готовый непрозрачный хеш от внешнего auth-провайдера.
type RegisterInput struct {
	Username     string
	Email        string
	FullName     string
	PasswordHash string
}

// UpdateAccountInput — изменение профиля; пустое поле означает «не трогать».
type UpdateAccountInput struct {
	UserID   string
	FullName string
	Email    string
}

// Register — бизнес-операция регистрации пользователя.
//
// Валидация: username/email/password hash обязательны.
// Ошибки: ErrConflict при занятом username/email, ErrInternal — прочие.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "service/users/Register"

	lg := log.From(ctx).With("op", op, "username", in.Username)

	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" {
		lg.Warn("invalid argument: empty username or email")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.PasswordHash == "" {
		lg.Warn("invalid argument: empty password hash")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.CreateUser(ctx, models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: in.PasswordHash,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("username or email already taken")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on CreateUser", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

// UserByID — получить пользователя по ID.
func (s *Service) UserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "service/users/UserByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

// UpdateAccount — изменить full_name/email своей учётной записи.
func (s *Service) UpdateAccount(ctx context.Context, in UpdateAccountInput) (*models.User, error) {
	const op = "service/users/UpdateAccount"

	in.UserID = strings.TrimSpace(in.UserID)
	lg := log.From(ctx).With("op", op, "user_id", in.UserID)

	if in.UserID == "" {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if strings.TrimSpace(in.FullName) == "" && strings.TrimSpace(in.Email) == "" {
		lg.Warn("invalid argument: nothing to update")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.storage.UpdateAccount(ctx, in.UserID, in.FullName, in.Email)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("email already taken")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		default:
			lg.Error("storage error on UpdateAccount", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

// mediaUploadURL — общий путь генерации presigned PUT для объекта вида kind.
func (s *Service) mediaUploadURL(ctx context.Context, op string, kind storage.MediaKind, ownerID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	ownerID = strings.TrimSpace(ownerID)
	lg := log.From(ctx).With("op", op, "owner_id", ownerID, "content_type", contentType)

	if ownerID == "" {
		lg.Warn("invalid argument: empty owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	info, err := s.blobs.MediaUploadURL(ctx, kind, ownerID, contentType, contentLength)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBlobInvalidArgument):
			lg.Warn("upload rejected by limits")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("blob storage error on MediaUploadURL", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return info, nil
}

// AvatarUploadURL — presigned PUT для нового аватара.
func (s *Service) AvatarUploadURL(ctx context.Context, userID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	return s.mediaUploadURL(ctx, "service/users/AvatarUploadURL", storage.MediaAvatar, userID, contentType, contentLength)
}

// CoverUploadURL — presigned PUT для новой обложки канала.
func (s *Service) CoverUploadURL(ctx context.Context, userID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	return s.mediaUploadURL(ctx, "service/users/CoverUploadURL", storage.MediaCover, userID, contentType, contentLength)
}

// confirmUserImage — общий путь подтверждения аватара/обложки:
// проверка факта загрузки, подмена URL в профиле и best-effort удаление
// прежнего объекта. Ошибка удаления блоба мутацию БД не отменяет.
func (s *Service) confirmUserImage(
	ctx context.Context,
	op string,
	kind storage.MediaKind,
	userID, key string,
	oldURL func(*models.User) string,
	setURL func(context.Context, string, string) (*models.User, error),
) (*models.User, error) {
	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID, "key", key)

	if userID == "" || strings.TrimSpace(key) == "" {
		lg.Warn("invalid argument: empty user_id or key")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	current, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	publicURL, err := s.blobs.CheckMediaUpload(ctx, kind, userID, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBlobNotFound):
			lg.Warn("uploaded object not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrBlobInvalidArgument):
			lg.Warn("uploaded object violates limits")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("blob storage error on CheckMediaUpload", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	updated, err := setURL(ctx, userID, publicURL)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on set image url", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	// Старый объект убираем best-effort: профиль уже указывает на новый.
	if old := oldURL(current); old != "" && old != publicURL {
		if err := s.blobs.DeleteByURL(ctx, old); err != nil {
			lg.Warn("failed to delete previous object", "url", old, "err", err)
		}
	}

	return updated, nil
}

// ConfirmAvatar подтверждает загрузку аватара и подменяет его в профиле.
func (s *Service) ConfirmAvatar(ctx context.Context, userID, key string) (*models.User, error) {
	return s.confirmUserImage(ctx, "service/users/ConfirmAvatar", storage.MediaAvatar, userID, key,
		func(u *models.User) string { return u.Avatar },
		s.storage.SetAvatar,
	)
}

// ConfirmCover подтверждает загрузку обложки и подменяет её в профиле.
func (s *Service) ConfirmCover(ctx context.Context, userID, key string) (*models.User, error) {
	return s.confirmUserImage(ctx, "service/users/ConfirmCover", storage.MediaCover, userID, key,
		func(u *models.User) string { return u.CoverImage },
		s.storage.SetCoverImage,
	)
}

// UpdatePasswordHash — ротация хеша пароля (сам пароль проверяет и хеширует
// внешний auth-провайдер).
func (s *Service) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	const op = "service/users/UpdatePasswordHash"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" || hash == "" {
		lg.Warn("invalid argument: empty user_id or hash")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.SetPasswordHash(ctx, userID, hash); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SetPasswordHash", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// SetRefreshToken сохраняет refresh-токен пользователя (login-путь).
func (s *Service) SetRefreshToken(ctx context.Context, userID, token string) error {
	const op = "service/users/SetRefreshToken"

	if token == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	return s.setRefreshToken(ctx, op, userID, token)
}

// ClearRefreshToken снимает refresh-токен (logout-путь).
func (s *Service) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.setRefreshToken(ctx, "service/users/ClearRefreshToken", userID, "")
}

func (s *Service) setRefreshToken(ctx context.Context, op, userID, token string) error {
	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" {
		lg.Warn("invalid argument: empty user_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.SetRefreshToken(ctx, userID, token); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SetRefreshToken", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// WatchHistory — история просмотров пользователя с карточками видео.
func (s *Service) WatchHistory(ctx context.Context, userID string) ([]models.VideoView, error) {
	const op = "service/users/WatchHistory"

	userID = strings.TrimSpace(userID)
	lg := log.From(ctx).With("op", op, "user_id", userID)

	if userID == "" {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	history, err := s.storage.WatchHistory(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on WatchHistory", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return history, nil
}

// ChannelProfile — профиль канала по username глазами viewer
// (viewerID пуст для анонимного запроса).
func (s *Service) ChannelProfile(ctx context.Context, username, viewerID string) (*models.ChannelProfile, error) {
	const op = "service/users/ChannelProfile"

	username = strings.TrimSpace(username)
	lg := log.From(ctx).With("op", op, "username", username)

	if username == "" {
		lg.Warn("invalid argument: empty username")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	profile, err := s.storage.ChannelProfile(ctx, username, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("channel not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on ChannelProfile", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return profile, nil
}

// ChannelStats — сводка дашборда; доступна только самому владельцу канала.
func (s *Service) ChannelStats(ctx context.Context, channelID, actorID string) (*models.ChannelStats, error) {
	const op = "service/users/ChannelStats"

	channelID = strings.TrimSpace(channelID)
	lg := log.From(ctx).With("op", op, "channel_id", channelID)

	if channelID == "" {
		lg.Warn("invalid argument: empty channel_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !Owns(channelID, actorID) {
		lg.Warn("stats requested by non-owner")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	stats, err := s.storage.ChannelStats(ctx, channelID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("channel not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on ChannelStats", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return stats, nil
}
