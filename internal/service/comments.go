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

// AddCommentInput — создание комментария к видео или ответа на комментарий.
// Target — размеченное объединение: ровно одна цель известного вида.
type AddCommentInput struct {
	OwnerID string
	Content string
	Target  models.CommentTarget
}

// AddComment — бизнес-операция создания комментария.
//
// Валидация:
//   - OwnerID и Content обязательны;
//   - Target обязана быть корректной (известный вид, непустой id) —
//     иначе ErrInvalidTarget;
//   - существование цели проверяет слой storage (ErrNotFound).
func (s *Service) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	const op = "service/comments/AddComment"

	in.OwnerID = strings.TrimSpace(in.OwnerID)
	in.Content = strings.TrimSpace(in.Content)
	lg := log.From(ctx).With("op", op, "owner_id", in.OwnerID,
		"target_kind", string(in.Target.Kind), "target_id", in.Target.ID)

	if in.OwnerID == "" || in.Content == "" {
		lg.Warn("invalid argument: empty owner_id or content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !in.Target.Valid() {
		lg.Warn("invalid comment target")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidTarget)
	}

	ownerOID, err := parseActorID(in.OwnerID)
	if err != nil {
		lg.Warn("invalid argument: malformed owner_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	targetOID, err := parseActorID(in.Target.ID)
	if err != nil {
		lg.Warn("target id malformed")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	comment := models.Comment{
		Content: in.Content,
		OwnerID: ownerOID,
	}

	switch in.Target.Kind {
	case models.TargetVideo:
		comment.VideoID = targetOID
	case models.TargetComment:
		comment.ParentID = targetOID
	}

	result, err := s.storage.CreateComment(ctx, comment)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment target not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidAssociation):
			lg.Warn("invalid association rejected by storage")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidTarget)
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on CreateComment", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// commentOwnedBy загружает комментарий и проверяет владение актором.
func (s *Service) commentOwnedBy(ctx context.Context, op, commentID, actorID string) (*models.Comment, error) {
	lg := log.From(ctx).With("op", op, "comment_id", commentID, "actor_id", actorID)

	comment, err := s.storage.CommentByID(ctx, commentID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CommentByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if !Owns(comment.OwnerID.Hex(), actorID) {
		lg.Warn("mutation attempted by non-owner")
		return nil, fmt.Errorf("%s: %w", op, ErrPermissionDenied)
	}

	return comment, nil
}

// UpdateComment — правка текста своего комментария.
func (s *Service) UpdateComment(ctx context.Context, commentID, actorID, content string) (*models.Comment, error) {
	const op = "service/comments/UpdateComment"

	commentID = strings.TrimSpace(commentID)
	content = strings.TrimSpace(content)
	lg := log.From(ctx).With("op", op, "comment_id", commentID)

	if commentID == "" || content == "" {
		lg.Warn("invalid argument: empty comment_id or content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.commentOwnedBy(ctx, op, commentID, actorID); err != nil {
		return nil, err
	}

	comment, err := s.storage.UpdateCommentContent(ctx, commentID, content)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateCommentContent", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return comment, nil
}

// DeleteComment — каскадное удаление своего комментария: вложенные ответы
// и лайки каждого удалённого комментария снимает сторадж.
func (s *Service) DeleteComment(ctx context.Context, commentID, actorID string) error {
	const op = "service/comments/DeleteComment"

	commentID = strings.TrimSpace(commentID)
	lg := log.From(ctx).With("op", op, "comment_id", commentID)

	if commentID == "" {
		lg.Warn("invalid argument: empty comment_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.commentOwnedBy(ctx, op, commentID, actorID); err != nil {
		return err
	}

	if err := s.storage.DeleteComment(ctx, commentID); err != nil {
		lg.Error("storage error on DeleteComment", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// CommentsFor — страница комментариев на цель: прямые комментарии видео
// либо ответы на комментарий; один идентификатор покрывает оба случая.
func (s *Service) CommentsFor(ctx context.Context, targetID string, p models.ListParams) ([]models.CommentView, error) {
	const op = "service/comments/CommentsFor"

	targetID = strings.TrimSpace(targetID)
	lg := log.From(ctx).With("op", op, "target_id", targetID)

	if targetID == "" {
		lg.Warn("invalid argument: empty target_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	views, err := s.storage.CommentsFor(ctx, targetID, p)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("target not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CommentsFor", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return views, nil
}
