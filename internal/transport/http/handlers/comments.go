package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/service"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

type createCommentRequest struct {
	Content    string `json:"content"`
	TargetKind string `json:"target_kind"`
	TargetID   string `json:"target_id"`
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var in createCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	comment, err := h.svc.AddComment(r.Context(), service.AddCommentInput{
		OwnerID: middleware.ActorID(r.Context()),
		Content: in.Content,
		Target: models.CommentTarget{
			Kind: models.TargetKind(in.TargetKind),
			ID:   in.TargetID,
		},
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

type updateCommentRequest struct {
	Content string `json:"content"`
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var in updateCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	comment, err := h.svc.UpdateComment(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context()), in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteComment(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context())); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// VideoComments — прямые комментарии видео.
func (h *Handlers) VideoComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.CommentsFor(r.Context(), chi.URLParam(r, "id"), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// CommentReplies — ответы на комментарий; тот же сервисный путь, что и
// у VideoComments: цель определяется идентификатором.
func (h *Handlers) CommentReplies(w http.ResponseWriter, r *http.Request) {
	replies, err := h.svc.CommentsFor(r.Context(), chi.URLParam(r, "id"), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, replies)
}
