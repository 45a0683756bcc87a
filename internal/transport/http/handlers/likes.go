package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

type toggleLikeRequest struct {
	TargetKind string `json:"target_kind"`
	TargetID   string `json:"target_id"`
}

func (h *Handlers) ToggleLike(w http.ResponseWriter, r *http.Request) {
	var in toggleLikeRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	liked, err := h.svc.ToggleLike(r.Context(), middleware.ActorID(r.Context()), models.LikeTarget{
		Kind: models.TargetKind(in.TargetKind),
		ID:   in.TargetID,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{Active: liked})
}

func (h *Handlers) LikedVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.svc.LikedVideos(r.Context(), middleware.ActorID(r.Context()), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

func (h *Handlers) LikedComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.LikedComments(r.Context(), middleware.ActorID(r.Context()), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *Handlers) LikedTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.svc.LikedTweets(r.Context(), middleware.ActorID(r.Context()), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tweets)
}
