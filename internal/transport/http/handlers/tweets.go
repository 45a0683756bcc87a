package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-video-hosting/internal/service"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

type createTweetRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parent_id,omitempty"`
}

func (h *Handlers) CreateTweet(w http.ResponseWriter, r *http.Request) {
	var in createTweetRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	tweet, err := h.svc.CreateTweet(r.Context(), service.CreateTweetInput{
		OwnerID:  middleware.ActorID(r.Context()),
		Content:  in.Content,
		ParentID: in.ParentID,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tweet)
}

func (h *Handlers) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTweet(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context())); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) UserTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.svc.UserTweets(r.Context(), chi.URLParam(r, "id"), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tweets)
}

func (h *Handlers) TweetReplies(w http.ResponseWriter, r *http.Request) {
	replies, err := h.svc.TweetReplies(r.Context(), chi.URLParam(r, "id"), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, replies)
}
