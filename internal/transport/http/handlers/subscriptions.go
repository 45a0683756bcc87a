package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

func (h *Handlers) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	subscribed, err := h.svc.ToggleSubscription(r.Context(),
		middleware.ActorID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{Active: subscribed})
}

func (h *Handlers) Subscribers(w http.ResponseWriter, r *http.Request) {
	edges, err := h.svc.Subscribers(r.Context(), chi.URLParam(r, "id"), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, edges)
}

func (h *Handlers) SubscribedChannels(w http.ResponseWriter, r *http.Request) {
	edges, err := h.svc.SubscribedChannels(r.Context(), middleware.ActorID(r.Context()), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, edges)
}
