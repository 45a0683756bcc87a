package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-video-hosting/internal/service"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

type createPlaylistRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var in createPlaylistRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	playlist, err := h.svc.CreatePlaylist(r.Context(), service.CreatePlaylistInput{
		OwnerID:     middleware.ActorID(r.Context()),
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.PlaylistByID(r.Context(), chi.URLParam(r, "id"), listParams(r))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

type updatePlaylistRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (h *Handlers) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	var in updatePlaylistRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	playlist, err := h.svc.UpdatePlaylistDetails(r.Context(), service.UpdatePlaylistInput{
		PlaylistID:  chi.URLParam(r, "id"),
		ActorID:     middleware.ActorID(r.Context()),
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeletePlaylist(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context())); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AddVideoToPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.svc.AddVideoToPlaylist(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "video_id"), middleware.ActorID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

func (h *Handlers) RemoveVideoFromPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := h.svc.RemoveVideoFromPlaylist(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "video_id"), middleware.ActorID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

func (h *Handlers) UserPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.svc.UserPlaylists(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}
