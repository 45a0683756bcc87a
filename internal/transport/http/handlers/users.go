package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-video-hosting/internal/service"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

type registerRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	PasswordHash string `json:"password_hash"`
}

func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: in.PasswordHash,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.UserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type updateAccountRequest struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (h *Handlers) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var in updateAccountRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.UpdateAccount(r.Context(), service.UpdateAccountInput{
		UserID:   middleware.ActorID(r.Context()),
		FullName: in.FullName,
		Email:    in.Email,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

type passwordHashRequest struct {
	PasswordHash string `json:"password_hash"`
}

func (h *Handlers) UpdatePasswordHash(w http.ResponseWriter, r *http.Request) {
	var in passwordHashRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.UpdatePasswordHash(r.Context(), middleware.ActorID(r.Context()), in.PasswordHash); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *Handlers) SetRefreshToken(w http.ResponseWriter, r *http.Request) {
	var in refreshTokenRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.SetRefreshToken(r.Context(), middleware.ActorID(r.Context()), in.RefreshToken); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ClearRefreshToken(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearRefreshToken(r.Context(), middleware.ActorID(r.Context())); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AvatarPresign(w http.ResponseWriter, r *http.Request) {
	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.svc.AvatarUploadURL(r.Context(), middleware.ActorID(r.Context()), in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoFrom(info))
}

func (h *Handlers) AvatarConfirm(w http.ResponseWriter, r *http.Request) {
	var in confirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.ConfirmAvatar(r.Context(), middleware.ActorID(r.Context()), in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) CoverPresign(w http.ResponseWriter, r *http.Request) {
	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.svc.CoverUploadURL(r.Context(), middleware.ActorID(r.Context()), in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoFrom(info))
}

func (h *Handlers) CoverConfirm(w http.ResponseWriter, r *http.Request) {
	var in confirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.ConfirmCover(r.Context(), middleware.ActorID(r.Context()), in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handlers) WatchHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.WatchHistory(r.Context(), middleware.ActorID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

func (h *Handlers) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.ChannelProfile(r.Context(), chi.URLParam(r, "username"), middleware.ActorID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *Handlers) ChannelStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ChannelStats(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
