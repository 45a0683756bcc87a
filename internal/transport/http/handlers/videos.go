package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/service"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/apierrors"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

func (h *Handlers) VideoPresign(w http.ResponseWriter, r *http.Request) {
	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.svc.VideoUploadURL(r.Context(), middleware.ActorID(r.Context()), in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoFrom(info))
}

func (h *Handlers) ThumbnailPresign(w http.ResponseWriter, r *http.Request) {
	var in presignRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.svc.ThumbnailUploadURL(r.Context(), middleware.ActorID(r.Context()), in.ContentType, in.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoFrom(info))
}

type publishVideoRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	Duration     float64 `json:"duration"`
	VideoKey     string  `json:"video_key"`
	ThumbnailKey string  `json:"thumbnail_key"`
}

func (h *Handlers) PublishVideo(w http.ResponseWriter, r *http.Request) {
	var in publishVideoRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	video, err := h.svc.PublishVideo(r.Context(), service.PublishVideoInput{
		OwnerID:      middleware.ActorID(r.Context()),
		Title:        in.Title,
		Description:  in.Description,
		Duration:     in.Duration,
		VideoKey:     in.VideoKey,
		ThumbnailKey: in.ThumbnailKey,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, video)
}

func (h *Handlers) GetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.svc.VideoByID(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, video)
}

// SearchVideos — листинг/поиск опубликованных видео:
// ?q=&sort_by=&asc=&page=&limit=.
func (h *Handlers) SearchVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := models.VideoListParams{
		ListParams: listParams(r),
		Query:      q.Get("q"),
		SortBy:     models.VideoSortField(q.Get("sort_by")),
		Ascending:  q.Get("asc") == "true",
	}

	videos, err := h.svc.SearchVideos(r.Context(), params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

type updateVideoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (h *Handlers) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var in updateVideoRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	video, err := h.svc.UpdateVideoDetails(r.Context(), service.UpdateVideoDetailsInput{
		VideoID:     chi.URLParam(r, "id"),
		ActorID:     middleware.ActorID(r.Context()),
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, video)
}

func (h *Handlers) ThumbnailConfirm(w http.ResponseWriter, r *http.Request) {
	var in confirmRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	video, err := h.svc.ConfirmThumbnail(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context()), in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, video)
}

func (h *Handlers) TogglePublish(w http.ResponseWriter, r *http.Request) {
	published, err := h.svc.TogglePublish(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{Active: published})
}

func (h *Handlers) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVideo(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context())); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChannelVideos — видео канала: ?sort_by=&asc=&page=&limit=.
func (h *Handlers) ChannelVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := models.VideoListParams{
		ListParams: listParams(r),
		SortBy:     models.VideoSortField(q.Get("sort_by")),
		Ascending:  q.Get("asc") == "true",
	}

	videos, err := h.svc.ChannelVideos(r.Context(), chi.URLParam(r, "id"), middleware.ActorID(r.Context()), params)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}
