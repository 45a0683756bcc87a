// Package http собирает REST-поверхность сервиса: chi-роутер,
// цепочку middleware и регистрацию маршрутов.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-video-hosting/internal/service"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/handlers"
	"github.com/pribylovaa/go-video-hosting/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Actor(),              // вынимаем X-Actor-Id в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// users / account
	r.Post("/users", h.RegisterUser)
	r.Get("/users/{id}", h.GetUser)
	r.Patch("/account", h.UpdateAccount)
	r.Put("/account/password", h.UpdatePasswordHash)
	r.Put("/account/refresh-token", h.SetRefreshToken)
	r.Delete("/account/refresh-token", h.ClearRefreshToken)
	r.Post("/account/avatar/presign", h.AvatarPresign)
	r.Post("/account/avatar/confirm", h.AvatarConfirm)
	r.Post("/account/cover/presign", h.CoverPresign)
	r.Post("/account/cover/confirm", h.CoverConfirm)
	r.Get("/account/history", h.WatchHistory)

	// channels
	r.Get("/channels/{username}", h.ChannelProfile)
	r.Get("/users/{id}/stats", h.ChannelStats)
	r.Get("/users/{id}/videos", h.ChannelVideos)
	r.Get("/users/{id}/tweets", h.UserTweets)
	r.Get("/users/{id}/playlists", h.UserPlaylists)
	r.Get("/users/{id}/subscribers", h.Subscribers)

	// videos
	r.Post("/videos/presign", h.VideoPresign)
	r.Post("/videos/thumbnail/presign", h.ThumbnailPresign)
	r.Post("/videos", h.PublishVideo)
	r.Get("/videos", h.SearchVideos)
	r.Get("/videos/{id}", h.GetVideo)
	r.Patch("/videos/{id}", h.UpdateVideo)
	r.Post("/videos/{id}/thumbnail/confirm", h.ThumbnailConfirm)
	r.Post("/videos/{id}/toggle-publish", h.TogglePublish)
	r.Delete("/videos/{id}", h.DeleteVideo)
	r.Get("/videos/{id}/comments", h.VideoComments)

	// tweets
	r.Post("/tweets", h.CreateTweet)
	r.Delete("/tweets/{id}", h.DeleteTweet)
	r.Get("/tweets/{id}/replies", h.TweetReplies)

	// comments
	r.Post("/comments", h.CreateComment)
	r.Patch("/comments/{id}", h.UpdateComment)
	r.Delete("/comments/{id}", h.DeleteComment)
	r.Get("/comments/{id}/replies", h.CommentReplies)

	// likes
	r.Post("/likes/toggle", h.ToggleLike)
	r.Get("/likes/videos", h.LikedVideos)
	r.Get("/likes/comments", h.LikedComments)
	r.Get("/likes/tweets", h.LikedTweets)

	// playlists
	r.Post("/playlists", h.CreatePlaylist)
	r.Get("/playlists/{id}", h.GetPlaylist)
	r.Patch("/playlists/{id}", h.UpdatePlaylist)
	r.Delete("/playlists/{id}", h.DeletePlaylist)
	r.Post("/playlists/{id}/videos/{video_id}", h.AddVideoToPlaylist)
	r.Delete("/playlists/{id}/videos/{video_id}", h.RemoveVideoFromPlaylist)

	// subscriptions
	r.Post("/channels/{id}/subscription/toggle", h.ToggleSubscription)
	r.Get("/subscriptions", h.SubscribedChannels)
}
