// handlers — REST-обработчики поверх сервисного слоя.
//
// Конвенции:
//   - актор берётся из контекста (middleware.Actor), не из тела запроса;
//   - тела запросов декодируются строго (неизвестные поля — ошибка);
//   - ошибки сервисного слоя уходят через apierrors.WriteError.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pribylovaa/go-video-hosting/internal/models"
	"github.com/pribylovaa/go-video-hosting/internal/service"
	"github.com/pribylovaa/go-video-hosting/internal/storage"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга -> 400 сервисным сентинелом.
func errInvalidArgument() error {
	return fmt.Errorf("transport: %w", service.ErrInvalidArgument)
}

// listParams читает ?page=&limit= (ошибки парсинга трактуются как отсутствие
// значения: клампинг и дефолты — ответственность нижних слоёв).
func listParams(r *http.Request) models.ListParams {
	var p models.ListParams

	q := r.URL.Query()
	if v, err := strconv.ParseInt(q.Get("page"), 10, 32); err == nil {
		p.Page = int32(v)
	}
	if v, err := strconv.ParseInt(q.Get("limit"), 10, 32); err == nil {
		p.Limit = int32(v)
	}

	return p
}

// uploadInfoResponse — wire-формат ответа presign-ручек.
type uploadInfoResponse struct {
	UploadURL      string            `json:"upload_url"`
	Key            string            `json:"key"`
	ExpiresSeconds int64             `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

func uploadInfoFrom(info *storage.UploadInfo) uploadInfoResponse {
	return uploadInfoResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: int64(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	}
}

// presignRequest — общее тело presign-ручек медиа.
type presignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

// confirmRequest — общее тело confirm-ручек медиа.
type confirmRequest struct {
	Key string `json:"key"`
}

// toggleResponse — ответ toggle-ручек (лайк/подписка/публикация).
type toggleResponse struct {
	Active bool `json:"active"`
}
