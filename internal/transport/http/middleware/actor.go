package middleware

import (
	"context"
	"net/http"
	"strings"
)

// Actor извлекает идентификатор аутентифицированного пользователя из
// заголовка X-Actor-Id и кладёт его в контекст по ключу CtxActorID.
//
// Аутентификация — внешний коллаборатор: заголовок проставляет
// вышестоящий шлюз после проверки токена. Пустой или отсутствующий
// заголовок означает анонимный запрос; запрет на мутации без актора
// решает сервисный слой.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get("X-Actor-Id")); id != "" {
				ctx := context.WithValue(r.Context(), CtxActorID, id)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActorID возвращает идентификатор актора из контекста; пустая строка —
// анонимный запрос.
func ActorID(ctx context.Context) string {
	if v, ok := ctx.Value(CtxActorID).(string); ok {
		return v
	}

	return ""
}
