// Package models содержит доменные сущности video-hosting.
//
// Все идентификаторы — ObjectID MongoDB (монотонны по времени создания).
// На границе сервиса/транспорта они конвертируются в hex-строки.
// CreatedAt/UpdatedAt проставляются слоем storage при записи.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User — учётная запись пользователя (коллекция users).
// Важно:
//   - Username/Email хранятся в нижнем регистре; уникальность обеспечивают
//     уникальные индексы коллекции.
//   - PasswordHash — непрозрачный хеш, выданный внешним auth-провайдером;
//     сервис его не вычисляет и не проверяет.
//   - RefreshToken — единственный активный refresh-токен (пустая строка = нет).
//   - WatchHistory — упорядоченная история просмотров; повторный просмотр
//     не дублирует и не переставляет запись ($addToSet).
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string               `bson:"username" json:"username"`
	Email        string               `bson:"email" json:"email"`
	FullName     string               `bson:"full_name" json:"full_name"`
	PasswordHash string               `bson:"password_hash" json:"-"`
	Avatar       string               `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CoverImage   string               `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	RefreshToken string               `bson:"refresh_token,omitempty" json:"-"`
	WatchHistory []primitive.ObjectID `bson:"watch_history,omitempty" json:"-"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updated_at"`
}
