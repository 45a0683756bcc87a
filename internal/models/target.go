package models

import "strings"

// Полиморфные ссылки комментариев и лайков на границе валидации
// представлены размеченным объединением (kind + id), даже если документ
// в коллекции хранит несколько nullable-полей: валидатор рассуждает
// именно о форме объединения.

// TargetKind — дискриминант цели.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// CommentTarget — цель комментария: видео или родительский комментарий.
type CommentTarget struct {
	Kind TargetKind
	ID   string
}

// Valid сообщает, задана ли цель корректно: известный kind и непустой id.
func (t CommentTarget) Valid() bool {
	if strings.TrimSpace(t.ID) == "" {
		return false
	}

	return t.Kind == TargetVideo || t.Kind == TargetComment
}

// LikeTarget — цель лайка: видео, комментарий или твит.
type LikeTarget struct {
	Kind TargetKind
	ID   string
}

// Valid сообщает, задана ли цель корректно: известный kind и непустой id.
func (t LikeTarget) Valid() bool {
	if strings.TrimSpace(t.ID) == "" {
		return false
	}

	return t.Kind == TargetVideo || t.Kind == TargetComment || t.Kind == TargetTweet
}
