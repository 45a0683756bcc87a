package service

import "strings"

// Owns — предикат владения: актор владеет ресурсом тогда и только тогда,
// когда оба идентификатора непусты (после trim) и равны. Две пустые строки
// владение НЕ образуют. Чистая функция без обращений к хранилищу: запись,
// чьим владельцем предъявлен актор, уже загружена вызывающим кодом.
func Owns(ownerID, actorID string) bool {
	owner := strings.TrimSpace(ownerID)
	actor := strings.TrimSpace(actorID)

	if owner == "" || actor == "" {
		return false
	}

	return owner == actor
}
