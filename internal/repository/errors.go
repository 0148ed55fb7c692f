package repository

import "errors"

// ErrNotFound возвращается, когда запись с указанным идентификатором не принадлежит
// владельцу или не существует. Сервисы переводят ее в domain.NewNotFoundError.
var ErrNotFound = errors.New("record not found")
