package service

import (
	"errors"
	"time"

	"github.com/bagdasarian/bizdesk/internal/domain"
	"github.com/bagdasarian/bizdesk/internal/repository"
	"github.com/google/uuid"
)

// now обрезается до микросекунд: точнее Postgres не хранит, и созданная
// запись должна совпадать с прочитанной
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func newID() string {
	return uuid.NewString()
}

// notFoundAs переводит repository.ErrNotFound в доменную ошибку для сущности
func notFoundAs(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(entity)
	}
	return err
}
