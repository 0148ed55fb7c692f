package domain

import "context"

type ownerKey struct{}

// WithOwner кладет идентификатор владельца в контекст запроса.
// Сервисы получают владельца явным параметром, контекст нужен только
// на границе HTTP между middleware и обработчиком.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

func OwnerFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(ownerKey{}).(string)
	return ownerID, ok && ownerID != ""
}
