package audit

import "context"

type actorKey struct{}

func WithActor(ctx context.Context, clientID uint) context.Context {
	return context.WithValue(ctx, actorKey{}, clientID)
}

func ActorFrom(ctx context.Context) *uint {
	if id, ok := ctx.Value(actorKey{}).(uint); ok {
		return &id
	}
	return nil
}

// Record monta o evento com o ator da requisição.
func Record(ctx context.Context, r Recorder, action, entity string, entityID uint, meta any) {
	if r == nil {
		return
	}
	id := entityID
	r.Dispatch(Event{
		ActorID:  ActorFrom(ctx),
		Action:   action,
		Entity:   entity,
		EntityID: &id,
		Metadata: meta,
	})
}
