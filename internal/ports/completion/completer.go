package completion

import (
	"context"
	"errors"
)

// ErrEmpty: el backend respondió 2xx pero sin texto usable.
var ErrEmpty = errors.New("completion: empty response")

// Completer es un servicio externo de completado de texto (chat de un turno).
// El timeout lo pone el caller con el ctx.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
