package care

import (
	"sync"
	"time"

	"plant-care-api/internal/domain/plants"
)

// Completions es el registro transitorio de "marcado como hecho".
//
// Cuando el usuario completa una tarea, el par (planta, acción) se marca aquí
// y se filtra de las derivaciones siguientes hasta que el registro de la
// planta refleje el nuevo last_<action>. La fuente de verdad sigue siendo el
// registro: una vez confirmado, la marca se descarta sola.
type Completions struct {
	mu      sync.Mutex
	pending map[string]time.Time // taskID => momento marcado
}

func NewCompletions() *Completions {
	return &Completions{
		pending: make(map[string]time.Time),
	}
}

// Mark registra una completación local pendiente de confirmación.
func (c *Completions) Mark(plantID string, a plants.CareAction, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[taskID(plantID, a)] = at
}

// suppressed indica si la tarea debe filtrarse de la derivación actual.
// Si el registro ya confirma la completación (last_<action> >= marca),
// la marca se limpia y la tarea vuelve a derivarse normalmente.
func (c *Completions) suppressed(p plants.Plant, a plants.CareAction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := taskID(p.ID, a)
	at, ok := c.pending[id]
	if !ok {
		return false
	}

	if last := p.LastDone(a); last != nil && !last.Before(at) {
		delete(c.pending, id)
		return false
	}
	return true
}
