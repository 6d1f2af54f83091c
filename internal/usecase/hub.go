package usecase

import (
	"sync"

	"smartbox-gateway/internal/domain/principal"
)

// CoordinatorFactory builds a coordinator with its own emitter; the audio
// resource is never shared between principals.
type CoordinatorFactory func() UnlockCoordinator

// Hub hands out one coordinator per principal, so the single-active-attempt
// invariant holds per acting user.
type Hub struct {
	mu      sync.Mutex
	coords  map[int64]UnlockCoordinator
	factory CoordinatorFactory
}

func NewHub(factory CoordinatorFactory) *Hub {
	return &Hub{
		coords:  make(map[int64]UnlockCoordinator),
		factory: factory,
	}
}

func (h *Hub) Coordinator(pr principal.Principal) UnlockCoordinator {
	h.mu.Lock()
	defer h.mu.Unlock()

	coord, ok := h.coords[pr.ID]
	if !ok {
		coord = h.factory()
		h.coords[pr.ID] = coord
	}
	return coord
}

// DisposeAll resets every coordinator, force-stopping any emission. Called on
// gateway shutdown.
func (h *Hub) DisposeAll() {
	h.mu.Lock()
	coords := make([]UnlockCoordinator, 0, len(h.coords))
	for _, coord := range h.coords {
		coords = append(coords, coord)
	}
	h.coords = make(map[int64]UnlockCoordinator)
	h.mu.Unlock()

	for _, coord := range coords {
		coord.Reset()
	}
}
