package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"github.com/google/uuid"
)

type memoryEntry struct {
	seq         uint64
	destination models.Destination
}

type memoryState struct {
	seq          uint64
	routes       map[string]models.Route
	destinations map[string]memoryEntry
}

func (s *memoryState) clone() *memoryState {
	c := &memoryState{
		seq:          s.seq,
		routes:       make(map[string]models.Route, len(s.routes)),
		destinations: make(map[string]memoryEntry, len(s.destinations)),
	}
	for k, v := range s.routes {
		c.routes[k] = v
	}
	for k, v := range s.destinations {
		c.destinations[k] = v
	}
	return c
}

// MemoryStore keeps everything in process. Transactions are serialized by a
// single mutex and work on a copy of the state that replaces it on success.
type MemoryStore struct {
	mutex sync.Mutex
	state *memoryState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: &memoryState{
			routes:       map[string]models.Route{},
			destinations: map[string]memoryEntry{},
		},
	}
}

func (s *MemoryStore) Transact(ctx context.Context, fn TxFunc) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{state: s.state.clone()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = tx.state
	return nil
}

func (s *MemoryStore) Routes(ctx context.Context) ([]models.Route, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx := &memoryTx{state: s.state}
	routes := make([]models.Route, 0, len(s.state.routes))
	for _, route := range s.state.routes {
		destinations, err := tx.Destinations(route.Guid)
		if err != nil {
			return nil, err
		}
		route.Destinations = destinations
		routes = append(routes, route)
	}
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Guid < routes[j].Guid
	})
	return routes, nil
}

type memoryTx struct {
	state *memoryState
}

func (t *memoryTx) SaveRoute(route models.Route) error {
	if route.Guid == "" {
		return fmt.Errorf("save route: missing guid")
	}
	route.Destinations = nil
	t.state.routes[route.Guid] = route
	return nil
}

func (t *memoryTx) Destinations(routeGuid string) ([]models.Destination, error) {
	return t.collect(func(d models.Destination) bool { return d.RouteGuid == routeGuid }), nil
}

func (t *memoryTx) DestinationsForProcess(process models.ProcessKey) ([]models.Destination, error) {
	return t.collect(func(d models.Destination) bool { return d.ProcessKey() == process }), nil
}

func (t *memoryTx) collect(match func(models.Destination) bool) []models.Destination {
	entries := []memoryEntry{}
	for _, e := range t.state.destinations {
		if match(e.destination) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	destinations := make([]models.Destination, len(entries))
	for i, e := range entries {
		destinations[i] = e.destination
		destinations[i].Weight = copyWeight(e.destination.Weight)
	}
	return destinations
}

func (t *memoryTx) Create(destination models.Destination) (models.Destination, error) {
	if destination.RouteGuid == "" {
		return models.Destination{}, fmt.Errorf("create destination: missing route guid")
	}
	for _, e := range t.state.destinations {
		if e.destination.RouteGuid == destination.RouteGuid && e.destination.Key() == destination.Key() {
			return models.Destination{}, ErrDuplicateDestination
		}
	}
	if destination.Guid == "" {
		destination.Guid = uuid.NewString()
	}
	destination.Weight = copyWeight(destination.Weight)

	t.state.seq++
	t.state.destinations[destination.Guid] = memoryEntry{seq: t.state.seq, destination: destination}
	return destination, nil
}

func (t *memoryTx) Remove(destination models.Destination) error {
	if _, ok := t.state.destinations[destination.Guid]; !ok {
		return fmt.Errorf("remove destination %s: %w", destination.Guid, models.ErrNotFound)
	}
	delete(t.state.destinations, destination.Guid)
	return nil
}

func (t *memoryTx) UpdateWeight(destinationGuid string, weight *int) error {
	e, ok := t.state.destinations[destinationGuid]
	if !ok {
		return fmt.Errorf("update destination %s: %w", destinationGuid, models.ErrNotFound)
	}
	e.destination.Weight = copyWeight(weight)
	t.state.destinations[destinationGuid] = e
	return nil
}
