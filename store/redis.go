package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultKeyPrefix  = "routedestinations:"
	DefaultMaxRetries = 10
)

type RedisOption func(*RedisStore)

// WithKeyPrefix namespaces every key the store touches.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.keys.prefix = prefix
	}
}

// WithMaxRetries bounds how often a transaction is re-run after a conflicting write.
func WithMaxRetries(n int) RedisOption {
	return func(s *RedisStore) {
		s.maxRetries = n
	}
}

// RedisStore runs each transaction optimistically: every key it reads is
// WATCHed and its writes are flushed in a single MULTI/EXEC. A concurrent
// write to any watched key aborts EXEC and the transaction is re-run.
type RedisStore struct {
	client     *backend.Client
	keys       keySpace
	maxRetries int
}

func NewRedisStore(address, password string, db int, opts ...RedisOption) *RedisStore {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreFromClient(client, opts...)
}

func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client:     client,
		keys:       keySpace{prefix: DefaultKeyPrefix},
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Transact(ctx context.Context, fn TxFunc) error {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		err := s.client.Watch(ctx, func(rtx *backend.Tx) error {
			tx := newRedisTx(ctx, rtx, s.keys)
			if err := fn(ctx, tx); err != nil {
				return err
			}
			if tx.empty() {
				return nil
			}
			_, err := rtx.TxPipelined(ctx, tx.flush)
			return err
		})
		if errors.Is(err, backend.TxFailedErr) {
			log.WithFields(log.Fields{"attempt": attempt}).Debug("redis transaction conflicted, retrying")
			continue
		}
		return err
	}
	return ErrTxConflict
}

func (s *RedisStore) Routes(ctx context.Context) ([]models.Route, error) {
	guids, err := s.client.SMembers(ctx, s.keys.routes()).Result()
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	sort.Strings(guids)

	routes := make([]models.Route, 0, len(guids))
	for _, guid := range guids {
		raw, err := s.client.Get(ctx, s.keys.route(guid)).Result()
		if err == backend.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get route %s: %w", guid, err)
		}
		var stored storedRoute
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			return nil, fmt.Errorf("unmarshal route %s: %w", guid, err)
		}

		destinationGuids, err := s.client.SMembers(ctx, s.keys.routeDestinations(guid)).Result()
		if err != nil {
			return nil, fmt.Errorf("list destinations for %s: %w", guid, err)
		}
		destinations, err := loadDestinations(ctx, s.client, s.keys, destinationGuids)
		if err != nil {
			return nil, err
		}

		route := stored.toModel()
		route.Destinations = destinations
		routes = append(routes, route)
	}
	return routes, nil
}

type keySpace struct {
	prefix string
}

func (k keySpace) routes() string {
	return k.prefix + "routes"
}

func (k keySpace) route(guid string) string {
	return k.prefix + "route:" + guid
}

func (k keySpace) routeDestinations(guid string) string {
	return k.prefix + "route:" + guid + ":destinations"
}

func (k keySpace) destination(guid string) string {
	return k.prefix + "destination:" + guid
}

func (k keySpace) processDestinations(p models.ProcessKey) string {
	return k.prefix + "process:" + p.AppGuid + ":" + p.ProcessType + ":destinations"
}

type storedRoute struct {
	Guid           string `json:"guid"`
	Host           string `json:"host"`
	Path           string `json:"path"`
	Url            string `json:"url"`
	DomainGuid     string `json:"domain_guid"`
	DomainName     string `json:"domain_name"`
	DomainInternal bool   `json:"domain_internal"`
}

func (r storedRoute) toModel() models.Route {
	return models.Route{
		Guid: r.Guid,
		Host: r.Host,
		Path: r.Path,
		Url:  r.Url,
		Domain: models.Domain{
			Guid:     r.DomainGuid,
			Name:     r.DomainName,
			Internal: r.DomainInternal,
		},
	}
}

type storedDestination struct {
	Guid        string `json:"guid"`
	RouteGuid   string `json:"route_guid"`
	AppGuid     string `json:"app_guid"`
	ProcessType string `json:"process_type"`
	Port        int    `json:"port"`
	Weight      *int   `json:"weight,omitempty"`
}

func (d storedDestination) toModel() models.Destination {
	return models.Destination{
		Guid:      d.Guid,
		RouteGuid: d.RouteGuid,
		App:       models.App{Guid: d.AppGuid, Process: models.Process{Type: d.ProcessType}},
		Port:      d.Port,
		Weight:    d.Weight,
	}
}

func toStoredDestination(d models.Destination) storedDestination {
	return storedDestination{
		Guid:        d.Guid,
		RouteGuid:   d.RouteGuid,
		AppGuid:     d.App.Guid,
		ProcessType: d.App.Process.Type,
		Port:        d.Port,
		Weight:      d.Weight,
	}
}

func loadDestinations(ctx context.Context, c backend.Cmdable, keys keySpace, guids []string) ([]models.Destination, error) {
	if len(guids) == 0 {
		return []models.Destination{}, nil
	}
	sort.Strings(guids)

	destinationKeys := make([]string, len(guids))
	for i, guid := range guids {
		destinationKeys[i] = keys.destination(guid)
	}
	values, err := c.MGet(ctx, destinationKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load destinations: %w", err)
	}

	destinations := make([]models.Destination, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// the index points at a destination that is gone
			continue
		}
		var stored storedDestination
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			return nil, fmt.Errorf("unmarshal destination %s: %w", guids[i], err)
		}
		destinations = append(destinations, stored.toModel())
	}
	return destinations, nil
}

type redisTx struct {
	ctx     context.Context
	tx      *backend.Tx
	keys    keySpace
	watched map[string]bool

	routes       map[string]models.Route
	created      map[string]models.Destination
	createdOrder []string
	removed      map[string]models.Destination
	reweighted   map[string]models.Destination
}

func newRedisTx(ctx context.Context, tx *backend.Tx, keys keySpace) *redisTx {
	return &redisTx{
		ctx:        ctx,
		tx:         tx,
		keys:       keys,
		watched:    map[string]bool{},
		routes:     map[string]models.Route{},
		created:    map[string]models.Destination{},
		removed:    map[string]models.Destination{},
		reweighted: map[string]models.Destination{},
	}
}

func (t *redisTx) empty() bool {
	return len(t.routes) == 0 && len(t.created) == 0 && len(t.removed) == 0 && len(t.reweighted) == 0
}

func (t *redisTx) watch(keys ...string) error {
	unwatched := []string{}
	for _, k := range keys {
		if !t.watched[k] {
			unwatched = append(unwatched, k)
		}
	}
	if len(unwatched) == 0 {
		return nil
	}
	if err := t.tx.Watch(t.ctx, unwatched...).Err(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	for _, k := range unwatched {
		t.watched[k] = true
	}
	return nil
}

// committed reads destinations indexed under setKey as they were before this tx
func (t *redisTx) committed(setKey string) ([]models.Destination, error) {
	if err := t.watch(setKey); err != nil {
		return nil, err
	}
	guids, err := t.tx.SMembers(t.ctx, setKey).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", setKey, err)
	}
	destinationKeys := make([]string, len(guids))
	for i, guid := range guids {
		destinationKeys[i] = t.keys.destination(guid)
	}
	if err := t.watch(destinationKeys...); err != nil {
		return nil, err
	}
	return loadDestinations(t.ctx, t.tx, t.keys, guids)
}

func (t *redisTx) overlay(committed []models.Destination, match func(models.Destination) bool) []models.Destination {
	result := []models.Destination{}
	for _, d := range committed {
		if _, gone := t.removed[d.Guid]; gone {
			continue
		}
		if updated, ok := t.reweighted[d.Guid]; ok {
			d = updated
		}
		d.Weight = copyWeight(d.Weight)
		result = append(result, d)
	}
	for _, guid := range t.createdOrder {
		d, ok := t.created[guid]
		if !ok || !match(d) {
			continue
		}
		d.Weight = copyWeight(d.Weight)
		result = append(result, d)
	}
	return result
}

func (t *redisTx) SaveRoute(route models.Route) error {
	if route.Guid == "" {
		return fmt.Errorf("save route: missing guid")
	}
	route.Destinations = nil
	t.routes[route.Guid] = route
	return nil
}

func (t *redisTx) Destinations(routeGuid string) ([]models.Destination, error) {
	committed, err := t.committed(t.keys.routeDestinations(routeGuid))
	if err != nil {
		return nil, err
	}
	return t.overlay(committed, func(d models.Destination) bool { return d.RouteGuid == routeGuid }), nil
}

func (t *redisTx) DestinationsForProcess(process models.ProcessKey) ([]models.Destination, error) {
	committed, err := t.committed(t.keys.processDestinations(process))
	if err != nil {
		return nil, err
	}
	return t.overlay(committed, func(d models.Destination) bool { return d.ProcessKey() == process }), nil
}

func (t *redisTx) Create(destination models.Destination) (models.Destination, error) {
	if destination.RouteGuid == "" {
		return models.Destination{}, fmt.Errorf("create destination: missing route guid")
	}
	existing, err := t.Destinations(destination.RouteGuid)
	if err != nil {
		return models.Destination{}, err
	}
	for _, d := range existing {
		if d.Key() == destination.Key() {
			return models.Destination{}, ErrDuplicateDestination
		}
	}
	// the process index is written on flush, so it has to be watched as well
	if err := t.watch(t.keys.processDestinations(destination.ProcessKey())); err != nil {
		return models.Destination{}, err
	}

	if destination.Guid == "" {
		destination.Guid = uuid.NewString()
	}
	destination.Weight = copyWeight(destination.Weight)
	t.created[destination.Guid] = destination
	t.createdOrder = append(t.createdOrder, destination.Guid)
	return destination, nil
}

func (t *redisTx) lookup(guid string) (models.Destination, error) {
	key := t.keys.destination(guid)
	if err := t.watch(key); err != nil {
		return models.Destination{}, err
	}
	destinations, err := loadDestinations(t.ctx, t.tx, t.keys, []string{guid})
	if err != nil {
		return models.Destination{}, err
	}
	if len(destinations) == 0 {
		return models.Destination{}, fmt.Errorf("destination %s: %w", guid, models.ErrNotFound)
	}
	return destinations[0], nil
}

func (t *redisTx) Remove(destination models.Destination) error {
	if _, ok := t.created[destination.Guid]; ok {
		delete(t.created, destination.Guid)
		return nil
	}
	if _, ok := t.removed[destination.Guid]; ok {
		return fmt.Errorf("remove destination %s: %w", destination.Guid, models.ErrNotFound)
	}
	stored, err := t.lookup(destination.Guid)
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	if err := t.watch(t.keys.routeDestinations(stored.RouteGuid), t.keys.processDestinations(stored.ProcessKey())); err != nil {
		return err
	}
	delete(t.reweighted, stored.Guid)
	t.removed[stored.Guid] = stored
	return nil
}

func (t *redisTx) UpdateWeight(destinationGuid string, weight *int) error {
	if d, ok := t.created[destinationGuid]; ok {
		d.Weight = copyWeight(weight)
		t.created[destinationGuid] = d
		return nil
	}
	if _, ok := t.removed[destinationGuid]; ok {
		return fmt.Errorf("update destination %s: %w", destinationGuid, models.ErrNotFound)
	}
	stored, ok := t.reweighted[destinationGuid]
	if !ok {
		var err error
		stored, err = t.lookup(destinationGuid)
		if err != nil {
			return fmt.Errorf("update: %w", err)
		}
	}
	stored.Weight = copyWeight(weight)
	t.reweighted[destinationGuid] = stored
	return nil
}

func (t *redisTx) flush(pipe backend.Pipeliner) error {
	for guid, route := range t.routes {
		raw, err := json.Marshal(storedRoute{
			Guid:           route.Guid,
			Host:           route.Host,
			Path:           route.Path,
			Url:            route.Url,
			DomainGuid:     route.Domain.Guid,
			DomainName:     route.Domain.Name,
			DomainInternal: route.Domain.Internal,
		})
		if err != nil {
			return fmt.Errorf("marshal route %s: %w", guid, err)
		}
		pipe.Set(t.ctx, t.keys.route(guid), raw, 0)
		pipe.SAdd(t.ctx, t.keys.routes(), guid)
	}

	for _, guid := range t.createdOrder {
		d, ok := t.created[guid]
		if !ok {
			continue
		}
		if err := t.writeDestination(pipe, d); err != nil {
			return err
		}
		pipe.SAdd(t.ctx, t.keys.routeDestinations(d.RouteGuid), d.Guid)
		pipe.SAdd(t.ctx, t.keys.processDestinations(d.ProcessKey()), d.Guid)
	}

	for _, d := range t.reweighted {
		if err := t.writeDestination(pipe, d); err != nil {
			return err
		}
	}

	for _, d := range t.removed {
		pipe.Del(t.ctx, t.keys.destination(d.Guid))
		pipe.SRem(t.ctx, t.keys.routeDestinations(d.RouteGuid), d.Guid)
		pipe.SRem(t.ctx, t.keys.processDestinations(d.ProcessKey()), d.Guid)
	}
	return nil
}

func (t *redisTx) writeDestination(pipe backend.Pipeliner, d models.Destination) error {
	raw, err := json.Marshal(toStoredDestination(d))
	if err != nil {
		return fmt.Errorf("marshal destination %s: %w", d.Guid, err)
	}
	pipe.Set(t.ctx, t.keys.destination(d.Guid), raw, 0)
	return nil
}
