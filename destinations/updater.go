// Package destinations keeps the destinations of a route in line with what
// operators ask for. Every operation validates up front, mutates the store and
// recomputes process ports in one transaction, and only then notifies the
// audit trail and the mesh.
package destinations

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/metrics"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/notifier"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/processports"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/store"
)

//go:generate counterfeiter -o fakes/port_syncer.go --fake-name PortSyncer . PortSyncer
type PortSyncer interface {
	// UpdateRouteInformation converges the open ports of a process. A nil
	// ports slice means the process should use its own default.
	UpdateRouteInformation(ctx context.Context, process models.ProcessKey, ports []int, validate bool) error
}

//go:generate counterfeiter -o fakes/app_resolver.go --fake-name AppResolver . AppResolver
type AppResolver interface {
	App(ctx context.Context, appGuid string) (models.AppRecord, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, changes notifier.Changes) error
}

type DestinationRequest struct {
	AppGuid     string
	ProcessType string
	// Port is optional; nil means the app's default port
	Port   *int
	Weight *int
}

type Updater struct {
	Store      store.Store
	PortSyncer PortSyncer
	Dispatcher dispatcher
}

// Add creates every requested destination the route does not have yet.
// Requests matching an existing destination are skipped.
func (u *Updater) Add(ctx context.Context, requests []DestinationRequest, route models.Route, resolver AppResolver, actor models.UserAuditInfo, manifestTriggered bool) ([]models.Destination, error) {
	logger := log.WithFields(log.Fields{"route_guid": route.Guid, "operation": "add"})

	requested, missing, err := u.resolve(ctx, requests, route, resolver)
	if err != nil {
		return nil, u.fail(logger, err)
	}

	var (
		created []models.Destination
		synced  []models.ProcessKey
	)
	pushed := newProcessSet()
	err = u.Store.Transact(ctx, func(ctx context.Context, tx store.Tx) error {
		created, synced = nil, nil

		existing, err := tx.Destinations(route.Guid)
		if err != nil {
			return err
		}
		if err := validateInsert(existing, requested); err != nil {
			return err
		}

		present := keySet(existing)
		for _, d := range requested {
			if present[d.Key()] {
				continue
			}
			c, err := tx.Create(d)
			if err != nil {
				return err
			}
			present[d.Key()] = true
			created = append(created, c)
		}

		if len(created) == 0 {
			return nil
		}
		if err := tx.SaveRoute(route); err != nil {
			return err
		}
		synced, err = u.syncPorts(ctx, tx, created, missing, pushed)
		return err
	})
	u.restorePorts(ctx, logger, pushed.toRestore(synced, err))
	if err != nil {
		return nil, u.fail(logger, wrapUnlessValidation(err, "add destinations to route %s", route.Guid))
	}

	logger.WithFields(log.Fields{"created": len(created), "processes_synced": len(synced)}).Info("added destinations")
	metrics.RecordChanges(len(created), 0, len(synced))
	u.notify(ctx, logger, notifier.Changes{
		Route:             route,
		Actor:             actor,
		ManifestTriggered: manifestTriggered,
		Mapped:            created,
	})
	return created, nil
}

// Replace makes the route's destinations exactly the requested set.
// Destinations present before and after are left in place. When such a
// destination's weight changes it is stored in place and reported as an
// unmap of the old weight followed by a map of the new one.
func (u *Updater) Replace(ctx context.Context, requests []DestinationRequest, route models.Route, resolver AppResolver, actor models.UserAuditInfo, manifestTriggered bool) ([]models.Destination, []models.Destination, error) {
	logger := log.WithFields(log.Fields{"route_guid": route.Guid, "operation": "replace"})

	requested, missing, err := u.resolve(ctx, requests, route, resolver)
	if err != nil {
		return nil, nil, u.fail(logger, err)
	}
	desired := dedupe(requested)

	var (
		created, removed       []models.Destination
		reweighted, oldWeights []models.Destination
		synced                 []models.ProcessKey
	)
	pushed := newProcessSet()
	err = u.Store.Transact(ctx, func(ctx context.Context, tx store.Tx) error {
		created, removed, synced = nil, nil, nil
		reweighted, oldWeights = nil, nil

		existing, err := tx.Destinations(route.Guid)
		if err != nil {
			return err
		}

		wanted := make(map[models.DestinationKey]models.Destination, len(desired))
		for _, d := range desired {
			wanted[d.Key()] = d
		}

		for _, e := range existing {
			d, keep := wanted[e.Key()]
			if !keep {
				if err := tx.Remove(e); err != nil {
					return err
				}
				removed = append(removed, e)
				continue
			}
			if !sameWeight(e.Weight, d.Weight) {
				if err := tx.UpdateWeight(e.Guid, d.Weight); err != nil {
					return err
				}
				updated := e
				updated.Weight = copyWeight(d.Weight)
				oldWeights = append(oldWeights, e)
				reweighted = append(reweighted, updated)
			}
		}

		present := keySet(existing)
		for _, d := range desired {
			if present[d.Key()] {
				continue
			}
			c, err := tx.Create(d)
			if err != nil {
				return err
			}
			created = append(created, c)
		}

		if len(created) == 0 && len(removed) == 0 && len(reweighted) == 0 {
			return nil
		}
		if err := tx.SaveRoute(route); err != nil {
			return err
		}
		synced, err = u.syncPorts(ctx, tx, append(append([]models.Destination{}, created...), removed...), missing, pushed)
		return err
	})
	u.restorePorts(ctx, logger, pushed.toRestore(synced, err))
	if err != nil {
		return nil, nil, u.fail(logger, wrapUnlessValidation(err, "replace destinations of route %s", route.Guid))
	}

	logger.WithFields(log.Fields{
		"created":          len(created),
		"removed":          len(removed),
		"reweighted":       len(reweighted),
		"processes_synced": len(synced),
	}).Info("replaced destinations")
	metrics.RecordChanges(len(created), len(removed), len(synced))
	u.notify(ctx, logger, notifier.Changes{
		Route:             route,
		Actor:             actor,
		ManifestTriggered: manifestTriggered,
		Mapped:            append(append([]models.Destination{}, created...), reweighted...),
		Unmapped:          append(append([]models.Destination{}, removed...), oldWeights...),
	})
	return created, removed, nil
}

// Delete removes a single unweighted destination from the route. Weighted
// destinations can only be removed together through Replace.
func (u *Updater) Delete(ctx context.Context, destination models.Destination, route models.Route, actor models.UserAuditInfo) error {
	logger := log.WithFields(log.Fields{"route_guid": route.Guid, "destination_guid": destination.Guid, "operation": "delete"})

	if destination.Weighted() {
		return u.fail(logger, validationError(WeightedDeleteRejected, msgWeightedDelete))
	}

	var (
		removed models.Destination
		synced  []models.ProcessKey
	)
	pushed := newProcessSet()
	err := u.Store.Transact(ctx, func(ctx context.Context, tx store.Tx) error {
		synced = nil
		existing, err := tx.Destinations(route.Guid)
		if err != nil {
			return err
		}

		stored, ok := find(existing, destination)
		if !ok {
			if destination.Guid != "" {
				return notFoundError(models.ErrNotFound, msgDestinationNotFound, destination.Guid, route.Guid)
			}
			return notFoundError(models.ErrNotFound, msgDestinationKeyAbsent, destination.App.Guid, destination.App.Process.Type, destination.Port, route.Guid)
		}
		if stored.Weighted() {
			return validationError(WeightedDeleteRejected, msgWeightedDelete)
		}

		if err := tx.Remove(stored); err != nil {
			return err
		}
		removed = stored
		synced, err = u.syncPorts(ctx, tx, []models.Destination{stored}, nil, pushed)
		return err
	})
	u.restorePorts(ctx, logger, pushed.toRestore(synced, err))
	if err != nil {
		return u.fail(logger, wrapUnlessValidation(err, "delete destination from route %s", route.Guid))
	}

	logger.WithFields(log.Fields{"processes_synced": len(synced)}).Info("deleted destination")
	metrics.RecordChanges(0, 1, len(synced))
	u.notify(ctx, logger, notifier.Changes{
		Route:    route,
		Actor:    actor,
		Unmapped: []models.Destination{removed},
	})
	return nil
}

// resolve validates the requests and turns them into destinations for route.
// It also returns the requested processes their app does not have.
func (u *Updater) resolve(ctx context.Context, requests []DestinationRequest, route models.Route, resolver AppResolver) ([]models.Destination, map[models.ProcessKey]bool, error) {
	if route.Guid == "" {
		return nil, nil, errors.New("route guid is required")
	}
	if err := validateRequests(requests); err != nil {
		return nil, nil, err
	}

	apps := map[string]models.AppRecord{}
	missing := map[models.ProcessKey]bool{}
	destinations := make([]models.Destination, 0, len(requests))
	for _, r := range requests {
		app, ok := apps[r.AppGuid]
		if !ok {
			var err error
			app, err = resolver.App(ctx, r.AppGuid)
			if errors.Is(err, models.ErrNotFound) {
				return nil, nil, notFoundError(err, msgAppNotFound, r.AppGuid)
			}
			if err != nil {
				return nil, nil, fmt.Errorf("resolve app %s: %w", r.AppGuid, err)
			}
			apps[r.AppGuid] = app
		}

		processType := r.ProcessType
		if processType == "" {
			processType = models.DefaultProcessType
		}
		if _, ok := app.Process(processType); !ok {
			missing[models.ProcessKey{AppGuid: r.AppGuid, ProcessType: processType}] = true
		}
		port := app.DefaultPort()
		if r.Port != nil {
			port = *r.Port
		}
		var weight *int
		if r.Weight != nil {
			weight = models.IntPtr(*r.Weight)
		}

		destinations = append(destinations, models.Destination{
			RouteGuid: route.Guid,
			App:       models.App{Guid: r.AppGuid, Process: models.Process{Type: processType}},
			Port:      port,
			Weight:    weight,
		})
	}
	return destinations, missing, nil
}

// syncPorts recomputes the ports of every process touched by changed, once
// per process, from the transaction's view of all routes. Processes in
// missing do not exist on their app and are left alone. Every process handed
// to the port syncer is added to pushed, and the ones synced are returned.
func (u *Updater) syncPorts(ctx context.Context, tx store.Tx, changed []models.Destination, missing map[models.ProcessKey]bool, pushed *processSet) ([]models.ProcessKey, error) {
	touched := newProcessSet()
	for _, d := range changed {
		touched.add(d.ProcessKey())
	}

	synced := []models.ProcessKey{}
	for _, p := range touched.order {
		if missing[p] {
			log.WithField("process", p.String()).Debug("app has no such process, skipping port sync")
			continue
		}
		referencing, err := tx.DestinationsForProcess(p)
		if err != nil {
			return nil, err
		}
		ports := processports.Compute(p, referencing)
		log.WithFields(log.Fields{"process": p.String(), "ports": ports}).Debug("syncing process ports")
		pushed.add(p)
		if err := u.PortSyncer.UpdateRouteInformation(ctx, p, ports, false); err != nil {
			return nil, fmt.Errorf("sync ports for process %s: %w", p, err)
		}
		synced = append(synced, p)
	}
	return synced, nil
}

// restorePorts pushes the committed port set of processes whose ports were
// sent from a transaction that did not commit
func (u *Updater) restorePorts(ctx context.Context, logger *log.Entry, processes []models.ProcessKey) {
	ctx = context.WithoutCancel(ctx)
	for _, p := range processes {
		var ports []int
		err := u.Store.Transact(ctx, func(ctx context.Context, tx store.Tx) error {
			referencing, err := tx.DestinationsForProcess(p)
			if err != nil {
				return err
			}
			ports = processports.Compute(p, referencing)
			return nil
		})
		if err == nil {
			err = u.PortSyncer.UpdateRouteInformation(ctx, p, ports, false)
		}
		if err != nil {
			logger.WithFields(log.Fields{"process": p.String()}).WithError(err).Warn("failed to restore process ports")
			continue
		}
		logger.WithFields(log.Fields{"process": p.String(), "ports": ports}).Info("restored process ports")
	}
}

func (u *Updater) notify(ctx context.Context, logger *log.Entry, changes notifier.Changes) {
	if u.Dispatcher == nil {
		return
	}
	if err := u.Dispatcher.Dispatch(ctx, changes); err != nil {
		logger.WithError(err).Warn("destinations were updated but notifications failed")
	}
}

func (u *Updater) fail(logger *log.Entry, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		metrics.RecordValidationFailure(string(ve.Kind))
		logger.WithFields(log.Fields{"kind": ve.Kind}).WithError(err).Info("rejected destination update")
		return err
	}
	logger.WithError(err).Error("destination update failed")
	return err
}

func wrapUnlessValidation(err error, format string, args ...interface{}) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

func keySet(destinations []models.Destination) map[models.DestinationKey]bool {
	keys := make(map[models.DestinationKey]bool, len(destinations))
	for _, d := range destinations {
		keys[d.Key()] = true
	}
	return keys
}

func dedupe(destinations []models.Destination) []models.Destination {
	seen := map[models.DestinationKey]bool{}
	unique := []models.Destination{}
	for _, d := range destinations {
		if seen[d.Key()] {
			continue
		}
		seen[d.Key()] = true
		unique = append(unique, d)
	}
	return unique
}

func find(destinations []models.Destination, target models.Destination) (models.Destination, bool) {
	for _, d := range destinations {
		if target.Guid != "" {
			if d.Guid == target.Guid {
				return d, true
			}
			continue
		}
		if d.Key() == target.Key() {
			return d, true
		}
	}
	return models.Destination{}, false
}

func sameWeight(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type processSet struct {
	seen  map[models.ProcessKey]bool
	order []models.ProcessKey
}

func newProcessSet() *processSet {
	return &processSet{seen: map[models.ProcessKey]bool{}}
}

func (s *processSet) add(p models.ProcessKey) {
	if !s.seen[p] {
		s.seen[p] = true
		s.order = append(s.order, p)
	}
}

// toRestore lists the processes in s that need their committed ports pushed
// again: all of them when the transaction failed, otherwise those only an
// abandoned attempt pushed.
func (s *processSet) toRestore(synced []models.ProcessKey, txErr error) []models.ProcessKey {
	if txErr != nil {
		return s.order
	}
	final := map[models.ProcessKey]bool{}
	for _, p := range synced {
		final[p] = true
	}
	stale := []models.ProcessKey{}
	for _, p := range s.order {
		if !final[p] {
			stale = append(stale, p)
		}
	}
	return stale
}

func copyWeight(weight *int) *int {
	if weight == nil {
		return nil
	}
	return models.IntPtr(*weight)
}
