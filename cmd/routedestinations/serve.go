package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	ctrl "sigs.k8s.io/controller-runtime"

	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/metrics"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/models"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/routefetcher"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/webhook"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the metacontroller sync webhook and metrics",
	Long: `Periodically snapshots every route from the store and serves the snapshot
as Route resources to metacontroller, so the mesh converges even when a
notification was lost.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := setup(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		ctx := ctrl.SetupSignalHandler()

		snapshotRepo := &models.SnapshotRepo{}
		fetcher := &routefetcher.Fetcher{Store: c.store, SnapshotRepo: snapshotRepo}

		mux := http.NewServeMux()
		mux.Handle("/sync", &webhook.SyncHandler{
			Marshaler:   marshal.MarshalFunc(json.Marshal),
			Unmarshaler: marshal.UnmarshalFunc(json.Unmarshal),
			Syncer: &webhook.Lineage{
				RouteSnapshotRepo:   snapshotRepo,
				K8sResourceBuilders: []webhook.K8sResourceBuilder{&webhook.RouteBuilder{DefaultNamespace: c.config.Kubernetes.WorkloadNamespace}},
			},
		})

		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", metrics.DefaultMetrics.Handler)

		servers := []*http.Server{
			{Addr: c.config.ListenAddress, Handler: mux},
			{Addr: c.config.MetricsAddress, Handler: metricsMux},
		}
		g, gctx := errgroup.WithContext(ctx)
		for _, srv := range servers {
			srv := srv
			g.Go(func() error {
				log.WithField("address", srv.Addr).Info("starting server")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve %s: %w", srv.Addr, err)
				}
				return nil
			})
		}
		g.Go(func() error {
			runFetcher(gctx, fetcher, c.config.SnapshotInterval)
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info("shutting down")
			shutdown(servers)
			return nil
		})
		return g.Wait()
	},
}

func shutdown(servers []*http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).WithField("address", srv.Addr).Warn("graceful shutdown did not complete")
			srv.Close()
		}
	}
}

// runFetcher refreshes the snapshot until ctx is done. Failures keep the
// previous snapshot.
func runFetcher(ctx context.Context, fetcher *routefetcher.Fetcher, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := fetcher.FetchOnce(ctx); err != nil {
			log.WithError(err).Warn("failed to refresh route snapshot")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
