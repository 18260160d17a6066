package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"code.cloudfoundry.org/tlsconfig"
	backend "github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	appsv1alpha1 "code.cloudfoundry.org/cf-k8s-networking/routedestinations/apis/apps/v1alpha1"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/appresolver"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/audit"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/ccclient"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/cfg"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/destinations"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/jsonclient"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/meshadapter"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/notifier"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/portsync"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/store"
	"code.cloudfoundry.org/cf-k8s-networking/routedestinations/uaaclient"
)

type components struct {
	config  *cfg.Config
	redis   *backend.Client
	store   *store.RedisStore
	k8s     client.Client
	updater *destinations.Updater
}

// loadConfig reads the config and sets up both loggers
func loadConfig(cmd *cobra.Command) (*cfg.Config, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")

	config, err := cfg.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", cfg.FileLogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})
	ctrl.SetLogger(zap.New(zap.UseDevMode(level >= log.DebugLevel)))

	return config, nil
}

// setup builds everything the engine needs to run against redis and kubernetes
func setup(cmd *cobra.Command) (*components, error) {
	config, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	redisClient := backend.NewClient(&backend.Options{
		Addr:     config.Redis.Address,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	destinationStore := store.NewRedisStoreFromClient(redisClient, store.WithKeyPrefix(config.Redis.KeyPrefix))

	k8sClient, err := buildK8sClient()
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	var writer audit.EventWriter = &audit.LogWriter{Logger: log.WithField("component", "audit")}
	if config.Audit.Stream != "" {
		writer = &audit.RedisStreamWriter{Client: redisClient, Stream: config.Audit.Stream}
	}

	return &components{
		config: config,
		redis:  redisClient,
		store:  destinationStore,
		k8s:    k8sClient,
		updater: &destinations.Updater{
			Store: destinationStore,
			PortSyncer: &portsync.ServicePortSyncer{
				Client:    k8sClient,
				Namespace: config.Kubernetes.WorkloadNamespace,
				Log:       ctrl.Log.WithName("portsync"),
			},
			Dispatcher: &notifier.Dispatcher{
				AuditRepository: &audit.Repository{Writer: writer},
				MeshAdapter: &meshadapter.RouteCRDAdapter{
					Client:    k8sClient,
					Namespace: config.Kubernetes.WorkloadNamespace,
					Log:       ctrl.Log.WithName("meshadapter"),
				},
			},
		},
	}, nil
}

func (c *components) Close() {
	if err := c.redis.Close(); err != nil {
		log.WithError(err).Warn("closing redis client")
	}
}

func buildK8sClient() (client.Client, error) {
	scheme := runtime.NewScheme()
	if err := corev1.AddToScheme(scheme); err != nil {
		return nil, err
	}
	if err := appsv1alpha1.AddToScheme(scheme); err != nil {
		return nil, err
	}

	restConfig, err := ctrl.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading kubeconfig: %w", err)
	}
	k8sClient, err := client.New(restConfig, client.Options{Scheme: scheme})
	if err != nil {
		return nil, fmt.Errorf("creating kubernetes client: %w", err)
	}
	return k8sClient, nil
}

// buildResolver prefers an apps file when one is given, Cloud Controller otherwise
func buildResolver(cmd *cobra.Command, config *cfg.Config) (destinations.AppResolver, error) {
	appsFile, _ := cmd.Flags().GetString("apps-file")
	if appsFile != "" {
		return loadStaticResolver(appsFile)
	}

	uaaClient, ccClient, err := buildCCClients(config)
	if err != nil {
		return nil, err
	}
	ccResolver := &appresolver.CCResolver{CCClient: ccClient, UAAClient: uaaClient}
	return appresolver.NewCached(ccResolver, config.AppCacheTTL), nil
}

func loadStaticResolver(path string) (appresolver.Static, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading apps file: %w", err)
	}
	apps := appresolver.Static{}
	if err := json.Unmarshal(bytes, &apps); err != nil {
		return nil, fmt.Errorf("parsing apps file %s: %w", path, err)
	}
	return apps, nil
}

func buildCCClients(config *cfg.Config) (*uaaclient.Client, *ccclient.Client, error) {
	if err := config.RequireCloudController(); err != nil {
		return nil, nil, err
	}

	uaaHTTPClient, err := buildHTTPClient(config.UAA.CAFile)
	if err != nil {
		return nil, nil, fmt.Errorf("uaa tls config: %w", err)
	}
	ccHTTPClient, err := buildHTTPClient(config.CC.CAFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cc tls config: %w", err)
	}

	return &uaaclient.Client{
			BaseURL:    config.UAA.BaseURL,
			Name:       config.UAA.ClientName,
			Secret:     config.UAA.ClientSecret,
			JSONClient: &jsonclient.JSONClient{HTTPClient: uaaHTTPClient},
		}, &ccclient.Client{
			BaseURL:    config.CC.BaseURL,
			JSONClient: &jsonclient.JSONClient{HTTPClient: ccHTTPClient},
		}, nil
}

func buildHTTPClient(caFile string) (*http.Client, error) {
	tlsConfig, err := tlsconfig.
		Build(tlsconfig.WithInternalServiceDefaults()).
		Client(tlsconfig.WithAuthorityFromFile(caFile))
	if err != nil {
		return nil, err
	}

	return &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: tlsConfig,
		},
	}, nil
}
