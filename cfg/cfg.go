package cfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	UAA struct {
		// Base URL for UAA, e.g. uaa.sys.example.com or uaa.cf.system.internal
		BaseURL string

		// UAA client name to use when acquiring a token for accessing Cloud Controller
		ClientName string

		// Client secret matching the client name
		ClientSecret string

		// PEM file path for the certificate authority that signed the UAA server cert
		CAFile string
	}

	CC struct {
		// Base URL for Cloud Controller, e.g. api.sys.example.com or api.cf.system.internal
		BaseURL string

		// PEM file path for the certificate authority that signed the CC server cert
		CAFile string
	}

	Redis struct {
		Address   string
		Password  string
		DB        int
		KeyPrefix string
	}

	Audit struct {
		// Redis stream receiving audit events. Empty means events are only logged.
		Stream string
	}

	Kubernetes struct {
		// Namespace holding the per-process Services and the Route resources
		WorkloadNamespace string
	}

	ListenAddress    string
	MetricsAddress   string
	SnapshotInterval time.Duration
	LogLevel         string

	// How long apps resolved through Cloud Controller are remembered
	AppCacheTTL time.Duration
}

const (
	FileUAABaseURL        = "uaaBaseURL"
	FileUAAClientName     = "clientName"
	FileUAAClientSecret   = "clientSecret"
	FileUAACA             = "uaaCA"
	FileCCBaseURL         = "ccBaseURL"
	FileCCCA              = "ccCA"
	FileRedisAddress      = "redisAddress"
	FileRedisPassword     = "redisPassword"
	FileRedisDB           = "redisDB"
	FileRedisKeyPrefix    = "redisKeyPrefix"
	FileAuditStream       = "auditStream"
	FileWorkloadNamespace = "workloadNamespace"
	FileListenAddress     = "listenAddress"
	FileMetricsAddress    = "metricsAddress"
	FileSnapshotInterval  = "snapshotInterval"
	FileAppCacheTTL       = "appCacheTTL"
	FileLogLevel          = "logLevel"
)

const (
	DefaultRedisKeyPrefix    = "routedestinations:"
	DefaultWorkloadNamespace = "cf-workloads"
	DefaultListenAddress     = ":8080"
	DefaultMetricsAddress    = ":9090"
	DefaultSnapshotInterval  = 10 * time.Second
	DefaultAppCacheTTL       = 30 * time.Second
	DefaultLogLevel          = "info"
)

var ErrCloudControllerNotConfigured = errors.New("cloud controller is not configured: set ccBaseURL, uaaBaseURL, clientName and clientSecret")

// Load loads a Config from environment variables or files within a directory on disk
// When running inside a K8s Cluster, this directory should probably be a volume mount of a K8s Secret
func Load(configDir string) (*Config, error) {
	c := &Config{}

	var err error
	if c.Redis.Address, err = loadValue(configDir, FileRedisAddress); err != nil {
		return nil, err
	}

	for key, target := range map[string]*string{
		FileCCBaseURL:       &c.CC.BaseURL,
		FileUAABaseURL:      &c.UAA.BaseURL,
		FileUAAClientName:   &c.UAA.ClientName,
		FileUAAClientSecret: &c.UAA.ClientSecret,
		FileRedisPassword:   &c.Redis.Password,
		FileAuditStream:     &c.Audit.Stream,
	} {
		if *target, err = loadOptionalValue(configDir, key, ""); err != nil {
			return nil, err
		}
	}

	for key, def := range map[string]struct {
		target *string
		value  string
	}{
		FileRedisKeyPrefix:    {&c.Redis.KeyPrefix, DefaultRedisKeyPrefix},
		FileWorkloadNamespace: {&c.Kubernetes.WorkloadNamespace, DefaultWorkloadNamespace},
		FileListenAddress:     {&c.ListenAddress, DefaultListenAddress},
		FileMetricsAddress:    {&c.MetricsAddress, DefaultMetricsAddress},
		FileLogLevel:          {&c.LogLevel, DefaultLogLevel},
	} {
		if *def.target, err = loadOptionalValue(configDir, key, def.value); err != nil {
			return nil, err
		}
	}

	db, err := loadOptionalValue(configDir, FileRedisDB, "0")
	if err != nil {
		return nil, err
	}
	if c.Redis.DB, err = strconv.Atoi(db); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileRedisDB, err)
	}

	interval, err := loadOptionalValue(configDir, FileSnapshotInterval, DefaultSnapshotInterval.String())
	if err != nil {
		return nil, err
	}
	if c.SnapshotInterval, err = time.ParseDuration(interval); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileSnapshotInterval, err)
	}
	if c.SnapshotInterval <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", FileSnapshotInterval, c.SnapshotInterval)
	}

	ttl, err := loadOptionalValue(configDir, FileAppCacheTTL, DefaultAppCacheTTL.String())
	if err != nil {
		return nil, err
	}
	if c.AppCacheTTL, err = time.ParseDuration(ttl); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileAppCacheTTL, err)
	}

	c.UAA.CAFile = getPath(configDir, FileUAACA)
	c.CC.CAFile = getPath(configDir, FileCCCA)
	return c, nil
}

// RequireCloudController reports whether enough is configured to talk to CC
func (c *Config) RequireCloudController() error {
	if c.CC.BaseURL == "" || c.UAA.BaseURL == "" || c.UAA.ClientName == "" || c.UAA.ClientSecret == "" {
		return ErrCloudControllerNotConfigured
	}
	return nil
}

func loadValue(configDir string, key string) (string, error) {
	value, exists := os.LookupEnv(key)
	if exists {
		return value, nil
	}
	return readFile(configDir, key)
}

func loadOptionalValue(configDir string, key string, defaultValue string) (string, error) {
	value, err := loadValue(configDir, key)
	if errors.Is(err, os.ErrNotExist) {
		return defaultValue, nil
	}
	if err != nil {
		return "", err
	}
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}

func readFile(configDir string, filename string) (string, error) {
	bytes, err := os.ReadFile(getPath(configDir, filename))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(bytes)), nil
}

func getPath(configDir string, filename string) string {
	return filepath.Join(configDir, filename)
}
