package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"
	defaultAppName            = "IrysLinkTree"
	defaultAppVersion         = "1.0.0"
	defaultProfileType        = "linktree"
	defaultStoreProvider      = "irys"
	defaultRequestTimeout     = 15 * time.Second
	defaultCacheTTL           = 10 * time.Minute
	defaultUnlockTTL          = 30 * time.Minute
	defaultAnalyticsBackend   = "pebble"
	defaultAnalyticsDataDir   = "./data/analytics"
	defaultRateLimit          = 5
	defaultRateBurst          = 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// App identifies this deployment inside the tags of every persisted record
	App AppConfig `json:"app" yaml:"app"`

	// Store selects and configures the content-addressed storage network
	Store StoreConfig `json:"store" yaml:"store"`

	// Wallet configures the account documents are published from
	Wallet WalletConfig `json:"wallet" yaml:"wallet"`

	// Analytics configures the local view/click counter store
	Analytics AnalyticsConfig `json:"analytics" yaml:"analytics"`

	// Postgres holds the connection used by the postgres analytics backend
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Cache configures the optional Redis cache for fetched documents
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	SecretKey struct {
		Unlock string `json:"unlock" yaml:"unlock"`
	} `json:"secretKey" yaml:"secretKey"`

	// Unlock configures access tokens for password-protected profiles
	Unlock UnlockConfig `json:"unlock" yaml:"unlock"`

	// QRCode configuration for share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for profile-published events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AppConfig carries the identifiers written into document and mapping tags
type AppConfig struct {
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`
	ProfileType   string `json:"profileType" yaml:"profileType"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// StoreConfig defines the content store provider and its endpoints
type StoreConfig struct {
	// Provider type: "irys" for a bundler node plus gateway, "blob" for a gocloud.dev bucket
	Provider string `json:"provider" yaml:"provider"`

	// Bundler node used for uploads, balance and funding (irys provider)
	NodeURL string `json:"nodeUrl" yaml:"nodeUrl"`

	// Gateway used for fetches and GraphQL tag queries; also the base of retrieval URLs
	GatewayURL string `json:"gatewayUrl" yaml:"gatewayUrl"`

	// Payment token name understood by the bundler node, e.g. "ethereum"
	Token string `json:"token" yaml:"token"`

	// Bucket URL for the blob provider, e.g. "mem://", "file:///var/lib/linkvault", "s3://bucket?region=us-east-1"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Price in atomic units charged per stored byte (blob provider)
	PricePerByte int64 `json:"pricePerByte" yaml:"pricePerByte"`

	// Upper bound for each individual network call
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// WalletConfig defines the publishing account
type WalletConfig struct {
	Address string `json:"address" yaml:"address"`
	ChainID int64  `json:"chainId" yaml:"chainId"`
}

// AnalyticsConfig defines where local counters are kept
type AnalyticsConfig struct {
	// Backend type: "pebble" for an embedded store under dataDir, "postgres" for the postgres section
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"dataDir" yaml:"dataDir"`

	// Optional MaxMind country/city database used to fill visitor locations
	GeoIPDBPath string `json:"geoipDbPath" yaml:"geoipDbPath"`

	// Allowed view/click events per second and burst per client IP
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	RateBurst int     `json:"rateBurst" yaml:"rateBurst"`
}

// CacheConfig defines the Redis document cache
type CacheConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
}

// UnlockConfig defines password-gate token lifetime
type UnlockConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: STORE_GATEWAYURL -> store.gatewayUrl (not store.gatewayurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional setting left empty by the YAML file and the environment.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.App.Name == "" {
		cfg.App.Name = defaultAppName
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.App.ProfileType == "" {
		cfg.App.ProfileType = defaultProfileType
	}
	cfg.App.PublicBaseURL = strings.TrimRight(cfg.App.PublicBaseURL, "/")

	if cfg.Store.Provider == "" {
		cfg.Store.Provider = defaultStoreProvider
	}
	if cfg.Store.RequestTimeout <= 0 {
		cfg.Store.RequestTimeout = defaultRequestTimeout
	}
	cfg.Store.GatewayURL = strings.TrimRight(cfg.Store.GatewayURL, "/")
	cfg.Store.NodeURL = strings.TrimRight(cfg.Store.NodeURL, "/")

	if cfg.Analytics.Backend == "" {
		cfg.Analytics.Backend = defaultAnalyticsBackend
	}
	if cfg.Analytics.DataDir == "" {
		cfg.Analytics.DataDir = defaultAnalyticsDataDir
	}
	if cfg.Analytics.RateLimit <= 0 {
		cfg.Analytics.RateLimit = defaultRateLimit
	}
	if cfg.Analytics.RateBurst <= 0 {
		cfg.Analytics.RateBurst = defaultRateBurst
	}
	if cfg.Cache != nil && cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Unlock.TTL <= 0 {
		cfg.Unlock.TTL = defaultUnlockTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
