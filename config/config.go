package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultLateTolerance      = 5 * time.Minute
	defaultTooLate            = 15 * time.Minute
	defaultConcurrency        = 8
	defaultHTTPTimeout        = 8 * time.Second
	defaultLocationTTL        = 7 * 24 * time.Hour
	defaultMonthTTL           = 12 * time.Hour
	defaultDayTTL             = 12 * time.Hour
	defaultMaxRequestBodySize = "16KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		WorkerPort         int      `json:"workerPort" yaml:"workerPort"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"` // browser origins for CORS
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Cache configuration for timing and location caches
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Regional precise timing provider
	Regional *RegionalConfig `json:"regional" yaml:"regional"`

	// Generic astronomical timing provider
	Generic *GenericConfig `json:"generic" yaml:"generic"`

	// Dispatch configuration for the notification loop
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// VAPID configuration for Web Push
	VAPID *VAPIDConfig `json:"vapid" yaml:"vapid"`

	// Firebase configuration for native app push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for tick events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the subscription store connection
type RedisConfig struct {
	URL          string        `json:"url" yaml:"url"`
	KeyPrefix    string        `json:"keyPrefix" yaml:"keyPrefix"`
	MaxRetries   int           `json:"maxRetries" yaml:"maxRetries"`
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
	PoolSize     int           `json:"poolSize" yaml:"poolSize"`
	MinIdleConns int           `json:"minIdleConns" yaml:"minIdleConns"`
}

// CacheConfig selects the cache driver: "memory" or "redis"
type CacheConfig struct {
	Driver          string        `json:"driver" yaml:"driver"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

// Bounds is a latitude/longitude bounding box
type Bounds struct {
	MinLat float64 `json:"minLat" yaml:"minLat"`
	MaxLat float64 `json:"maxLat" yaml:"maxLat"`
	MinLon float64 `json:"minLon" yaml:"minLon"`
	MaxLon float64 `json:"maxLon" yaml:"maxLon"`
}

// Contains reports whether the point lies inside the box
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// ProfileConfig holds generic provider calculation parameters
type ProfileConfig struct {
	Method                   int    `json:"method" yaml:"method"`
	School                   int    `json:"school" yaml:"school"`
	LatitudeAdjustmentMethod int    `json:"latitudeAdjustmentMethod" yaml:"latitudeAdjustmentMethod"`
	MethodSettings           string `json:"methodSettings" yaml:"methodSettings"`
	Tune                     string `json:"tune" yaml:"tune"`
}

// BreakerConfig defines circuit breaker settings for an upstream
type BreakerConfig struct {
	MaxFailures uint32        `json:"maxFailures" yaml:"maxFailures"`
	OpenTimeout time.Duration `json:"openTimeout" yaml:"openTimeout"`
}

// RegionalConfig defines the regional precise provider
type RegionalConfig struct {
	Enabled           bool          `json:"enabled" yaml:"enabled"`
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	APIToken          string        `json:"apiToken" yaml:"apiToken"`
	TokenHeader       string        `json:"tokenHeader" yaml:"tokenHeader"`
	CountryCode       string        `json:"countryCode" yaml:"countryCode"`
	Bounds            Bounds        `json:"bounds" yaml:"bounds"`
	RequestTimeout    time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	LocationTTL       time.Duration `json:"locationTTL" yaml:"locationTTL"`
	MonthTTL          time.Duration `json:"monthTTL" yaml:"monthTTL"`
	Breaker           BreakerConfig `json:"breaker" yaml:"breaker"`

	// Fallback is the generic provider profile tuned for the region
	Fallback ProfileConfig `json:"fallback" yaml:"fallback"`
}

// GenericConfig defines the generic astronomical provider
type GenericConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	RequestTimeout    time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	DayTTL            time.Duration `json:"dayTTL" yaml:"dayTTL"`
	Profile           ProfileConfig `json:"profile" yaml:"profile"`
}

// LocationConfig is a subscriber location used when a record has none
type LocationConfig struct {
	Lat         float64 `json:"lat" yaml:"lat"`
	Lon         float64 `json:"lon" yaml:"lon"`
	Timezone    string  `json:"timezone" yaml:"timezone"`
	CountryCode string  `json:"countryCode" yaml:"countryCode"`
}

// NotificationConfig defines the push payload decoration
type NotificationConfig struct {
	URL   string `json:"url" yaml:"url"`
	Icon  string `json:"icon" yaml:"icon"`
	Badge string `json:"badge" yaml:"badge"`
}

// DispatchConfig defines the delivery window policy and tick behavior
type DispatchConfig struct {
	// LateTolerance opens the window this long before the prayer
	LateTolerance time.Duration `json:"lateTolerance" yaml:"lateTolerance"`

	// TooLate closes the window this long after the prayer
	TooLate time.Duration `json:"tooLate" yaml:"tooLate"`

	// Concurrency bounds parallel subscriber evaluations inside one tick
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// ManualTrigger enables POST /api/dispatch/run
	ManualTrigger bool `json:"manualTrigger" yaml:"manualTrigger"`

	DefaultLocation LocationConfig     `json:"defaultLocation" yaml:"defaultLocation"`
	Notification    NotificationConfig `json:"notification" yaml:"notification"`
}

// VAPIDConfig defines Web Push signing keys
type VAPIDConfig struct {
	PublicKey  string        `json:"publicKey" yaml:"publicKey"`
	PrivateKey string        `json:"privateKey" yaml:"privateKey"`
	Subscriber string        `json:"subscriber" yaml:"subscriber"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for tick events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML values.
	// Example: DISPATCH_TOOLATE -> dispatch.tooLate
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
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

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills zero values with the documented defaults.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = []string{"*"}
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.WorkerPort == 0 {
		c.HTTP.WorkerPort = 8081
	}

	if c.Redis == nil {
		c.Redis = &RedisConfig{URL: "redis://localhost:6379/0"}
	}
	if c.Cache == nil {
		c.Cache = &CacheConfig{}
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = "memory"
	}
	if c.Cache.CleanupInterval <= 0 {
		c.Cache.CleanupInterval = 10 * time.Minute
	}

	if c.Regional == nil {
		c.Regional = &RegionalConfig{}
	}
	if c.Regional.TokenHeader == "" {
		c.Regional.TokenHeader = "Api-Token"
	}
	if c.Regional.RequestTimeout <= 0 {
		c.Regional.RequestTimeout = defaultHTTPTimeout
	}
	if c.Regional.LocationTTL <= 0 {
		c.Regional.LocationTTL = defaultLocationTTL
	}
	if c.Regional.MonthTTL <= 0 {
		c.Regional.MonthTTL = defaultMonthTTL
	}
	if c.Regional.Breaker.MaxFailures == 0 {
		c.Regional.Breaker.MaxFailures = 5
	}
	if c.Regional.Breaker.OpenTimeout <= 0 {
		c.Regional.Breaker.OpenTimeout = time.Minute
	}

	if c.Generic == nil {
		c.Generic = &GenericConfig{}
	}
	if c.Generic.BaseURL == "" {
		c.Generic.BaseURL = "https://api.aladhan.com/v1"
	}
	if c.Generic.RequestTimeout <= 0 {
		c.Generic.RequestTimeout = defaultHTTPTimeout
	}
	if c.Generic.DayTTL <= 0 {
		c.Generic.DayTTL = defaultDayTTL
	}
	if c.Generic.Profile.Method == 0 {
		c.Generic.Profile.Method = 3
	}

	if c.Dispatch == nil {
		c.Dispatch = &DispatchConfig{}
	}
	if c.Dispatch.LateTolerance <= 0 {
		c.Dispatch.LateTolerance = defaultLateTolerance
	}
	if c.Dispatch.TooLate <= 0 {
		c.Dispatch.TooLate = defaultTooLate
	}
	if c.Dispatch.Concurrency <= 0 {
		c.Dispatch.Concurrency = defaultConcurrency
	}
	if c.Dispatch.DefaultLocation.Timezone == "" {
		c.Dispatch.DefaultLocation = LocationConfig{Lat: 59.9139, Lon: 10.7522, Timezone: "Europe/Oslo", CountryCode: "NO"}
	}
	if c.Dispatch.Notification.URL == "" {
		c.Dispatch.Notification.URL = "/"
	}

	if c.VAPID == nil {
		c.VAPID = &VAPIDConfig{}
	}
	if c.VAPID.TTL <= 0 {
		c.VAPID.TTL = 30 * time.Minute
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
