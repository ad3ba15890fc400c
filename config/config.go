package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"

	// DriverPostgres stores listings in PostgreSQL through GORM.
	DriverPostgres = "postgres"
	// DriverFirestore stores listings in Cloud Firestore.
	DriverFirestore = "firestore"
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

	Persistence PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey SecretKeyConfig `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin holds the externally managed administrator identity.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	// Firebase configuration for Firestore persistence and ID token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis configuration for the approved listing mirror
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Listing *ListingConfig `json:"listing" yaml:"listing"`

	Stats *StatsConfig `json:"stats" yaml:"stats"`

	// PubSub configuration for moderation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Reference ReferenceConfig `json:"reference" yaml:"reference"`

	I18n I18nConfig `json:"i18n" yaml:"i18n"`
}

// PersistenceConfig selects the listing store backend.
type PersistenceConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	// AutoMigrate creates or alters the PostgreSQL tables at startup.
	AutoMigrate        bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// SecretKeyConfig holds the HMAC key for access tokens.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	MinPasswordLen int           `json:"minPasswordLen" yaml:"minPasswordLen"`
}

// AdminConfig identifies the single administrator account.
// PasswordHash is a bcrypt hash; the plaintext never lives in config.
type AdminConfig struct {
	Email        string `json:"email" yaml:"email"`
	Name         string `json:"name" yaml:"name"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase project access
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// VerifyIDTokens enables the federated sign-in endpoint.
	VerifyIDTokens bool `json:"verifyIdTokens" yaml:"verifyIdTokens"`
}

// RedisConfig defines the connection used by the listing mirror
type RedisConfig struct {
	URL          string        `json:"url" yaml:"url"`
	Address      string        `json:"address" yaml:"address"`
	Password     string        `json:"password" yaml:"password"`
	DB           int           `json:"db" yaml:"db"`
	PoolSize     int           `json:"poolSize" yaml:"poolSize"`
	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	// MirrorTTL bounds how long a mirrored listing snapshot may be served.
	MirrorTTL time.Duration `json:"mirrorTTL" yaml:"mirrorTTL"`
	KeyPrefix string        `json:"keyPrefix" yaml:"keyPrefix"`
}

// ListingConfig defines listing limits and moderation defaults
type ListingConfig struct {
	PageSize              int    `json:"pageSize" yaml:"pageSize"`
	MinImages             int    `json:"minImages" yaml:"minImages"`
	MaxImages             int    `json:"maxImages" yaml:"maxImages"`
	MaxImageBytes         int    `json:"maxImageBytes" yaml:"maxImageBytes"`
	DefaultRejectedReason string `json:"defaultRejectedReason" yaml:"defaultRejectedReason"`
}

// StatsConfig controls the admin summary refresher
type StatsConfig struct {
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
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

// ReferenceConfig holds the static lookup lists shown in filters.
type ReferenceConfig struct {
	Categories []ReferenceItem `json:"categories" yaml:"categories"`
	States     []ReferenceItem `json:"states" yaml:"states"`
	Districts  []ReferenceItem `json:"districts" yaml:"districts"`
}

// ReferenceItem is one category, state or district. StateID is only set for districts.
type ReferenceItem struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Icon    string `json:"icon" yaml:"icon"`
	StateID string `json:"stateId" yaml:"stateId"`
}

type I18nConfig struct {
	DefaultLanguage string `json:"defaultLanguage" yaml:"defaultLanguage"`
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

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// REDIS_MIRRORTTL -> redis.mirrorTTL, matching the YAML key casing.
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

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills optional sections so consumers never see nil.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Persistence.Driver == "" {
		cfg.Persistence.Driver = DriverPostgres
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = 24 * time.Hour
	}
	if cfg.Auth.MinPasswordLen <= 0 {
		cfg.Auth.MinPasswordLen = 6
	}
	if cfg.Listing == nil {
		cfg.Listing = &ListingConfig{}
	}
	if cfg.Listing.PageSize <= 0 {
		cfg.Listing.PageSize = 8
	}
	if cfg.Listing.MinImages <= 0 {
		cfg.Listing.MinImages = 2
	}
	if cfg.Listing.MaxImages <= 0 {
		cfg.Listing.MaxImages = 3
	}
	if cfg.Listing.MaxImageBytes <= 0 {
		cfg.Listing.MaxImageBytes = 1024 * 1024
	}
	if strings.TrimSpace(cfg.Listing.DefaultRejectedReason) == "" {
		cfg.Listing.DefaultRejectedReason = "Not approved by admin"
	}
	if cfg.Stats == nil {
		cfg.Stats = &StatsConfig{}
	}
	if cfg.Stats.RefreshInterval <= 0 {
		cfg.Stats.RefreshInterval = 5 * time.Second
	}
	if cfg.I18n.DefaultLanguage == "" {
		cfg.I18n.DefaultLanguage = "en"
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

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index with no host or port.
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
