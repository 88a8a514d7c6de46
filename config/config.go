package config

import (
	"net/url"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultDatabase           = "coffeeDB"
	defaultAppName            = "DevCluster"
	defaultConnectTimeout     = 10 * time.Second
	defaultMaxDeleteAttempts  = 5
	defaultStaleAfter         = 10 * time.Minute
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
		RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Firebase configuration for the identity provider; nil disables account deletion upstream
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	IdentityDeletion *IdentityDeletionConfig `json:"identityDeletion" yaml:"identityDeletion"`

	// PubSub configuration for identity deletion retry events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig limits requests per client IP. Zero rate disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// MongoConfig defines the document store connection.
// URI takes precedence; otherwise an SRV URI is assembled from the cluster host and credentials.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	User           string        `json:"user" yaml:"user"`
	Password       string        `json:"password" yaml:"password"`
	Cluster        string        `json:"cluster" yaml:"cluster"`
	AppName        string        `json:"appName" yaml:"appName"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// FirebaseConfig defines the Firebase Admin SDK configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig toggles Firebase ID token verification on mutating routes
type AuthConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// IdentityDeletionConfig bounds provider deletion retries.
// A pending intent untouched for StaleAfter is considered abandoned by a crashed request.
type IdentityDeletionConfig struct {
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	StaleAfter  time.Duration `json:"staleAfter" yaml:"staleAfter"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the identity worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation for coffee pages
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
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

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MONGO_CONNECTTIMEOUT -> mongo.connectTimeout
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

	applyLegacyEnv(cfg)
	applyDefaults(cfg)

	return cfg, nil
}

// MongoURI returns the connection string for the document store.
func (c *MongoConfig) MongoURI() (string, error) {
	if c == nil {
		return "", errors.New("mongo config is missing")
	}

	if strings.TrimSpace(c.URI) != "" {
		return c.URI, nil
	}

	if c.Cluster == "" {
		return "", errors.New("mongo uri or cluster must be set")
	}

	uri := url.URL{
		Scheme: "mongodb+srv",
		Host:   c.Cluster,
		Path:   "/",
	}
	if c.User != "" {
		uri.User = url.UserPassword(c.User, c.Password)
	}

	query := url.Values{}
	query.Set("retryWrites", "true")
	query.Set("w", "majority")
	if c.AppName != "" {
		query.Set("appName", c.AppName)
	}
	uri.RawQuery = query.Encode()

	return uri.String(), nil
}

// applyLegacyEnv maps the deployment's historical variable names onto the config tree.
// PORT, DB_USER, DB_PASSWORD and DB_CLUSTER win over the YAML values when set.
func applyLegacyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.HTTP.Port = p
		}
	}

	user, password, cluster := os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_CLUSTER")
	if user == "" && password == "" && cluster == "" {
		return
	}

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if user != "" {
		cfg.Mongo.User = user
	}
	if password != "" {
		cfg.Mongo.Password = password
	}
	if cluster != "" {
		cfg.Mongo.Cluster = cluster
	}
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultDatabase
	}
	if cfg.Mongo.AppName == "" {
		cfg.Mongo.AppName = defaultAppName
	}
	if cfg.Mongo.ConnectTimeout <= 0 {
		cfg.Mongo.ConnectTimeout = defaultConnectTimeout
	}

	if cfg.IdentityDeletion == nil {
		cfg.IdentityDeletion = &IdentityDeletionConfig{}
	}
	if cfg.IdentityDeletion.MaxAttempts <= 0 {
		cfg.IdentityDeletion.MaxAttempts = defaultMaxDeleteAttempts
	}
	if cfg.IdentityDeletion.StaleAfter <= 0 {
		cfg.IdentityDeletion.StaleAfter = defaultStaleAfter
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
