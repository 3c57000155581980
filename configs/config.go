package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DEFAULT_RPC_URL   = "https://eth-mainnet.g.alchemy.com/v2"
	DEFAULT_API_HOST  = "127.0.0.1"
	DEFAULT_API_PORT  = 8000
	DEFAULT_CACHE_DIR = "data"
)

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type RPCConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"apiKey"`
	// Timeout in milliseconds, 0 leaves the transport default in place
	Timeout int `mapstructure:"timeout"`
}

// Endpoint returns the provider URL the API key is appended to.
func (c RPCConfig) Endpoint() string {
	base := c.URL
	if base == "" {
		base = DEFAULT_RPC_URL
	}
	return strings.TrimRight(base, "/") + "/" + c.APIKey
}

type APIConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	StaticDir string `mapstructure:"staticDir"`
}

func (c APIConfig) Addr() string {
	host := c.Host
	if host == "" {
		host = DEFAULT_API_HOST
	}
	port := c.Port
	if port == 0 {
		port = DEFAULT_API_PORT
	}
	return fmt.Sprintf("%s:%d", host, port)
}

type StorageConfig struct {
	File     *FileConfig     `mapstructure:"file"`
	Memory   *MemoryConfig   `mapstructure:"memory"`
	Badger   *BadgerConfig   `mapstructure:"badger"`
	Pebble   *PebbleConfig   `mapstructure:"pebble"`
	Bolt     *BoltConfig     `mapstructure:"bolt"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	S3       *S3Config       `mapstructure:"s3"`
}

type FileConfig struct {
	Dir string `mapstructure:"dir"`
}

type MemoryConfig struct{}

type BadgerConfig struct {
	Path string `mapstructure:"path"`
}

type PebbleConfig struct {
	Path string `mapstructure:"path"`
}

type BoltConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"poolSize"`
	Prefix   string `mapstructure:"prefix"`
}

type PostgresConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	SSLMode         string `mapstructure:"sslMode"`
	ConnectTimeout  int    `mapstructure:"connectTimeout"`
	MaxOpenConns    int    `mapstructure:"maxOpenConns"`
	MaxIdleConns    int    `mapstructure:"maxIdleConns"`
	MaxConnLifetime int    `mapstructure:"maxConnLifetime"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	UsePathStyle    bool   `mapstructure:"usePathStyle"`
}

type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	Log     LogConfig     `mapstructure:"log"`
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
}

var Cfg Config

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.RPC.APIKey == "" {
		return fmt.Errorf("RPC API key is required (set RPC_APIKEY or ALCHEMY_API_KEY)")
	}
	return nil
}

func LoadConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	// sets e.g. RPC_APIKEY to rpc.apiKey
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()

	// names used by earlier deployments of the service
	viper.BindEnv("rpc.apiKey", "RPC_APIKEY", "ALCHEMY_API_KEY")
	viper.BindEnv("api.host", "API_HOST", "HOST")
	viper.BindEnv("api.port", "API_PORT", "PORT")

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}
