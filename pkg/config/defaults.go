// Package config defines the intern table and CLI settings and their defaults.
package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// TableConfig sizes and tunes an intern table.
type TableConfig struct {
	// PoolSize is the minimum slot count of a new dynamic pool.
	PoolSize int `mapstructure:"pool_size"`
	// Growth multiplies the previous pool's capacity on growth.
	Growth int `mapstructure:"growth"`
	// MaxBytes caps the total bytes of string content. Bookkeeping is not
	// counted. 0 means unlimited.
	MaxBytes int `mapstructure:"max_bytes"`
	// Hash is "djb2" or "xxhash".
	Hash string `mapstructure:"hash"`
	// IndexBuckets enables the hash-bucket index when > 0.
	IndexBuckets int `mapstructure:"index_buckets"`
	// FindCache is the LRU cache size for Find. 0 disables it.
	FindCache int  `mapstructure:"find_cache"`
	Locking   bool `mapstructure:"locking"`
}

// Config is the full qstr configuration.
type Config struct {
	Table TableConfig `mapstructure:"table"`
	// Defs is the static definition file; empty uses the built-in set.
	Defs string `mapstructure:"defs"`
	// Store is a directory or s3://bucket/prefix for snapshots.
	Store string `mapstructure:"store"`
	// OTLPEndpoint exports traces when set.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	MetricsAddr  string `mapstructure:"metrics_addr"`
}

// Defaults.
const (
	DefaultHash        = "djb2"
	DefaultStore       = ".qstr"
	DefaultMetricsAddr = ":9464"
)

// DefaultTableConfig returns default table tuning.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		PoolSize: intern.DefaultPoolSize,
		Growth:   intern.DefaultGrowth,
		Hash:     DefaultHash,
	}
}

// DefaultConfig returns the defaults for every setting.
func DefaultConfig() Config {
	return Config{
		Table:       DefaultTableConfig(),
		Store:       DefaultStore,
		MetricsAddr: DefaultMetricsAddr,
	}
}

// SetDefaults registers the defaults with v so that file and environment
// values override them key by key.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("table.pool_size", d.Table.PoolSize)
	v.SetDefault("table.growth", d.Table.Growth)
	v.SetDefault("table.max_bytes", d.Table.MaxBytes)
	v.SetDefault("table.hash", d.Table.Hash)
	v.SetDefault("table.index_buckets", d.Table.IndexBuckets)
	v.SetDefault("table.find_cache", d.Table.FindCache)
	v.SetDefault("table.locking", d.Table.Locking)
	v.SetDefault("defs", d.Defs)
	v.SetDefault("store", d.Store)
	v.SetDefault("otlp_endpoint", d.OTLPEndpoint)
	v.SetDefault("metrics_addr", d.MetricsAddr)
}

// Load decodes v into a Config.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if _, err := c.Table.Hasher(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Hasher resolves the configured hash function.
func (c TableConfig) Hasher() (intern.Hasher, error) {
	switch c.Hash {
	case "", "djb2":
		return intern.DJB2, nil
	case "xxhash":
		return intern.XXHash, nil
	default:
		return nil, fmt.Errorf("unknown hash %q (want djb2 or xxhash)", c.Hash)
	}
}

// Options turns c into intern table options.
func (c TableConfig) Options(logger *slog.Logger) []intern.Option {
	opts := []intern.Option{
		intern.WithPoolSize(c.PoolSize),
		intern.WithGrowth(c.Growth),
	}
	if logger != nil {
		opts = append(opts, intern.WithLogger(logger))
	}
	if c.MaxBytes > 0 {
		opts = append(opts, intern.WithMaxBytes(c.MaxBytes))
	}
	if h, err := c.Hasher(); err == nil {
		opts = append(opts, intern.WithHasher(h))
	}
	if c.IndexBuckets > 0 {
		opts = append(opts, intern.WithIndex(c.IndexBuckets))
	}
	if c.FindCache > 0 {
		opts = append(opts, intern.WithFindCache(c.FindCache))
	}
	if c.Locking {
		opts = append(opts, intern.WithLocking())
	}
	return opts
}
