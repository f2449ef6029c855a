package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// SiteCacheSettings are the runtime knobs for the enriched-site cache.
type SiteCacheSettings struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

func DefaultSiteCacheSettings(cfg Config) SiteCacheSettings {
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return SiteCacheSettings{
		Enabled: cfg.Cache.Driver != CacheDriverNone,
		TTL:     ttl,
	}
}

type CacheConfigHolder struct {
	current atomic.Value // holds SiteCacheSettings
}

// NewCacheConfigHolder reads sites.yml when present and keeps watching it.
func NewCacheConfigHolder(cfg Config) (*CacheConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("sites")
	v.SetConfigType("yml")
	if dir := strings.TrimSpace(cfg.ConfigDir); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath("/etc/sites")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SITES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSiteCacheSettings(cfg)
	v.SetDefault("cache.enabled", defaults.Enabled)
	v.SetDefault("cache.ttl", defaults.TTL)

	found := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		found = false
	}

	settings, err := decodeSiteCacheSettings(v)
	if err != nil {
		return nil, err
	}

	holder := NewStaticCacheConfigHolder(settings)
	if !found {
		return holder, nil
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := decodeSiteCacheSettings(v)
		if err != nil {
			log.Printf("[cache-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[cache-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticCacheConfigHolder returns a holder pinned to the given settings.
func NewStaticCacheConfigHolder(settings SiteCacheSettings) *CacheConfigHolder {
	holder := &CacheConfigHolder{}
	holder.current.Store(settings)
	return holder
}

func (h *CacheConfigHolder) Get() SiteCacheSettings {
	if h == nil {
		return SiteCacheSettings{}
	}
	return h.current.Load().(SiteCacheSettings)
}

func decodeSiteCacheSettings(v *viper.Viper) (SiteCacheSettings, error) {
	var settings SiteCacheSettings
	if err := v.UnmarshalKey("cache", &settings); err != nil {
		return SiteCacheSettings{}, err
	}
	if err := validateSiteCacheSettings(settings); err != nil {
		return SiteCacheSettings{}, err
	}
	return settings, nil
}

func validateSiteCacheSettings(settings SiteCacheSettings) error {
	if settings.Enabled && settings.TTL <= 0 {
		return errors.New("cache.ttl must be positive when cache is enabled")
	}
	return nil
}
