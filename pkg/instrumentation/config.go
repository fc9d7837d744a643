// Package instrumentation exposes the process-wide switches of the
// instrumentation subsystem, read from the environment once.
package instrumentation

import (
	"strings"
	"sync"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	EnabledEnv     = "BEE_FRAMEWORK_INSTRUMENTATION_ENABLED"
	IgnoredKeysEnv = "BEE_FRAMEWORK_INSTRUMENTATION_IGNORED_KEYS"

	enabledKey     = "instrumentation.enabled"
	ignoredKeysKey = "instrumentation.ignored_keys"
)

// Config holds the instrumentation flags.
type Config struct {
	Enabled     bool
	IgnoredKeys []string
}

// IsIgnored reports whether key is listed in IgnoredKeys.
func (c Config) IsIgnored(key string) bool {
	for _, ignored := range c.IgnoredKeys {
		if ignored == key {
			return true
		}
	}
	return false
}

// Load reads the flags from the environment. Unset or unparsable values fall
// back to disabled and no ignored keys.
func Load() Config {
	v := viper.New()
	v.SetDefault(enabledKey, false)
	v.SetDefault(ignoredKeysKey, "")
	_ = v.BindEnv(enabledKey, EnabledEnv)
	_ = v.BindEnv(ignoredKeysKey, IgnoredKeysEnv)

	return Config{
		Enabled:     parseBool(v.GetString(enabledKey)),
		IgnoredKeys: splitKeys(v.GetString(ignoredKeysKey)),
	}
}

func parseBool(raw string) bool {
	enabled, err := cast.ToBoolE(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return enabled
}

// splitKeys splits a comma-separated list, dropping empty entries.
func splitKeys(raw string) []string {
	keys := []string{}
	for _, key := range strings.Split(raw, ",") {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}

var (
	current  Config
	loadOnce sync.Once
)

// Current returns the flags as read on first use.
func Current() Config {
	loadOnce.Do(func() {
		current = Load()
	})
	return current
}

// Enabled reports whether instrumentation is switched on.
func Enabled() bool {
	return Current().Enabled
}

// IgnoredKeys returns a copy of the keys excluded from instrumentation.
func IgnoredKeys() []string {
	return append([]string{}, Current().IgnoredKeys...)
}
