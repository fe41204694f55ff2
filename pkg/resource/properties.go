package resource

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const DefaultPropertiesPath = "configs/application.yml"

var (
	mu         sync.RWMutex
	props      = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Path returns PROPERTIES_FILE_PATH or the default properties location.
func Path() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok && value != "" {
		return value
	}
	return DefaultPropertiesPath
}

// Init loads the YAML file, resolving ${ENV:default} placeholders into flat dotted keys.
// Calling it again replaces every previously loaded property.
func Init(filepath string) error {
	raw := viper.New()
	raw.SetConfigFile(filepath)
	raw.SetConfigType("yml")

	if err := raw.ReadInConfig(); err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", raw.AllSettings(), resolved)

	next := viper.New()
	for key, value := range resolved {
		next.Set(key, value)
	}

	mu.Lock()
	props = next
	mu.Unlock()
	return nil
}

// parsePropertiesMap reads recursively the YAML tree
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolvedValue, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolvedValue
			}
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			items := make([]any, 0, len(v))
			for _, item := range v {
				if s, isString := item.(string); isString {
					if resolvedItem, ok := resolveEnvVariable(s); ok {
						items = append(items, resolvedItem)
					}
					continue
				}
				items = append(items, item)
			}
			result[fullKey] = items
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable expands every ${NAME:default} in value. A value made only of a placeholder
// with neither env nor default is reported as unset.
func resolveEnvVariable(value string) (string, bool) {
	if !envPattern.MatchString(value) {
		return value, true
	}

	unset := false
	resolved := envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		if groups[2] == "" {
			unset = true
		}
		return groups[2]
	})

	if unset && resolved == "" {
		return "", false
	}
	return resolved, true
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return props
}

func Get(key string) any {
	return current().Get(key)
}

func IsSet(key string) bool {
	return current().IsSet(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

// GetStringOrDefault returns def when key is missing or empty.
func GetStringOrDefault(key, def string) string {
	if value := current().GetString(key); value != "" {
		return value
	}
	return def
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

// GetDurationOrDefault returns def when key is missing or not a positive duration.
func GetDurationOrDefault(key string, def time.Duration) time.Duration {
	if value := current().GetDuration(key); value > 0 {
		return value
	}
	return def
}

func GetInt(key string) int {
	return current().GetInt(key)
}

// GetIntOrDefault returns def when key is missing.
func GetIntOrDefault(key string, def int) int {
	if !current().IsSet(key) {
		return def
	}
	return current().GetInt(key)
}

func GetFloat64(key string) float64 {
	return current().GetFloat64(key)
}

// GetFloat64OrDefault returns def when key is missing.
func GetFloat64OrDefault(key string, def float64) float64 {
	if !current().IsSet(key) {
		return def
	}
	return current().GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}
