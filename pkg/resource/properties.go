package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Init loads application properties from a YAML file on disk.
func Init(filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("fail to read properties %s: %w", filepath, err)
	}
	return Load(data)
}

// Load replaces the current properties with the given YAML document.
// String values may reference environment variables as ${NAME} or ${NAME:default};
// they are resolved once, at load time.
func Load(data []byte) error {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fail to parse properties: %w", err)
	}

	flat := make(map[string]any)
	parsePropertiesMap("", raw.AllSettings(), flat)

	resolved := viper.New()
	for key, value := range flat {
		resolved.Set(key, value)
	}

	mu.Lock()
	properties = resolved
	mu.Unlock()
	return nil
}

// parsePropertiesMap flattens the YAML tree into dotted keys
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariables(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// resolveEnvVariables replaces every ${NAME:default} occurrence in value.
// Unset and empty variables both fall back to the default, which may itself be empty.
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue := os.Getenv(groups[1]); envValue != "" {
			return envValue
		}
		return groups[2]
	})
}

func current() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func Get(key string) any {
	return current().Get(key)
}

func GetString(key string) string {
	return current().GetString(key)
}

func GetBool(key string) bool {
	return current().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return current().GetDuration(key)
}

func GetInt(key string) int {
	return current().GetInt(key)
}

func GetStringSlice(key string) []string {
	return current().GetStringSlice(key)
}
