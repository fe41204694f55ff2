package msg

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

//go:embed messages.yml
var defaultMessages []byte

var (
	mu       sync.RWMutex
	messages map[string]string
)

// init loads the embedded catalog, then overlays MESSAGES_FILE_PATH when present.
func init() {
	if err := load(bytes.NewReader(defaultMessages), ""); err != nil {
		log.Fatalf("Fail to read embedded messages: %v", err)
	}
	if value, ok := os.LookupEnv("MESSAGES_FILE_PATH"); ok && value != "" {
		if err := Init(value); err != nil {
			log.Printf("Ignoring messages file: %v", err)
		}
	}
}

// Init overlays the messages found in filepath on the current catalog.
func Init(filepath string) error {
	return load(nil, filepath)
}

func load(content *bytes.Reader, filepath string) error {
	v := viper.New()
	v.SetConfigType("yml")

	var err error
	if content != nil {
		err = v.ReadConfig(content)
	} else {
		v.SetConfigFile(filepath)
		err = v.ReadInConfig()
	}
	if err != nil {
		return fmt.Errorf("fail to read messages: %w", err)
	}

	parsed := make(map[string]string)
	parseMessageMap("", v.AllSettings(), parsed)

	mu.Lock()
	defer mu.Unlock()
	if messages == nil {
		messages = make(map[string]string, len(parsed))
	}
	for key, value := range parsed {
		messages[key] = value
	}
	return nil
}

// parseMessageMap read recursively the yml archive
func parseMessageMap(prefix string, data map[string]interface{}, result map[string]string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]interface{}:
			parseMessageMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// GetMessage returns the catalog entry for key with {0}, {1}... replaced by args.
func GetMessage(key string, args ...interface{}) string {
	mu.RLock()
	message, exists := messages[key]
	mu.RUnlock()
	if !exists {
		return fmt.Sprintf("Message not found: %s", key)
	}

	for i, arg := range args {
		message = strings.ReplaceAll(message, fmt.Sprintf("{%d}", i), argToString(arg))
	}
	return message
}

func argToString(arg interface{}) string {
	if arg == nil {
		return ""
	}
	if err, ok := arg.(error); ok {
		return err.Error()
	}
	if isPrimitive(arg) {
		return primitiveToString(arg)
	}
	jsonBytes, err := json.Marshal(arg)
	if err != nil {
		return fmt.Sprintf("%v", arg)
	}
	return string(jsonBytes)
}

func isPrimitive(value interface{}) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.String:
		return true
	default:
		return false
	}
}

func primitiveToString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
