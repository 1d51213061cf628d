package helpers

import (
	"fmt"
	"os"
	"strconv"
)

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LookupEnvInt returns the integer value of key and whether it was set.
func LookupEnvInt(key string) (int, bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return 0, false, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return parsed, true, nil
}

// LookupEnvBool returns the boolean value of key and whether it was set.
func LookupEnvBool(key string) (bool, bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return false, false, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, false, fmt.Errorf("%s: %q is not a boolean", key, value)
	}
	return parsed, true, nil
}
