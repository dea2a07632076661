package config

import "os"

// EnvOr returns the value of the environment variable key, or fallback
// when it is unset or empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
