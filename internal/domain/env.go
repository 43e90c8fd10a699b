package domain

import (
	"sort"
	"strings"
)

// Environment is a read-only snapshot of process environment variables.
// It is captured once at startup and handed to every component, so nothing
// below the CLI layer reads os.Getenv directly.
type Environment struct {
	vars map[string]string
}

// NewEnvironment builds a snapshot from KEY=VALUE pairs as returned by os.Environ.
func NewEnvironment(pairs []string) Environment {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return Environment{vars: vars}
}

// EnvironmentFromMap builds a snapshot from a map. The map is copied.
func EnvironmentFromMap(m map[string]string) Environment {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return Environment{vars: vars}
}

// Get returns the value of key, or "" when unset.
func (e Environment) Get(key string) string {
	return e.vars[key]
}

// Lookup reports the value of key and whether it is set to a non-empty value.
// An empty variable is treated the same as an unset one.
func (e Environment) Lookup(key string) (string, bool) {
	value := e.vars[key]
	return value, value != ""
}

// GetOr returns the value of key, or fallback when key is unset or empty.
func (e Environment) GetOr(key, fallback string) string {
	if value, ok := e.Lookup(key); ok {
		return value
	}
	return fallback
}

// With returns a copy of the snapshot with key set to value.
func (e Environment) With(key, value string) Environment {
	next := EnvironmentFromMap(e.vars)
	next.vars[key] = value
	return next
}

// Pairs returns the snapshot as sorted KEY=VALUE pairs, suitable for exec.Cmd.Env.
func (e Environment) Pairs() []string {
	pairs := make([]string, 0, len(e.vars))
	for k, v := range e.vars {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return pairs
}
