// Package config reads service settings from environment variables
//
// Must* accessors panic through the logger when a key is missing or malformed;
// May* accessors fall back to a default and warn on malformed input.
package config

import (
	"strconv"
	"strings"
	"time"

	"langdetect/internal/platform/config/raw"
	"langdetect/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "API_", "PG_")
type Conf struct{ raw raw.Conf }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{raw: raw.New()} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("API_")
func (c Conf) Prefix(p string) Conf { return Conf{raw: c.raw.Prefix(p)} }

func (c Conf) key(k string) string { return c.raw.Key(k) }

func (c Conf) lookup(k string) string { return c.raw.Get(k, "") }

// must parses a required key
func must[T any](c Conf, key, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid " + kind + " value")
	}
	return v
}

// may parses an optional key, warning and falling back on bad input
func may[T any](c Conf, key string, def T, kind string, parse func(string) (T, error)) T {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Msg("invalid " + kind + "; using default")
		return def
	}
	return v
}

func parseString(s string) (string, error) { return s, nil }

func parsePort(s string) (string, error) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return "", strconv.ErrRange
	}
	return ":" + s, nil
}

func parseUint64(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string { return must(c, key, "string", parseString) }

// MustInt panics if the given key is missing or not an int
func (c Conf) MustInt(key string) int { return must(c, key, "int", strconv.Atoi) }

// MustDuration panics if the given key is missing or not a duration
func (c Conf) MustDuration(key string) time.Duration {
	return must(c, key, "duration", time.ParseDuration)
}

// MustPort returns a net/http addr like ":4000" after validating 1..65535
func (c Conf) MustPort(key string) string { return must(c, key, "port", parsePort) }

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string { return may(c, key, def, "string", parseString) }

// MayInt returns the value or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, "int", strconv.Atoi) }

// MayFloat64 returns the value or def
func (c Conf) MayFloat64(key string, def float64) float64 {
	return may(c, key, def, "float64", parseFloat)
}

// MayBool returns the value or def
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, "bool", strconv.ParseBool) }

// MayDuration returns the value or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, "duration", time.ParseDuration)
}

// MayPort returns a net/http addr for key or def
func (c Conf) MayPort(key, def string) string { return may(c, key, def, "port", parsePort) }

// MaySeed returns a pointer to the parsed key, or nil when unset or malformed
func (c Conf) MaySeed(key string) *uint64 {
	s := c.lookup(key)
	if s == "" {
		return nil
	}
	v, err := parseUint64(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Msg("invalid seed; using entropy")
		return nil
	}
	return &v
}

// MayCSV returns a slice of strings from a comma-separated env var; def if missing/empty
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum ensures value is one of allowed; returns def if empty; panics if invalid
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
