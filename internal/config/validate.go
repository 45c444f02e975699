package config

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Validate checks that the configuration is sufficient for the given mode.
// Modes: "analysis" (CLI tools and mcp), "serve".
func (c *Config) Validate(mode string) error {
	var problems []string

	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	switch mode {
	case "analysis":
		check(c.Kakao.Key != "", "kakao.key is required")
	case "serve":
		check(c.Kakao.Key != "", "kakao.key is required")
		check(c.Server.Port > 0, "server.port must be > 0")
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	check(c.Kakao.TimeoutSecs > 0, "kakao.timeout_secs must be > 0")
	check(c.Semas.TimeoutSecs > 0, "semas.timeout_secs must be > 0")
	check(c.Bizinfo.TimeoutSecs > 0, "bizinfo.timeout_secs must be > 0")
	check(c.Kakao.RateLimit > 0, "kakao.rate_limit must be > 0")
	check(c.Cache.MaxEntries > 0, "cache.max_entries must be > 0")

	if len(problems) > 0 {
		return eris.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
