package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if c.Todo.PurgeRetentionDays < 1 {
		return fmt.Errorf("todo.purge_retention_days must be >= 1 (got %d)", c.Todo.PurgeRetentionDays)
	}
	if c.Note.MaxRevisions < 1 {
		return fmt.Errorf("note.max_revisions must be >= 1 (got %d)", c.Note.MaxRevisions)
	}
	if c.Comment.EditWindow <= 0 {
		return fmt.Errorf("comment.edit_window must be > 0 (got %s)", c.Comment.EditWindow)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be >= 1 when the limiter is enabled (got %d)", c.RateLimit.Burst)
	}
	return nil
}

func (p *PaginationConfig) validate() error {
	if p.MaxPerPage < 1 {
		return fmt.Errorf("max_per_page must be >= 1 (got %d)", p.MaxPerPage)
	}
	if p.DefaultPerPage < 1 || p.DefaultPerPage > p.MaxPerPage {
		return fmt.Errorf("default_per_page must be in 1..%d (got %d)", p.MaxPerPage, p.DefaultPerPage)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
