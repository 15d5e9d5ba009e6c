package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.PasswordMinLength < 1 {
		return fmt.Errorf("auth.password_min_length must be >= 1 (got %d)", c.Auth.PasswordMinLength)
	}

	if err := c.Blob.validate(); err != nil {
		return fmt.Errorf("blob: %w", err)
	}

	if c.Catalog.DefaultPageSize <= 0 || c.Catalog.MaxPageSize < c.Catalog.DefaultPageSize {
		return fmt.Errorf("catalog: need 0 < default_page_size <= max_page_size (got %d, %d)",
			c.Catalog.DefaultPageSize, c.Catalog.MaxPageSize)
	}

	if c.Limits.AuthPerMinute < 0 || c.Limits.SubmissionPerMinute < 0 {
		return fmt.Errorf("limits must be >= 0")
	}

	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka.topic is required when brokers are set")
	}

	return nil
}

func (b *BlobConfig) validate() error {
	if b.RootDir == "" {
		return fmt.Errorf("root_dir is required")
	}
	if err := checkPrefix("temp_prefix", b.TempPrefix); err != nil {
		return err
	}
	if err := checkPrefix("permanent_prefix", b.PermanentPrefix); err != nil {
		return err
	}
	if b.TempPrefix == b.PermanentPrefix {
		return fmt.Errorf("temp_prefix and permanent_prefix must differ")
	}
	if b.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", b.MaxUploadBytes)
	}
	return nil
}

func checkPrefix(name, prefix string) error {
	if prefix == "" || prefix == "." || prefix == ".." || strings.ContainsAny(prefix, `/\`) {
		return fmt.Errorf("%s must be a single directory name (got %q)", name, prefix)
	}
	return nil
}
