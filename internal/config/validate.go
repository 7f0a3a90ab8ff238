package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/net/idna"
)

// Validate checks the configuration and normalizes the base domain to
// lower-case ASCII. Malformed URL scheme settings are startup errors.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.By(validatePort)),
		validation.Field(&c.HomeURL, validation.Required, validation.By(validateAbsoluteURL)),
		validation.Field(&c.PluginURL, validation.By(validateAbsoluteURL)),
		validation.Field(&c.BaseDomain, validation.By(validateBaseDomain)),
		validation.Field(&c.LogMaxFiles, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.BaseDomain != "" {
		c.BaseDomain, _ = NormalizeBaseDomain(c.BaseDomain)
	}
	return nil
}

// NormalizeBaseDomain converts a ".example.com" style suffix to its
// lower-case ASCII (punycode) form.
func NormalizeBaseDomain(baseDomain string) (string, error) {
	rest, ok := strings.CutPrefix(baseDomain, ".")
	if !ok {
		return "", errors.New("must start with '.'")
	}
	ascii, err := idna.Lookup.ToASCII(rest)
	if err != nil {
		return "", fmt.Errorf("not a valid domain: %w", err)
	}
	return "." + ascii, nil
}

func validateBaseDomain(value interface{}) error {
	baseDomain, _ := value.(string)
	if baseDomain == "" {
		return nil
	}
	_, err := NormalizeBaseDomain(baseDomain)
	return err
}

func validateAbsoluteURL(value interface{}) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return errors.New("must be an absolute URL")
	}
	return nil
}

func validatePort(value interface{}) error {
	port, _ := value.(string)
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return errors.New("must be a number between 1 and 65535")
	}
	return nil
}
