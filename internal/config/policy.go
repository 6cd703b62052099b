package config

import (
	"fmt"
	"os"

	"literaryhub/internal/core/domain"

	"gopkg.in/yaml.v3"
)

// LoadPolicy reads borrow rules from a YAML file; missing keys keep their
// defaults and an empty path returns the defaults
func LoadPolicy(path string) (domain.BorrowPolicy, error) {
	if path == "" {
		return domain.DefaultPolicy(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.BorrowPolicy{}, fmt.Errorf("failed to read policy file: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy decodes a YAML policy document
func ParsePolicy(data []byte) (domain.BorrowPolicy, error) {
	var policy domain.BorrowPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return domain.BorrowPolicy{}, fmt.Errorf("failed to parse policy file: %w", err)
	}
	if policy.DefaultDailyLimit < 0 || policy.LoanDays < 0 || policy.WeeklyCap < 0 || policy.LateFeePerDay < 0 {
		return domain.BorrowPolicy{}, fmt.Errorf("policy values must not be negative")
	}
	return policy.WithDefaults(), nil
}
