// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, types, numeric bounds, string lengths, allowed
//              values and patterns. Defaults of missing keys are applied.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-09-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-09-16 v0.2.0: OneOf rule, deterministic error order, struct binding removed

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool        // Whether the field is required
	Type     string      // Expected type: "string", "int", "bool", "float", "[]string"
	Min      interface{} // Minimum value (numbers) or length (strings)
	Max      interface{} // Maximum value (numbers) or length (strings)
	Default  interface{} // Default value if not present
	OneOf    []string    // Allowed values, compared case-insensitively
	Pattern  string      // Regex pattern for string validation
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Error joins all validation errors into one message
func (r *ValidationResult) Error() string {
	return strings.Join(r.Errors, "; ")
}

// Validate validates the configuration against the provided rules. Rules are
// checked in key order so the error list is stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if envValue, ok := c.getEnvValue(key); ok {
		value = envValue
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		if rule.Default != nil {
			c.set(key, rule.Default)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if err := validateBounds(key, value, rule); err != nil {
		return err
	}

	if len(rule.OneOf) > 0 {
		s := fmt.Sprintf("%v", value)
		found := false
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(strings.TrimSpace(s), allowed) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("field '%s' value '%s' must be one of [%s]", key, s, strings.Join(rule.OneOf, ", "))
		}
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	return nil
}

func validateType(key string, value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}

	case "int":
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		case string:
			if _, ok := toInt64(v); !ok {
				return fmt.Errorf("field '%s' must be an integer, got '%s'", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %T", key, value)
		}

	case "float":
		switch value.(type) {
		case float64, int, int64:
		default:
			return fmt.Errorf("field '%s' must be a float, got %T", key, value)
		}

	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if l := strings.ToLower(v); l != "true" && l != "false" {
				return fmt.Errorf("field '%s' must be a boolean, got '%s'", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}

	case "[]string":
		switch value.(type) {
		case []string, []interface{}:
		default:
			return fmt.Errorf("field '%s' must be a slice of strings, got %T", key, value)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}

	return nil
}

func validateBounds(key string, value interface{}, rule ValidationRule) error {
	if rule.Min == nil && rule.Max == nil {
		return nil
	}

	if s, ok := value.(string); ok {
		if n, isNum := toInt64(s); isNum {
			value = n
		} else {
			if minLen, ok := rule.Min.(int); ok && len(s) < minLen {
				return fmt.Errorf("field '%s' length %d is less than minimum %d", key, len(s), minLen)
			}
			if maxLen, ok := rule.Max.(int); ok && len(s) > maxLen {
				return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, len(s), maxLen)
			}
			return nil
		}
	}

	v, ok := toFloat64(value)
	if !ok {
		return nil
	}
	if min, ok := toFloat64(rule.Min); ok && v < min {
		return fmt.Errorf("field '%s' value %v is less than minimum %v", key, value, rule.Min)
	}
	if max, ok := toFloat64(rule.Max); ok && v > max {
		return fmt.Errorf("field '%s' value %v is greater than maximum %v", key, value, rule.Max)
	}
	return nil
}

func validatePattern(key string, value interface{}, pattern string) error {
	strValue, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' pattern validation requires string value", key)
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
	}

	if !regex.MatchString(strValue) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, strValue, pattern)
	}

	return nil
}

func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

func toInt64(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil
}
