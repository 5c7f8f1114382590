// Package config provides functionality for loading and validating the CLI configuration.
//
// Settings start from defaults, are merged with an optional YAML file and are finally
// overridden by environment variables before validation.
package config
