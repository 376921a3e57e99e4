// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable interpolation.
// All fields are optional; unset fields fall back to the defaults in defaults.go,
// and a run without a config file uses Default().
package config
