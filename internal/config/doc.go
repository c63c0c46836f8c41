// Package config loads glimpse's YAML configuration from the project
// root and the user's global config directory, and renders the
// init-config starter template.
package config
