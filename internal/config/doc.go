// Package config loads and validates the server, task dispatch and audio
// processing settings from environment variables and optional YAML files.
// Components receive typed configuration structs instead of reading the
// environment directly.
package config
