// Package config handles configuration management for unitconv.
// It layers the embedded defaults, an optional TOML file and UNITCONV_*
// environment variables, later sources overriding earlier ones.
package config
