// Package config handles configuration loading for hitpie.
//
// Settings come from HITPIE_* environment variables and act as defaults
// for the matching command-line flags. There is no configuration file.
package config
