// Package config resolves passguard settings.
//
// Values are layered: built-in defaults, then the first YAML file found
// (.passguard in the working or home directory, or config.yaml in the XDG
// config directory), then PASSGUARD_* environment variables, optionally
// read from a .env file, and finally command line flags applied by the CLI.
package config
