// Package config manages user-level settings stored at ~/.fieldstrip/config.yaml
// and FIELDSTRIP_* environment variables. Only ambient settings live here,
// such as the log level; the rewrite itself takes nothing but a directory.
package config
