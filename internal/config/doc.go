// Package config loads QuickCache settings from defaults, an optional YAML
// file and QUICKCACHE_ environment variables, then validates them. Storage
// settings that only one driver needs are validated only for that driver.
package config
