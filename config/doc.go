// Package config loads pinelog settings files.
//
// A settings file is TOML with three keys:
//
//	min_level = "WARN"          # required: INFO, WARN or ERROR
//	file_path = "/var/log/app"  # optional: append destination
//	timestamp = "TIME"          # optional: DATE, TIME or FULL
//
// Environment variables PINELOG_MIN_LEVEL, PINELOG_FILE_PATH and
// PINELOG_TIMESTAMP override the values read from the file. Load returns
// a Record, the immutable value the logger package is built from.
package config
