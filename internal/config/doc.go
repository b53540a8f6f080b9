// Package config provides configuration structures and utilities for revisor.
// It defines the batch options (report suffix, recognized extensions, worker
// count, style inheritance, output directory) and loads them from a YAML file.
package config
