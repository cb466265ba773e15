// Package config defines configuration for the fetch pipeline.
//
// The interactive binary runs on built-in defaults; its only input is the
// URL read from standard input. Programmatic callers can load settings from
// a YAML file instead.
//
// # Structure
//
//	type Config struct {
//	    Directory string
//	    Timeout   time.Duration
//	    ChunkSize int64
//	}
//
// # YAML format
//
//	directory: Fetched_Images
//	timeout: 30s
//	chunk_size: 8KB
package config
