// Package config provides configuration loading, merging, and validation
// facilities for the feed client and the stub feed server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetFeedServerConfig] for the stub feed server. Both fill defaults for
// fields no source has set.
package config
