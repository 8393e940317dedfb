// Package config provides configuration loading, merging, and validation
// facilities for crmsync.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources fill only fields still unset):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// The main entry point is [GetConfig].
package config
