// Package config provides configuration loading, merging, and validation
// facilities for the auth client and the auth server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, after an optional .env file is loaded
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the auth server.
package config
