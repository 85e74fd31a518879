// Package config provides configuration loading, merging, and validation
// facilities for the pathforge server and terminal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source keeps a field it already set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left unset by every source fall back to the documented defaults
// before validation. The main entry points are [GetStructuredConfig] for the
// server and [GetClientConfig] for the client-specific view.
package config
