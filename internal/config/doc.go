// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. Sources are merged in
// the order below and the first source that sets a field wins:
//  1. Environment variables (a .env file, when present, is loaded into the
//     environment first without overriding variables that are already set)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the API server and
// [GetClientConfig] for the command-line client.
package config
