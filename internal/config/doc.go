// Package config loads, merges and validates the MoviSimple configuration.
//
// Values come from several layers. For every field the first layer that
// sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c / -config)
//  4. Built-in defaults
//
// [GetStructuredConfig] returns the server view and [GetClientConfig] the
// terminal client view.
package config
