// Package config provides configuration loading, merging, and validation
// facilities for the device synchronization client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later sources fill unset fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry point is [GetClientConfig].
package config
