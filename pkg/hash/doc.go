// Package hash provides short fingerprints for recorded invocations.
//
// A replay file captures one invocation (argv plus environment) so that it
// can be classified again later. Files are named after the first 8
// characters of MD5 over the NUL-joined argv, so recording the same
// command line twice overwrites the earlier file instead of piling up
// duplicates.
//
// Example usage:
//
//	name := hash.ReplayFileName(snap.Args())
//	// Returns: "invocation-a1b2c3d4.toml"
package hash
