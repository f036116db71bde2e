// Package environ provides an immutable snapshot of the process invocation
// environment.
//
// A Snapshot holds two things captured once at startup:
//   - the environment variables, as a key/value map
//   - argv, including the program name at index 0
//
// It never reads the live process environment after construction, so a
// Snapshot can be built by hand in tests or loaded from a replay file and
// behaves exactly like one captured from the running process.
//
// Well-known fields:
//
//	LANG                language
//	PWD                 base directory
//	PATH                search path
//	USER                current user
//	LOGNAME             log name
//	_                   interpreter location (set by the shell)
//	SELF                path of the running program
//	SCRIPT_NAME         program name as invoked
//	SCRIPT_FILENAME     resolved program file
//	REQUEST_TIME_FLOAT  start time in fractional Unix seconds
//
// A missing key is never an error: every accessor returns the zero value
// and false.
//
// Example usage:
//
//	snap := environ.Capture()
//	if lang, ok := snap.Language(); ok {
//	    fmt.Println("running with", lang)
//	}
//
//	// Replay a recorded invocation
//	snap, err := environ.LoadFile("invocation-1a2b3c4d.toml")
package environ
