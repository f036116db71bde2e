// Package cli provides the command-line request abstraction for clirequest.
//
// This package takes the argv of an environ.Snapshot, drops the program
// name and classifies every remaining token into exactly one of:
//   - option: --name=value (name normalized to camelCase)
//   - flag:   -name (name normalized the same way)
//   - command: any token without a leading hyphen; the last one wins
//
// Classification happens once, in New. A Request never changes after that,
// so it is safe to share between goroutines.
//
// Quirk kept on purpose: an option without "=" is stored under the empty
// name, with the text after "--" minus its first character as the value.
// "--verbose" therefore yields Option("") == "erbose". Callers that want a
// boolean switch should use a flag (-verbose) instead.
//
// Example usage:
//
//	req := cli.New(environ.Capture())
//
//	if cmd, ok := req.Command(); ok {
//	    dispatch(cmd)
//	}
//	if env, ok := req.Option("env"); ok {
//	    fmt.Println("deploying to", env)
//	}
//	if req.HasFlag("v") {
//	    verbose = true
//	}
package cli
