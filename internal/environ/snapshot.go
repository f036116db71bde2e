// Package environ provides an immutable snapshot of the invocation environment.
package environ

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Keys read by the named accessors.
const (
	KeyLanguage         = "LANG"
	KeyBaseDirectory    = "PWD"
	KeyPath             = "PATH"
	KeyUser             = "USER"
	KeyLogName          = "LOGNAME"
	KeyInterpreter      = "_"
	KeySelf             = "SELF"
	KeyScriptName       = "SCRIPT_NAME"
	KeyScriptFileName   = "SCRIPT_FILENAME"
	KeyRequestTimeFloat = "REQUEST_TIME_FLOAT"
)

// Snapshot is a read-only view of environment variables and argv.
// The zero value is an empty snapshot.
type Snapshot struct {
	vars map[string]string
	argv []string
}

// New builds a snapshot from explicit values. Both inputs are copied.
func New(vars map[string]string, argv []string) Snapshot {
	s := Snapshot{
		vars: make(map[string]string, len(vars)),
		argv: append([]string(nil), argv...),
	}
	for k, v := range vars {
		s.vars[k] = v
	}
	return s
}

// Capture snapshots the running process: os.Environ, os.Args and the
// current time. Values already present in the environment win over the
// derived program and timing fields.
func Capture() Snapshot {
	return capture(os.Environ(), os.Args, time.Now())
}

func capture(env, argv []string, now time.Time) Snapshot {
	vars := make(map[string]string, len(env)+4)
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}

	if len(argv) > 0 {
		setDefault(vars, KeySelf, argv[0])
		setDefault(vars, KeyScriptName, argv[0])
		setDefault(vars, KeyScriptFileName, resolveProgram(argv[0]))
	}
	setDefault(vars, KeyRequestTimeFloat, formatUnix(now))

	return Snapshot{vars: vars, argv: append([]string(nil), argv...)}
}

func setDefault(vars map[string]string, key, value string) {
	if _, ok := vars[key]; !ok {
		vars[key] = value
	}
}

// resolveProgram prefers the executable path reported by the OS and falls
// back to an absolute form of argv[0].
func resolveProgram(arg0 string) string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	if abs, err := filepath.Abs(arg0); err == nil {
		return abs
	}
	return arg0
}

func formatUnix(t time.Time) string {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
	return strconv.FormatFloat(secs, 'f', 4, 64)
}

// Lookup returns the raw value stored under key.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Vars returns a copy of every environment variable in the snapshot.
func (s Snapshot) Vars() map[string]string {
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Args returns a copy of argv, program name included.
func (s Snapshot) Args() []string {
	return append([]string(nil), s.argv...)
}

// Argc returns the length of argv, program name included.
func (s Snapshot) Argc() int {
	return len(s.argv)
}

// Language returns LANG.
func (s Snapshot) Language() (string, bool) { return s.Lookup(KeyLanguage) }

// BaseDirectory returns PWD, the directory the program was started from.
func (s Snapshot) BaseDirectory() (string, bool) { return s.Lookup(KeyBaseDirectory) }

// Path returns the PATH search list.
func (s Snapshot) Path() (string, bool) { return s.Lookup(KeyPath) }

// User returns USER.
func (s Snapshot) User() (string, bool) { return s.Lookup(KeyUser) }

// LogName returns LOGNAME.
func (s Snapshot) LogName() (string, bool) { return s.Lookup(KeyLogName) }

// InterpreterLocation returns "_", which most shells set to the path of
// the binary that was executed.
func (s Snapshot) InterpreterLocation() (string, bool) { return s.Lookup(KeyInterpreter) }

// SelfPath returns the path of the running program.
func (s Snapshot) SelfPath() (string, bool) { return s.Lookup(KeySelf) }

// ScriptName returns the program name as invoked.
func (s Snapshot) ScriptName() (string, bool) { return s.Lookup(KeyScriptName) }

// ScriptFileName returns the resolved program file.
func (s Snapshot) ScriptFileName() (string, bool) { return s.Lookup(KeyScriptFileName) }

// RequestTimeFloat returns the start time in fractional Unix seconds.
// A value that does not parse as a float, is not finite, or does not fit in
// int64 seconds is reported as absent.
func (s Snapshot) RequestTimeFloat() (float64, bool) {
	raw, ok := s.Lookup(KeyRequestTimeFloat)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return f, true
}

// RequestTime returns the start time as whole Unix seconds. It reads the
// same field as RequestTimeFloat.
func (s Snapshot) RequestTime() (int64, bool) {
	f, ok := s.RequestTimeFloat()
	if !ok {
		return 0, false
	}
	return int64(f), true
}
