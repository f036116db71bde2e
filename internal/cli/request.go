package cli

import (
	"slices"

	"github.com/rs/zerolog"

	"github.com/rickgorman/clirequest/internal/environ"
)

// Request is the classified view of one program invocation. It is built
// once from an environment snapshot and never changes afterwards.
type Request struct {
	env        environ.Snapshot
	args       []string
	command    string
	hasCommand bool
	options    map[string]string
	flags      []string
	tokens     []Token
}

// Option configures New.
type Option func(*settings)

type settings struct {
	log zerolog.Logger
}

// WithLogger logs every token classification at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// New classifies the snapshot's argv, program name excluded.
func New(env environ.Snapshot, opts ...Option) *Request {
	s := settings{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}

	args := env.Args()
	if len(args) > 0 {
		args = args[1:]
	}
	if args == nil {
		args = []string{}
	}

	c := classify(args, s.log)
	return &Request{
		env:        env,
		args:       args,
		command:    c.Command,
		hasCommand: c.HasCommand,
		options:    c.Options,
		flags:      c.Flags,
		tokens:     c.Tokens,
	}
}

// Command returns the last bare token of the invocation.
func (r *Request) Command() (string, bool) {
	return r.command, r.hasCommand
}

// PrimaryCommand returns the command the invocation runs. Only one command
// is ever recorded, so this is the same token Command reports.
func (r *Request) PrimaryCommand() (string, bool) {
	return r.Command()
}

// HasFlag reports whether the normalized flag name was passed.
func (r *Request) HasFlag(name string) bool {
	return slices.Contains(r.flags, name)
}

// Flags returns the normalized flags in the order given, duplicates kept.
func (r *Request) Flags() []string {
	return slices.Clone(r.flags)
}

// HasOption reports whether the normalized option name was passed.
func (r *Request) HasOption(name string) bool {
	_, ok := r.options[name]
	return ok
}

// Option returns the value of an option. The value may be empty even when
// the option is present.
func (r *Request) Option(name string) (string, bool) {
	v, ok := r.options[name]
	return v, ok
}

// Options returns a copy of every option keyed by normalized name.
func (r *Request) Options() map[string]string {
	out := make(map[string]string, len(r.options))
	for k, v := range r.options {
		out[k] = v
	}
	return out
}

// Tokens returns the per-position classification of the raw arguments.
func (r *Request) Tokens() []Token {
	return slices.Clone(r.tokens)
}

// RawArguments returns argv without the program name.
func (r *Request) RawArguments() []string {
	return slices.Clone(r.args)
}

// ArgumentCount returns argc minus the program name, never below zero.
func (r *Request) ArgumentCount() int {
	n := r.env.Argc() - 1
	if n < 0 {
		return 0
	}
	return n
}

// Environment returns the snapshot the request was built from.
func (r *Request) Environment() environ.Snapshot {
	return r.env
}

// Raw returns a copy of every environment variable.
func (r *Request) Raw() map[string]string {
	return r.env.Vars()
}

func (r *Request) Language() (string, bool)            { return r.env.Language() }
func (r *Request) BaseDirectory() (string, bool)       { return r.env.BaseDirectory() }
func (r *Request) Path() (string, bool)                { return r.env.Path() }
func (r *Request) User() (string, bool)                { return r.env.User() }
func (r *Request) LogName() (string, bool)             { return r.env.LogName() }
func (r *Request) InterpreterLocation() (string, bool) { return r.env.InterpreterLocation() }
func (r *Request) SelfPath() (string, bool)            { return r.env.SelfPath() }
func (r *Request) ScriptName() (string, bool)          { return r.env.ScriptName() }
func (r *Request) ScriptFileName() (string, bool)      { return r.env.ScriptFileName() }
func (r *Request) RequestTimeFloat() (float64, bool)   { return r.env.RequestTimeFloat() }
func (r *Request) RequestTime() (int64, bool)          { return r.env.RequestTime() }
