// Package cli classifies command-line tokens and exposes them as a request.
package cli

import (
	"strings"

	"github.com/rs/zerolog"
)

// Kind identifies how a token was classified.
type Kind int

const (
	// KindCommand is a bare token without a leading hyphen.
	KindCommand Kind = iota
	// KindOption is a "--name=value" token.
	KindOption
	// KindFlag is a "-name" token.
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindOption:
		return "option"
	case KindFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Token records the classification of one input position.
type Token struct {
	Raw   string
	Kind  Kind
	Name  string // normalized name, or the trimmed command
	Value string // option value; empty for flags and commands
}

// Classification is the result of a single pass over invocation tokens.
type Classification struct {
	Command    string
	HasCommand bool
	Options    map[string]string
	Flags      []string
	Tokens     []Token
}

// Classify partitions tokens (argv without the program name) into a command,
// options and flags. Each token is classified on its own, left to right:
//
//   - "--name=value" is an option; the name is normalized.
//   - "-name" is a flag; the name is normalized.
//   - anything else is a command; the last one wins.
//
// An option without "=" keeps the historical split: its name is empty and
// its value is the text after "--" minus the first character, so
// "--verbose" stores "" -> "erbose". Repeated options overwrite.
func Classify(tokens []string) Classification {
	return classify(tokens, zerolog.Nop())
}

func classify(tokens []string, log zerolog.Logger) Classification {
	c := Classification{
		Options: make(map[string]string),
		Flags:   []string{},
		Tokens:  make([]Token, 0, len(tokens)),
	}

	for i, raw := range tokens {
		var tok Token
		switch {
		case strings.HasPrefix(raw, "--"):
			tok = extractOption(raw)
			c.Options[tok.Name] = tok.Value
		case strings.HasPrefix(raw, "-"):
			tok = extractFlag(raw)
			c.Flags = append(c.Flags, tok.Name)
		default:
			tok = extractCommand(raw)
			c.Command = tok.Name
			c.HasCommand = true
		}
		c.Tokens = append(c.Tokens, tok)

		log.Debug().
			Int("index", i).
			Str("raw", raw).
			Stringer("kind", tok.Kind).
			Str("name", tok.Name).
			Msg("classified token")
	}

	return c
}

func extractOption(raw string) Token {
	rest := raw[2:]

	var name, value string
	if eq := strings.IndexByte(rest, '='); eq >= 0 {
		name = rest[:eq]
		value = rest[eq+1:]
	} else if len(rest) > 0 {
		value = rest[1:]
	}

	return Token{Raw: raw, Kind: KindOption, Name: Normalize(name), Value: value}
}

func extractFlag(raw string) Token {
	return Token{Raw: raw, Kind: KindFlag, Name: Normalize(raw[1:])}
}

func extractCommand(raw string) Token {
	return Token{Raw: raw, Kind: KindCommand, Name: strings.TrimSpace(raw)}
}
