package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rickgorman/clirequest/internal/cli"
	"github.com/rickgorman/clirequest/internal/environ"
	"github.com/rickgorman/clirequest/internal/logging"
	"github.com/rickgorman/clirequest/internal/ui"
	"github.com/rickgorman/clirequest/pkg/hash"
)

func main() {
	if err := run(os.Stderr, environ.Capture()); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}
}

// run classifies the live invocation and prints it. Two options of the live
// invocation steer the host itself:
//
//	--save=<dir>     record the live invocation as a replay file in dir
//	--replay=<file>  print a recorded invocation instead of the live one
//
// The -json flag switches log output to JSON.
func run(out io.Writer, live environ.Snapshot) error {
	ui.Out = out

	cfg := logging.FromSnapshot(live)
	cfg.Out = out
	if cli.New(live).HasFlag("json") {
		cfg.JSON = true
	}
	log := logging.New("clirequest", cfg)

	req := cli.New(live, cli.WithLogger(log))

	if dir, ok := req.Option("save"); ok {
		path := filepath.Join(dir, hash.ReplayFileName(live.Args()))
		if err := live.WriteFile(path); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("recorded invocation")
		ui.Success("Recorded invocation to %s", path)
	}

	if path, ok := req.Option("replay"); ok {
		snap, err := environ.LoadFile(path)
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Int("args", snap.Argc()).Msg("replaying invocation")
		ui.Info("Replaying invocation from %s", path)
		req = cli.New(snap, cli.WithLogger(log))
	}

	warnUnnamedOptions(req)

	printRequest(req)
	return nil
}

func printRequest(req *cli.Request) {
	ui.Header()

	ui.Section("classification")
	cmd, ok := req.Command()
	ui.Field("command", cmd, ok)
	primary, ok := req.PrimaryCommand()
	ui.Field("primary command", primary, ok)
	opts := req.Options()
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ui.Field("--"+name, opts[name], true)
	}
	ui.List("flags", req.Flags())
	for i, tok := range req.Tokens() {
		ui.Field(fmt.Sprintf("[%d] %s", i, tok.Kind), tok.Raw, true)
	}
	ui.List("raw arguments", req.RawArguments())
	ui.Field("argument count", strconv.Itoa(req.ArgumentCount()), true)

	ui.Section("environment")
	printField("language", req.Language)
	printField("base directory", req.BaseDirectory)
	printField("path", req.Path)
	printField("user", req.User)
	printField("log name", req.LogName)
	printField("interpreter", req.InterpreterLocation)
	printField("self", req.SelfPath)
	printField("script name", req.ScriptName)
	printField("script file name", req.ScriptFileName)
	if f, ok := req.RequestTimeFloat(); ok {
		ui.Field("request time float", fmt.Sprintf("%.4f", f), true)
	} else {
		ui.Field("request time float", "", false)
	}
	t, ok := req.RequestTime()
	ui.Field("request time", strconv.FormatInt(t, 10), ok)

	ui.Footer()
}

// warnUnnamedOptions points out options given without "=", which are stored
// under the empty name.
func warnUnnamedOptions(req *cli.Request) {
	for _, tok := range req.Tokens() {
		if tok.Kind == cli.KindOption && !strings.Contains(tok.Raw, "=") {
			ui.Warn("Option %s has no \"=\"; stored under the empty name with value %q", tok.Raw, tok.Value)
		}
	}
}

func printField(key string, get func() (string, bool)) {
	value, ok := get()
	ui.Field(key, value, ok)
}
