package environ

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestAccessors(t *testing.T) {
	snap := New(map[string]string{
		"LANG":               "en_US.UTF-8",
		"PWD":                "/home/dev/project",
		"PATH":               "/usr/bin:/bin",
		"USER":               "dev",
		"LOGNAME":            "devlog",
		"_":                  "/usr/bin/env",
		"SELF":               "./tool",
		"SCRIPT_NAME":        "tool",
		"SCRIPT_FILENAME":    "/opt/tool/tool",
		"REQUEST_TIME_FLOAT": "1700000000.75",
	}, []string{"./tool", "build"})

	tests := []struct {
		name string
		get  func() (string, bool)
		want string
	}{
		{"language", snap.Language, "en_US.UTF-8"},
		{"base directory", snap.BaseDirectory, "/home/dev/project"},
		{"path", snap.Path, "/usr/bin:/bin"},
		{"user", snap.User, "dev"},
		{"log name", snap.LogName, "devlog"},
		{"interpreter", snap.InterpreterLocation, "/usr/bin/env"},
		{"self", snap.SelfPath, "./tool"},
		{"script name", snap.ScriptName, "tool"},
		{"script file name", snap.ScriptFileName, "/opt/tool/tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.get()
			if !ok {
				t.Fatalf("%s: expected value, got absent", tt.name)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	f, ok := snap.RequestTimeFloat()
	if !ok || f != 1700000000.75 {
		t.Errorf("RequestTimeFloat() = %v, %v, want 1700000000.75, true", f, ok)
	}
	i, ok := snap.RequestTime()
	if !ok || i != 1700000000 {
		t.Errorf("RequestTime() = %v, %v, want 1700000000, true", i, ok)
	}
}

func TestMissingKeysAreAbsent(t *testing.T) {
	var snap Snapshot

	if v, ok := snap.User(); ok || v != "" {
		t.Errorf("User() = %q, %v, want absent", v, ok)
	}
	if v, ok := snap.Lookup("ANYTHING"); ok || v != "" {
		t.Errorf("Lookup() = %q, %v, want absent", v, ok)
	}
	if _, ok := snap.RequestTimeFloat(); ok {
		t.Error("RequestTimeFloat() should be absent on empty snapshot")
	}
	if _, ok := snap.RequestTime(); ok {
		t.Error("RequestTime() should be absent on empty snapshot")
	}
	if snap.Argc() != 0 {
		t.Errorf("Argc() = %d, want 0", snap.Argc())
	}
	if len(snap.Args()) != 0 {
		t.Errorf("Args() = %v, want empty", snap.Args())
	}
}

func TestRequestTimeUnparseable(t *testing.T) {
	tests := []string{"yesterday", "", "NaN", "nan", "Inf", "+Inf", "-Inf", "1e300", "-1e300", "9.3e18"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			snap := New(map[string]string{KeyRequestTimeFloat: raw}, nil)
			if f, ok := snap.RequestTimeFloat(); ok {
				t.Errorf("RequestTimeFloat() = %v, want absent for %q", f, raw)
			}
			if i, ok := snap.RequestTime(); ok {
				t.Errorf("RequestTime() = %v, want absent for %q", i, raw)
			}
		})
	}
}

func TestRequestTimeBounds(t *testing.T) {
	snap := New(map[string]string{KeyRequestTimeFloat: "-12.75"}, nil)
	if f, ok := snap.RequestTimeFloat(); !ok || f != -12.75 {
		t.Errorf("RequestTimeFloat() = %v, %v, want -12.75, true", f, ok)
	}
	if i, ok := snap.RequestTime(); !ok || i != -12 {
		t.Errorf("RequestTime() = %v, %v, want -12, true", i, ok)
	}
}

func TestNewCopiesInputs(t *testing.T) {
	vars := map[string]string{"USER": "dev"}
	argv := []string{"tool", "build"}
	snap := New(vars, argv)

	vars["USER"] = "root"
	argv[1] = "deploy"

	if got, _ := snap.User(); got != "dev" {
		t.Errorf("User() = %q after caller mutation, want %q", got, "dev")
	}
	if diff := cmp.Diff([]string{"tool", "build"}, snap.Args()); diff != "" {
		t.Errorf("Args() mismatch (-want +got):\n%s", diff)
	}

	out := snap.Args()
	out[0] = "changed"
	vs := snap.Vars()
	vs["USER"] = "changed"
	if snap.Args()[0] != "tool" {
		t.Error("Args() returned a shared slice")
	}
	if got, _ := snap.User(); got != "dev" {
		t.Error("Vars() returned a shared map")
	}
}

func TestCapture(t *testing.T) {
	now := time.Unix(1700000000, 500000000)

	t.Run("derives program and timing fields", func(t *testing.T) {
		snap := capture([]string{"USER=dev", "EMPTY=", "broken", "=novalue"}, []string{"./tool", "run"}, now)

		if got, _ := snap.User(); got != "dev" {
			t.Errorf("User() = %q, want dev", got)
		}
		if got, ok := snap.Lookup("EMPTY"); !ok || got != "" {
			t.Errorf("Lookup(EMPTY) = %q, %v, want empty present", got, ok)
		}
		if _, ok := snap.Lookup("broken"); ok {
			t.Error("entry without '=' should be skipped")
		}
		if got, _ := snap.SelfPath(); got != "./tool" {
			t.Errorf("SelfPath() = %q, want ./tool", got)
		}
		if got, _ := snap.ScriptName(); got != "./tool" {
			t.Errorf("ScriptName() = %q, want ./tool", got)
		}
		if got, ok := snap.ScriptFileName(); !ok || got == "" {
			t.Errorf("ScriptFileName() = %q, %v, want a resolved path", got, ok)
		}
		if got, _ := snap.RequestTimeFloat(); got != 1700000000.5 {
			t.Errorf("RequestTimeFloat() = %v, want 1700000000.5", got)
		}
		if snap.Argc() != 2 {
			t.Errorf("Argc() = %d, want 2", snap.Argc())
		}
	})

	t.Run("host values win", func(t *testing.T) {
		snap := capture([]string{"SCRIPT_NAME=custom", "REQUEST_TIME_FLOAT=12.5"}, []string{"./tool"}, now)

		if got, _ := snap.ScriptName(); got != "custom" {
			t.Errorf("ScriptName() = %q, want custom", got)
		}
		if got, _ := snap.RequestTime(); got != 12 {
			t.Errorf("RequestTime() = %d, want 12", got)
		}
	})

	t.Run("no argv", func(t *testing.T) {
		snap := capture(nil, nil, now)
		if _, ok := snap.SelfPath(); ok {
			t.Error("SelfPath() should be absent without argv")
		}
	})
}
