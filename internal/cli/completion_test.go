package cli

import (
	"strings"
	"testing"
)

var testPolicies = []string{"zero", "half-unit"}

func TestGenerateCompletion(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"_errcalc_completions", "complete -F", "--policy", "zero half-unit"}},
		{"zsh", []string{"#compdef errcalc", "_arguments", "($policies)"}},
		{"fish", []string{"complete -c errcalc", "-l policy", "zero half-unit"}},
		{"powershell", []string{"Register-ArgumentCompleter", "'zero', 'half-unit'", "--policy"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			var buf strings.Builder
			if err := GenerateCompletion(&buf, tt.shell, testPolicies); err != nil {
				t.Fatalf("GenerateCompletion(%s) returned error: %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	var buf strings.Builder
	err := GenerateCompletion(&buf, "csh", testPolicies)
	if err == nil {
		t.Fatal("GenerateCompletion(csh) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("error = %v, want unsupported shell message", err)
	}
}

func TestFlagRegistry_EveryFlagHasHelp(t *testing.T) {
	for _, f := range flagRegistry {
		if f.Long == "" && f.Short == "" {
			t.Error("registry entry with neither long nor short name")
		}
		if f.Help == "" {
			t.Errorf("flag %q/%q missing help text", f.Long, f.Short)
		}
	}
}
