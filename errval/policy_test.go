package errval

import (
	"errors"
	"testing"
)

// TestSetPolicy tests the policy setter truth table: Zero and HalfUnit are
// accepted unconditionally, Custom requires a function, and any other mode
// is invalid configuration.
func TestSetPolicy(t *testing.T) {
	customFn := func(x float64) float64 { return 0.01 }

	tests := []struct {
		name     string
		mode     PolicyMode
		fn       ErrorFunc[float64]
		wantErr  bool
		wantMode PolicyMode
	}{
		{"zero accepted", PolicyZero, nil, false, PolicyZero},
		{"zero ignores fn", PolicyZero, customFn, false, PolicyZero},
		{"half-unit accepted", PolicyHalfUnit, nil, false, PolicyHalfUnit},
		{"custom with fn accepted", PolicyCustom, customFn, false, PolicyCustom},
		{"custom without fn rejected", PolicyCustom, nil, true, PolicyZero},
		{"unknown mode rejected", PolicyMode(42), nil, true, PolicyZero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := MustNew(1.0, 0.1)
			err := ev.SetPolicy(tt.mode, tt.fn)
			if tt.wantErr {
				var cfgErr ConfigError
				if !errors.As(err, &cfgErr) {
					t.Fatalf("SetPolicy error = %v, want ConfigError", err)
				}
				// A rejected mode must leave the active policy unchanged.
				if ev.Mode() != tt.wantMode {
					t.Errorf("mode after rejected SetPolicy = %v, want %v", ev.Mode(), tt.wantMode)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetPolicy returned error: %v", err)
			}
			if ev.Mode() != tt.wantMode {
				t.Errorf("mode = %v, want %v", ev.Mode(), tt.wantMode)
			}
		})
	}
}

// TestCustomFunc tests that the custom function is only reported while the
// Custom mode is active, never as a stale leftover.
func TestCustomFunc(t *testing.T) {
	ev := MustNew(1.0, 0.1)

	if err := ev.SetPolicy(PolicyCustom, func(x float64) float64 { return 0.5 }); err != nil {
		t.Fatalf("SetPolicy(Custom): %v", err)
	}
	if fn, ok := ev.CustomFunc(); !ok || fn == nil {
		t.Fatal("CustomFunc should return the configured function under Custom mode")
	}

	// Switching away from Custom must hide the function.
	if err := ev.SetPolicy(PolicyHalfUnit, nil); err != nil {
		t.Fatalf("SetPolicy(HalfUnit): %v", err)
	}
	if _, ok := ev.CustomFunc(); ok {
		t.Error("CustomFunc should report no function under HalfUnit mode")
	}

	if err := ev.SetPolicy(PolicyZero, nil); err != nil {
		t.Fatalf("SetPolicy(Zero): %v", err)
	}
	if _, ok := ev.CustomFunc(); ok {
		t.Error("CustomFunc should report no function under Zero mode")
	}
}

// TestCustomPolicy tests the standalone policy constructor.
func TestCustomPolicy(t *testing.T) {
	t.Run("nil function rejected", func(t *testing.T) {
		_, err := CustomPolicy[float64](nil)
		var cfgErr ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("CustomPolicy(nil) error = %v, want ConfigError", err)
		}
	})

	t.Run("function is applied on promotion", func(t *testing.T) {
		p, err := CustomPolicy(func(x float64) float64 { return x / 100 })
		if err != nil {
			t.Fatalf("CustomPolicy: %v", err)
		}
		ev, err := FromLiteral(250.0, p)
		if err != nil {
			t.Fatalf("FromLiteral: %v", err)
		}
		if ev.Err() != 2.5 {
			t.Errorf("promoted error = %v, want 2.5", ev.Err())
		}
	})
}

// TestFromLiteral tests literal promotion through each policy.
func TestFromLiteral(t *testing.T) {
	t.Run("zero policy", func(t *testing.T) {
		ev, err := FromLiteral(123.0, ZeroPolicy[float64]())
		if err != nil {
			t.Fatalf("FromLiteral: %v", err)
		}
		if ev.Err() != 0 {
			t.Errorf("error = %v, want 0", ev.Err())
		}
	})

	t.Run("half-unit policy", func(t *testing.T) {
		ev, err := FromLiteral(1.5, HalfUnitPolicy[float64]())
		if err != nil {
			t.Fatalf("FromLiteral: %v", err)
		}
		if ev.Err() != 0.05 {
			t.Errorf("error = %v, want 0.05", ev.Err())
		}
	})

	t.Run("custom function returning negative error is rejected", func(t *testing.T) {
		p, err := CustomPolicy(func(x float64) float64 { return -1 })
		if err != nil {
			t.Fatalf("CustomPolicy: %v", err)
		}
		_, err = FromLiteral(1.0, p)
		var domainErr DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("FromLiteral error = %v, want DomainError", err)
		}
	})

	t.Run("result carries the policy", func(t *testing.T) {
		ev, err := FromLiteral(2.0, HalfUnitPolicy[float64]())
		if err != nil {
			t.Fatalf("FromLiteral: %v", err)
		}
		if ev.Mode() != PolicyHalfUnit {
			t.Errorf("mode = %v, want PolicyHalfUnit", ev.Mode())
		}
	})
}

// TestPolicyModeString tests the mode names used in display and logging.
func TestPolicyModeString(t *testing.T) {
	tests := []struct {
		mode PolicyMode
		want string
	}{
		{PolicyZero, "zero"},
		{PolicyHalfUnit, "half-unit"},
		{PolicyCustom, "custom"},
		{PolicyMode(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("PolicyMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
