package errmath

import (
	"errors"
	"math"
	"testing"

	"github.com/agbru/errcalc/errval"
)

// TestExpFamily tests the exponential multipliers.
func TestExpFamily(t *testing.T) {
	t.Run("exp", func(t *testing.T) {
		got, err := Exp(errval.MustNew(1.0, 0.1))
		if err != nil {
			t.Fatalf("Exp returned error: %v", err)
		}
		if !approxEqual(got.Value(), math.E, 1e-12) {
			t.Errorf("value = %v, want e", got.Value())
		}
		if !approxEqual(got.Err(), math.E*0.1, 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), math.E*0.1)
		}
	})

	t.Run("expm1 uses exp multiplier", func(t *testing.T) {
		got, err := Expm1(errval.MustNew(0.0, 0.2))
		if err != nil {
			t.Fatalf("Expm1 returned error: %v", err)
		}
		if got.Value() != 0 {
			t.Errorf("value = %v, want 0", got.Value())
		}
		if !approxEqual(got.Err(), 0.2, 1e-12) {
			t.Errorf("error = %v, want 0.2", got.Err())
		}
	})

	t.Run("exp2", func(t *testing.T) {
		got, err := Exp2(errval.MustNew(3.0, 0.1))
		if err != nil {
			t.Fatalf("Exp2 returned error: %v", err)
		}
		if got.Value() != 8 {
			t.Errorf("value = %v, want 8", got.Value())
		}
		if !approxEqual(got.Err(), 8*math.Ln2*0.1, 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), 8*math.Ln2*0.1)
		}
	})
}

// TestLogFamily tests the logarithmic multipliers and domains.
func TestLogFamily(t *testing.T) {
	t.Run("log", func(t *testing.T) {
		got, err := Log(errval.MustNew(2.0, 0.2))
		if err != nil {
			t.Fatalf("Log returned error: %v", err)
		}
		if !approxEqual(got.Value(), math.Ln2, 1e-12) {
			t.Errorf("value = %v, want ln 2", got.Value())
		}
		if !approxEqual(got.Err(), 0.1, 1e-12) {
			t.Errorf("error = %v, want 0.1", got.Err())
		}
	})

	t.Run("log rejects non-positive argument", func(t *testing.T) {
		for _, v := range []float64{0, -1} {
			_, err := Log(errval.MustNew(v, 0.1))
			var domainErr errval.DomainError
			if !errors.As(err, &domainErr) {
				t.Errorf("Log(%v) error = %v, want DomainError", v, err)
			}
		}
	})

	t.Run("log10", func(t *testing.T) {
		got, err := Log10(errval.MustNew(100.0, 1.0))
		if err != nil {
			t.Fatalf("Log10 returned error: %v", err)
		}
		if !approxEqual(got.Value(), 2, 1e-12) {
			t.Errorf("value = %v, want 2", got.Value())
		}
		if !approxEqual(got.Err(), 1.0/(100*math.Ln10), 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), 1.0/(100*math.Ln10))
		}
	})

	t.Run("log2", func(t *testing.T) {
		got, err := Log2(errval.MustNew(8.0, 0.4))
		if err != nil {
			t.Fatalf("Log2 returned error: %v", err)
		}
		if got.Value() != 3 {
			t.Errorf("value = %v, want 3", got.Value())
		}
		if !approxEqual(got.Err(), 0.4/(8*math.Ln2), 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), 0.4/(8*math.Ln2))
		}
	})

	t.Run("log1p divisor vanishes at zero", func(t *testing.T) {
		_, err := Log1p(errval.MustNew(0.0, 0.1))
		var dz errval.DivisionByZeroError
		if !errors.As(err, &dz) {
			t.Fatalf("Log1p(0) error = %v, want DivisionByZeroError", err)
		}
	})

	t.Run("log1p below domain", func(t *testing.T) {
		_, err := Log1p(errval.MustNew(-1.0, 0.1))
		var domainErr errval.DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("Log1p(-1) error = %v, want DomainError", err)
		}
	})
}

// TestLogn tests the generic-base logarithm, including the value-kind
// promotion rule: a floating operand keeps its kind, an integral operand
// promotes to float64.
func TestLogn(t *testing.T) {
	t.Run("floating operand keeps its kind", func(t *testing.T) {
		got, err := Logn(errval.MustNew(27.0, 0.27), 3)
		if err != nil {
			t.Fatalf("Logn returned error: %v", err)
		}
		if !approxEqual(got.Value(), 3, 1e-12) {
			t.Errorf("value = %v, want 3", got.Value())
		}
		want := 0.27 / (27 * math.Log(3))
		if !approxEqual(got.Err(), want, 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), want)
		}
	})

	t.Run("integral operand promotes to float64", func(t *testing.T) {
		in := errval.MustNew[int](27, 0.27)
		got, err := LognInt(in, 3)
		if err != nil {
			t.Fatalf("LognInt returned error: %v", err)
		}
		// The result value kind is float64; the propagation matches the
		// floating path exactly.
		var _ errval.ErrorValue[float64] = got
		if !approxEqual(got.Value(), 3, 1e-12) {
			t.Errorf("value = %v, want 3", got.Value())
		}
	})

	t.Run("base below two rejected", func(t *testing.T) {
		for _, n := range []int{1, 0, -2} {
			_, err := Logn(errval.MustNew(10.0, 0.1), n)
			var domainErr errval.DomainError
			if !errors.As(err, &domainErr) {
				t.Errorf("Logn(base %d) error = %v, want DomainError", n, err)
			}
		}
	})

	t.Run("non-positive argument rejected", func(t *testing.T) {
		_, err := Logn(errval.MustNew(-5.0, 0.1), 10)
		var domainErr errval.DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("Logn(-5) error = %v, want DomainError", err)
		}
	})
}
