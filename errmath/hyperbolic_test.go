package errmath

import (
	"errors"
	"math"
	"testing"

	"github.com/agbru/errcalc/errval"
)

// TestSinhCosh tests the cosh(x) and |sinh(x)| multipliers.
func TestSinhCosh(t *testing.T) {
	t.Run("sinh at zero passes error through", func(t *testing.T) {
		got, err := Sinh(errval.MustNew(0.0, 0.1))
		if err != nil {
			t.Fatalf("Sinh returned error: %v", err)
		}
		if got.Value() != 0 {
			t.Errorf("value = %v, want 0", got.Value())
		}
		// cosh(0) = 1
		if !approxEqual(got.Err(), 0.1, 1e-12) {
			t.Errorf("error = %v, want 0.1", got.Err())
		}
	})

	t.Run("cosh at zero kills first-order error", func(t *testing.T) {
		got, err := Cosh(errval.MustNew(0.0, 0.1))
		if err != nil {
			t.Fatalf("Cosh returned error: %v", err)
		}
		if got.Value() != 1 {
			t.Errorf("value = %v, want 1", got.Value())
		}
		if got.Err() != 0 {
			t.Errorf("error = %v, want 0", got.Err())
		}
	})

	t.Run("sinh at one", func(t *testing.T) {
		got, err := Sinh(errval.MustNew(1.0, 0.2))
		if err != nil {
			t.Fatalf("Sinh returned error: %v", err)
		}
		if !approxEqual(got.Err(), math.Cosh(1)*0.2, 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), math.Cosh(1)*0.2)
		}
	})
}

// TestTanh tests the 1/cosh²(x) multiplier.
func TestTanh(t *testing.T) {
	got, err := Tanh(errval.MustNew(0.0, 0.3))
	if err != nil {
		t.Fatalf("Tanh returned error: %v", err)
	}
	if got.Value() != 0 {
		t.Errorf("value = %v, want 0", got.Value())
	}
	if !approxEqual(got.Err(), 0.3, 1e-12) {
		t.Errorf("error = %v, want 0.3", got.Err())
	}
}

// TestAsinh tests the 1/√(1+x²) multiplier.
func TestAsinh(t *testing.T) {
	got, err := Asinh(errval.MustNew(0.0, 0.4))
	if err != nil {
		t.Fatalf("Asinh returned error: %v", err)
	}
	if !approxEqual(got.Err(), 0.4, 1e-12) {
		t.Errorf("error = %v, want 0.4", got.Err())
	}
}

// TestAcosh tests the domain x > 1 and the 1/√(x²−1) multiplier.
func TestAcosh(t *testing.T) {
	t.Run("valid argument", func(t *testing.T) {
		got, err := Acosh(errval.MustNew(2.0, 0.3))
		if err != nil {
			t.Fatalf("Acosh returned error: %v", err)
		}
		want := 0.3 / math.Sqrt(3)
		if !approxEqual(got.Err(), want, 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), want)
		}
	})

	t.Run("below domain", func(t *testing.T) {
		_, err := Acosh(errval.MustNew(0.5, 0.1))
		var domainErr errval.DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("Acosh(0.5) error = %v, want DomainError", err)
		}
	})

	t.Run("boundary has a vertical tangent", func(t *testing.T) {
		_, err := Acosh(errval.MustNew(1.0, 0.1))
		var dz errval.DivisionByZeroError
		if !errors.As(err, &dz) {
			t.Fatalf("Acosh(1) error = %v, want DivisionByZeroError", err)
		}
	})
}

// TestAtanh tests the open domain (−1, 1) and the 1/(1−x²) multiplier.
func TestAtanh(t *testing.T) {
	t.Run("valid argument", func(t *testing.T) {
		got, err := Atanh(errval.MustNew(0.5, 0.15))
		if err != nil {
			t.Fatalf("Atanh returned error: %v", err)
		}
		if !approxEqual(got.Err(), 0.15/0.75, 1e-12) {
			t.Errorf("error = %v, want %v", got.Err(), 0.15/0.75)
		}
	})

	t.Run("boundary rejected", func(t *testing.T) {
		_, err := Atanh(errval.MustNew(1.0, 0.1))
		var domainErr errval.DomainError
		if !errors.As(err, &domainErr) {
			t.Fatalf("Atanh(1) error = %v, want DomainError", err)
		}
	})
}
