package geom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInvertThenMultiplyRecoversOriginalPoint(t *testing.T) {
	tests := []Matrix4{
		Translate(5, -3, 2).M,
		Scale(2, 3, 4).M,
		RotateX(0.7).M.Mul(Translate(1, 2, 3).M),
	}
	p := Point(-3, 4.2, 17)
	for i, m := range tests {
		t.Run(t.Name(), func(t *testing.T) {
			transformed := m.MulTuple(p)
			inv, err := m.Invert()
			if err != nil {
				t.Fatalf("case %d: Invert() = %v", i, err)
			}
			if diff := cmp.Diff(inv.MulTuple(transformed), p, approxOpts); diff != "" {
				t.Errorf("case %d: round trip mismatch (-got +want):\n%s", i, diff)
			}
		})
	}
}

func TestInvertOfSingularMatrixFails(t *testing.T) {
	singular := Matrix4{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	_, err := singular.Invert()
	if !errors.Is(err, ErrNonInvertible) {
		t.Errorf("Invert() error = %v, want ErrNonInvertible", err)
	}
}

func TestIdentityIsMultiplicativeUnit(t *testing.T) {
	m := RotateY(1.1).M.Mul(Scale(2, 2, 2).M)
	if !m.Mul(Identity4).Equal(m) {
		t.Errorf("m * identity != m")
	}
	if !Identity4.Mul(m).Equal(m) {
		t.Errorf("identity * m != m")
	}
}

func TestTransposeOfIdentityIsIdentity(t *testing.T) {
	if !Identity4.Transpose().Equal(Identity4) {
		t.Errorf("transpose(identity) != identity")
	}
}
