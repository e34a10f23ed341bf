package field

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField(t *testing.T) {
	{ // Test row major layout
		f := NewVector(3, 4)
		assert.Equal(t, 24, len(f.Data))
		f.Set2(1, 2, 5, 6)
		assert.Equal(t, 5., f.Data[(1*4+2)*2])
		assert.Equal(t, 6., f.Data[(1*4+2)*2+1])
		x, y := f.Get2(1, 2)
		assert.Equal(t, 5., x)
		assert.Equal(t, 6., y)
		f.At(2, 3)[1] = 7
		_, y = f.Get2(2, 3)
		assert.Equal(t, 7., y)
	}
	{ // Test neighbors, one sided at the boundary
		f := NewScalar(3, 3)
		xPre, xNext, yPre, yNext := f.Nearby(1, 1)
		assert.Equal(t, []int{f.Index(0, 1), f.Index(2, 1), f.Index(1, 0), f.Index(1, 2)},
			[]int{xPre, xNext, yPre, yNext})
		xPre, xNext, yPre, yNext = f.Nearby(0, 2)
		assert.Equal(t, []int{f.Index(0, 2), f.Index(1, 2), f.Index(0, 1), f.Index(0, 2)},
			[]int{xPre, xNext, yPre, yNext})
	}
	{ // Test shape checks
		f1, f2 := NewVector(2, 2), NewVector(2, 3)
		err := f1.CopyFrom(f2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSizeMismatch))
	}
	{ // Test linspace
		assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2}, Linspace(0, 2, 5))
		assert.Equal(t, []float64{3}, Linspace(3, 4, 1))
	}
}

func TestInterpolateTime(t *testing.T) {
	var (
		f1, f2 = NewVector(2, 3), NewVector(2, 3)
		result = NewVector(2, 3)
	)
	for i := range f1.Data {
		f1.Data[i] = float64(i) * 0.3
		f2.Data[i] = float64(i)*1.7 - 2
	}
	f1.Time, f2.Time = 1, 2
	{ // Identical times return the first field unmodified
		require.NoError(t, InterpolateTime(1, 1, f1, f2, 1, result))
		assert.Equal(t, f1.Data, result.Data)
		assert.Equal(t, f1.Time, result.Time)
	}
	{ // Endpoints are exact
		require.NoError(t, InterpolateTime(1, 2, f1, f2, 1, result))
		assert.Equal(t, f1.Data, result.Data)
		require.NoError(t, InterpolateTime(1, 2, f1, f2, 2, result))
		assert.Equal(t, f2.Data, result.Data)
		assert.Equal(t, 2., result.Time)
		// Same when integrating backward
		require.NoError(t, InterpolateTime(2, 1, f2, f1, 1, result))
		assert.Equal(t, f1.Data, result.Data)
		require.NoError(t, InterpolateTime(2, 1, f2, f1, 2, result))
		assert.Equal(t, f2.Data, result.Data)
	}
	{ // Midpoint, works in the backward direction too
		require.NoError(t, InterpolateTime(2, 1, f2, f1, 1.5, result))
		for i := range result.Data {
			assert.InDelta(t, 0.5*(f1.Data[i]+f2.Data[i]), result.Data[i], 1.e-12)
		}
		assert.Equal(t, 1.5, result.Time)
	}
	{ // Mismatched shapes
		err := InterpolateTime(1, 2, f1, NewVector(3, 2), 1.5, result)
		assert.True(t, errors.Is(err, ErrSizeMismatch))
	}
}

func TestFieldIO(t *testing.T) {
	{ // Test round trip through the text format
		f := NewVector(3, 2)
		f.Time = 7
		for i := range f.Data {
			f.Data[i] = float64(i)/3 - 1
		}
		var buf bytes.Buffer
		_, err := f.WriteTo(&buf)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, 3+len(f.Data), len(lines))
		assert.Equal(t, []string{"3", "2", "7"}, lines[:3])

		g := NewVector(3, 2)
		err = g.Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, f.Data, g.Data)
		assert.Equal(t, 7., g.Time)
	}
	{ // Test header dimension mismatch
		g := NewVector(2, 2)
		err := g.Read(strings.NewReader("3\n2\n0\n"))
		assert.True(t, errors.Is(err, ErrSizeMismatch))
	}
	{ // Test truncated data
		g := NewScalar(2, 1)
		err := g.Read(strings.NewReader("2\n1\n0\n1.5\n"))
		assert.Error(t, err)
	}
	{ // Test files
		dir := t.TempDir()
		f := NewScalar(2, 2)
		f.Data = []float64{1, 2, 3, 4}
		fileName := filepath.Join(dir, "f.txt")
		require.NoError(t, f.WriteFile(fileName))
		g := NewScalar(2, 2)
		require.NoError(t, g.ReadFile(fileName))
		assert.Equal(t, f.Data, g.Data)
		assert.Error(t, g.ReadFile(filepath.Join(dir, "missing.txt")))
	}
}
