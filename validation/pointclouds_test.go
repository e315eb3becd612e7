// SPDX-License-Identifier: MIT
// Package validation_test contains unit tests for CheckPointClouds.
package validation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtda/ndarray"
	"github.com/katalvlaran/lvtda/validation"
)

// -----------------------------------------------------------------------------
// Fixtures: two 5×5 samples (square), two 6×4 samples (rectangular), the same
// as sequences, ragged variants and a sequence with an extra 6×6 sample.
// -----------------------------------------------------------------------------

const (
	nSamples = 2
	n1       = 5
	n2       = 5
)

type cloudInputs struct {
	X                 *ndarray.Array   // (2, 5, 5)
	XRectang          *ndarray.Array   // (2, 6, 4)
	XList             ndarray.Sequence // 2 × (5, 5)
	XListRectang      ndarray.Sequence // 2 × (6, 4)
	XListDiffRows     ndarray.Sequence // (6, 4), (5, 4)
	XListDiffCols     ndarray.Sequence // (6, 4), (6, 3)
	XListTot          ndarray.Sequence // 2 × (5, 5), (6, 6)
	XListTotAsVectors ndarray.Sequence // members flattened to 1D
}

// arange returns an array of the given shape filled with 0, 1, 2, ...
func arange(t *testing.T, shape ...int) *ndarray.Array {
	t.Helper()
	a, err := ndarray.New(shape, nil)
	require.NoError(t, err)
	for i := range a.Data() {
		a.Data()[i] = float64(i)
	}

	return a
}

// cut returns a copy of the top-left rows×cols block of a 2D array.
func cut(t *testing.T, a *ndarray.Array, rows, cols int) *ndarray.Array {
	t.Helper()
	out, err := ndarray.New([]int{rows, cols}, nil)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := a.At(i, j)
			require.NoError(t, err)
			out.Data()[i*cols+j] = v
		}
	}

	return out
}

func samples(t *testing.T, a *ndarray.Array) ndarray.Sequence {
	t.Helper()
	out := make(ndarray.Sequence, a.Len())
	for i := range out {
		s, err := a.Sample(i)
		require.NoError(t, err)
		out[i] = s.Clone()
	}

	return out
}

func newCloudInputs(t *testing.T) *cloudInputs {
	t.Helper()
	in := &cloudInputs{
		X:        arange(t, nSamples, n1, n2),
		XRectang: arange(t, nSamples, n1+1, n2-1),
	}
	in.XList = samples(t, in.X)
	in.XListRectang = samples(t, in.XRectang)

	last := in.XListRectang[nSamples-1]
	in.XListDiffRows = append(samples(t, in.XRectang)[:nSamples-1], cut(t, last, n1, n2-1))
	in.XListDiffCols = append(samples(t, in.XRectang)[:nSamples-1], cut(t, last, n1+1, n2-2))

	in.XListTot = append(samples(t, in.X), arange(t, 6, 6))
	for _, m := range in.XListTot {
		in.XListTotAsVectors = append(in.XListTotAsVectors, ndarray.From1D(m.Data()))
	}

	return in
}

func (in *cloudInputs) set(v float64) *cloudInputs {
	in.X.Data()[0] = v
	in.XRectang.Data()[0] = v
	in.XList[0].Data()[0] = v
	in.XListRectang[0].Data()[0] = v

	return in
}

// check runs CheckPointClouds and returns the collected warnings.
func check(x ndarray.Batch, opts ...validation.Option) ([]*validation.Warning, error) {
	var warns []*validation.Warning
	opts = append(opts, validation.WithWarningHandler(validation.CollectWarnings(&warns)))
	_, err := validation.CheckPointClouds(x, opts...)

	return warns, err
}

// TestCheckPointClouds_RegularFinite: finite inputs that neither warn nor fail.
func TestCheckPointClouds_RegularFinite(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t)
	dm := validation.WithDistanceMatrices(true)

	tests := []struct {
		name string
		x    ndarray.Batch
		opts []validation.Option
	}{
		{"rectangular array", in.XRectang, nil},
		{"rectangular list", in.XListRectang, nil},
		{"list with differing rows", in.XListDiffRows, nil},
		{"square array as distance matrices", in.X, []validation.Option{dm}},
		{"square list as distance matrices", in.XList, []validation.Option{dm}},
		{"ragged square list as distance matrices", in.XListTot, []validation.Option{dm}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			warns, err := check(tc.x, tc.opts...)
			require.NoError(t, err)
			assert.Empty(t, warns)
		})
	}
}

// TestCheckPointClouds_ValueErrFinite: finite inputs rejected on shape.
func TestCheckPointClouds_ValueErrFinite(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t)
	dm := validation.WithDistanceMatrices(true)
	sample0, err := in.X.Sample(0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		x       ndarray.Batch
		opts    []validation.Option
		wantErr error
	}{
		{"1D array", ndarray.From1D(in.X.Data()), nil, validation.ErrShape},
		{"list of 1D arrays", in.XListTotAsVectors, nil, validation.ErrShape},
		{"2D array", sample0, nil, validation.ErrShape},
		{"non-square array as distance matrices", in.XRectang, []validation.Option{dm}, validation.ErrNotSquare},
		{"non-square list as distance matrices", in.XListRectang, []validation.Option{dm}, validation.ErrNotSquare},
		{"nil", nil, nil, validation.ErrShape},
		{"nil array", (*ndarray.Array)(nil), nil, validation.ErrShape},
		{"empty sequence", ndarray.Sequence{}, nil, validation.ErrShape},
		{"nil member", ndarray.Sequence{in.XList[0], nil}, nil, validation.ErrShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := check(tc.x, tc.opts...)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			assert.ErrorIs(t, err, validation.ErrShape)
		})
	}
}

// TestCheckPointClouds_WarnFinite: ambiguous shapes warn without failing.
func TestCheckPointClouds_WarnFinite(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t)

	tests := []struct {
		name string
		x    ndarray.Batch
		want validation.WarningKind
	}{
		{"square array", in.X, validation.SquareSamples},
		{"square list", in.XList, validation.SquareSamples},
		{"list with differing columns", in.XListDiffCols, validation.InconsistentColumns},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			warns, err := check(tc.x)
			require.NoError(t, err)
			require.Len(t, warns, 1)
			assert.Equal(t, tc.want, warns[0].Kind)
			assert.Equal(t, validation.OpPointClouds, warns[0].Op)
		})
	}
}

// TestCheckPointClouds_MixedSquareness: a sequence with some square members
// is unambiguous, only the column mismatch is reported.
func TestCheckPointClouds_MixedSquareness(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t)

	mixed := ndarray.Sequence{in.XList[0], in.XListRectang[0]}
	warns, err := check(mixed)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, validation.InconsistentColumns, warns[0].Kind)
}

// TestCheckPointClouds_RegularInf: infinities accepted by distance mode or AllowInf.
func TestCheckPointClouds_RegularInf(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t).set(math.Inf(1))
	dm := validation.WithDistanceMatrices(true)
	allowInf := validation.WithFiniteness(validation.AllowInf)

	for name, tc := range map[string]struct {
		x    ndarray.Batch
		opts []validation.Option
	}{
		"array distance default": {in.X, []validation.Option{dm}},
		"list distance default":  {in.XList, []validation.Option{dm}},
		"array allow-inf":        {in.XRectang, []validation.Option{allowInf}},
		"list allow-inf":         {in.XListRectang, []validation.Option{allowInf}},
		"array allow-nan-inf":    {in.XRectang, []validation.Option{validation.WithFiniteness(validation.AllowNaNInf)}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := check(tc.x, tc.opts...)
			require.NoError(t, err)
		})
	}
}

// TestCheckPointClouds_ValueErrInf: infinities rejected by default outside
// distance mode and whenever RejectNonFinite is explicit.
func TestCheckPointClouds_ValueErrInf(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t).set(math.Inf(-1))
	dm := validation.WithDistanceMatrices(true)
	reject := validation.WithFiniteness(validation.RejectNonFinite)

	for name, tc := range map[string]struct {
		x    ndarray.Batch
		opts []validation.Option
	}{
		"array default":         {in.XRectang, nil},
		"list default":          {in.XListRectang, nil},
		"array distance reject": {in.X, []validation.Option{dm, reject}},
		"list distance reject":  {in.XList, []validation.Option{dm, reject}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := check(tc.x, tc.opts...)
			require.ErrorIs(t, err, validation.ErrNonFinite)
			assert.ErrorIs(t, err, validation.ErrShape)

			var ae *validation.ArrayError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, 0, ae.Sample)
			assert.Contains(t, ae.Detail, "infinity at index [0 0]")
		})
	}
}

// TestCheckPointClouds_RegularNaN: NaN accepted only under AllowNaNInf.
func TestCheckPointClouds_RegularNaN(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t).set(math.NaN())
	dm := validation.WithDistanceMatrices(true)
	allowNaN := validation.WithFiniteness(validation.AllowNaNInf)

	for name, tc := range map[string]struct {
		x    ndarray.Batch
		opts []validation.Option
	}{
		"array distance": {in.X, []validation.Option{dm, allowNaN}},
		"list distance":  {in.XList, []validation.Option{dm, allowNaN}},
		"array":          {in.XRectang, []validation.Option{allowNaN}},
		"list":           {in.XListRectang, []validation.Option{allowNaN}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := check(tc.x, tc.opts...)
			require.NoError(t, err)
		})
	}
}

// TestCheckPointClouds_ValueErrNaN: NaN fails under RejectNonFinite and AllowInf,
// and under the distance-mode default.
func TestCheckPointClouds_ValueErrNaN(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t).set(math.NaN())
	dm := validation.WithDistanceMatrices(true)

	for _, policy := range []validation.Finiteness{validation.RejectNonFinite, validation.AllowInf, validation.FinitenessDefault} {
		t.Run(policy.String(), func(t *testing.T) {
			p := validation.WithFiniteness(policy)
			for _, tc := range []struct {
				x    ndarray.Batch
				opts []validation.Option
			}{
				{in.X, []validation.Option{dm, p}},
				{in.XRectang, []validation.Option{p}},
				{in.XList, []validation.Option{dm, p}},
				{in.XListRectang, []validation.Option{p}},
			} {
				_, err := check(tc.x, tc.opts...)
				require.ErrorIs(t, err, validation.ErrNonFinite)

				var ae *validation.ArrayError
				require.True(t, errors.As(err, &ae))
				assert.Contains(t, ae.Detail, "NaN")
			}
		})
	}
}

// TestCheckPointClouds_NonFiniteSampleIndex locates offenders in later samples.
func TestCheckPointClouds_NonFiniteSampleIndex(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t)
	in.XRectang.Data()[6*4+5] = math.Inf(1) // sample 1, row 1, col 1

	_, err := check(in.XRectang)
	var ae *validation.ArrayError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 1, ae.Sample)
	assert.Contains(t, ae.Detail, "[1 1]")
}

// TestCheckPointClouds_Copy verifies WithCopy returns an independent batch.
func TestCheckPointClouds_Copy(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t)

	out, err := validation.CheckPointClouds(in.XRectang)
	require.NoError(t, err)
	assert.Same(t, in.XRectang, out)

	out, err = validation.CheckPointClouds(in.XRectang, validation.WithCopy(true))
	require.NoError(t, err)
	arr, ok := out.(*ndarray.Array)
	require.True(t, ok)
	assert.NotSame(t, in.XRectang, arr)
	assert.True(t, in.XRectang.Equal(arr))

	out, err = validation.CheckPointClouds(in.XListRectang, validation.WithCopy(true))
	require.NoError(t, err)
	seq, ok := out.(ndarray.Sequence)
	require.True(t, ok)
	seq[0].Data()[0] = -1
	assert.Equal(t, 0.0, in.XListRectang[0].Data()[0])
}

// TestCheckPointClouds_WarningsAsErrors promotes the first warning.
func TestCheckPointClouds_WarningsAsErrors(t *testing.T) {
	t.Parallel()
	in := newCloudInputs(t)

	_, err := validation.CheckPointClouds(in.X, validation.WithWarningsAsErrors(true))
	require.ErrorIs(t, err, validation.ErrDimensionality)
	assert.NotErrorIs(t, err, validation.ErrShape)

	_, err = validation.CheckPointClouds(in.XListDiffCols, validation.WithWarningsAsErrors(true))
	require.ErrorIs(t, err, validation.ErrDimensionality)
}

// TestWithFiniteness_PanicsOnUnknown guards the option constructor.
func TestWithFiniteness_PanicsOnUnknown(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { validation.WithFiniteness(validation.Finiteness(42)) })
}

// TestParseFiniteness covers names and boolean spellings.
func TestParseFiniteness(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]validation.Finiteness{
		"":              validation.FinitenessDefault,
		"default":       validation.FinitenessDefault,
		"true":          validation.RejectNonFinite,
		"reject":        validation.RejectNonFinite,
		"false":         validation.AllowInf,
		"Allow-Inf":     validation.AllowInf,
		"allow-nan":     validation.AllowNaNInf,
		"allow-nan-inf": validation.AllowNaNInf,
	} {
		got, err := validation.ParseFiniteness(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := validation.ParseFiniteness("sometimes")
	assert.Error(t, err)
}
