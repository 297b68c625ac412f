package fibfrag2km

import (
	"sync"
	"testing"

	"github.com/peterkuma/microplastics2021/optprop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalars(t *testing.T) {
	assert.Equal(t, 50.0, float64(NUMBER_DENSITY))
	assert.Equal(t, 2000.0, float64(H_TOP))
	assert.Equal(t, 0.3, float64(FRACT_TOP))
	assert.NoError(t, optprop.CheckVertical(NUMBER_DENSITY, FRACT_TOP, H_TOP))
}

func TestBandCounts(t *testing.T) {
	assert.Len(t, SW_ABS(), 6)
	assert.Len(t, SW_SCA(), 6)
	assert.Len(t, SW_ASY(), 6)
	assert.Len(t, LW_ABS(), 9)
	assert.Len(t, LW_SCA(), 9)
	assert.Len(t, LW_ASY(), 9)
}

func TestValues(t *testing.T) {
	assert.Equal(t, 2.81158369e-11, SW_ABS()[0])
	assert.Equal(t, 2.54537590e-09, SW_ABS()[5])
	assert.Equal(t, 2.76736909e-08, SW_SCA()[0])
	assert.Equal(t, 0.85604786, SW_ASY()[5])
	assert.Equal(t, 5.46044537e-09, LW_ABS()[0])
	assert.Equal(t, 2.41769027e-08, LW_SCA()[8])

	lwAsy := LW_ASY()
	assert.Equal(t, 0.8681488, lwAsy[len(lwAsy)-1])
}

func TestRanges(t *testing.T) {
	for name, v := range map[string][]float64{
		"SW_ABS": sliceOf6(SW_ABS()),
		"SW_SCA": sliceOf6(SW_SCA()),
		"LW_ABS": sliceOf9(LW_ABS()),
		"LW_SCA": sliceOf9(LW_SCA()),
	} {
		for i, x := range v {
			assert.GreaterOrEqual(t, x, 0.0, "%s[%d]", name, i)
		}
	}

	for name, v := range map[string][]float64{
		"SW_ASY": sliceOf6(SW_ASY()),
		"LW_ASY": sliceOf9(LW_ASY()),
	} {
		for i, x := range v {
			assert.GreaterOrEqual(t, x, 0.0, "%s[%d]", name, i)
			assert.LessOrEqual(t, x, 1.0, "%s[%d]", name, i)
		}
	}

	assert.NoError(t, check())
}

func TestReadsAreIdempotent(t *testing.T) {
	assert.Equal(t, SW_ABS(), SW_ABS())
	assert.Equal(t, LW_ASY(), LW_ASY())
	assert.Equal(t, SWBands(), SWBands())
}

func TestCallerCannotMutate(t *testing.T) {
	before := SW_ABS()

	v := SW_ABS()
	v[0] = -1
	assert.Equal(t, before, SW_ABS())

	bands := Bands(optprop.SpectrumSW)
	bands[0].Abs = -1
	assert.Equal(t, before[0], SWBands()[0].Abs)

	abs, _, _ := Vectors(optprop.SpectrumSW)
	abs.SetVec(0, -1)
	assert.Equal(t, before[0], SW_ABS()[0])
}

func TestBandsMatchSequences(t *testing.T) {
	sw := SWBands()
	swAbs, swSca, swAsy := SW_ABS(), SW_SCA(), SW_ASY()
	for i, b := range sw {
		assert.Equal(t, optprop.Band{Abs: swAbs[i], Sca: swSca[i], Asy: swAsy[i]}, b, "sw band %d", i)
	}

	lw := LWBands()
	lwAbs, lwSca, lwAsy := LW_ABS(), LW_SCA(), LW_ASY()
	for i, b := range lw {
		assert.Equal(t, optprop.Band{Abs: lwAbs[i], Sca: lwSca[i], Asy: lwAsy[i]}, b, "lw band %d", i)
	}

	assert.Equal(t, sw[:], Bands(optprop.SpectrumSW))
	assert.Equal(t, lw[:], Bands(optprop.SpectrumLW))
	assert.Panics(t, func() { Bands(optprop.Spectrum("uv")) })
}

func TestVectors(t *testing.T) {
	tests := []struct {
		s   optprop.Spectrum
		abs []float64
		sca []float64
		asy []float64
	}{
		{optprop.SpectrumSW, sliceOf6(SW_ABS()), sliceOf6(SW_SCA()), sliceOf6(SW_ASY())},
		{optprop.SpectrumLW, sliceOf9(LW_ABS()), sliceOf9(LW_SCA()), sliceOf9(LW_ASY())},
	}

	for _, tt := range tests {
		t.Run(tt.s.String(), func(t *testing.T) {
			abs, sca, asy := Vectors(tt.s)
			require.Equal(t, tt.s.NBand(), abs.Len())
			require.Equal(t, tt.s.NBand(), sca.Len())
			require.Equal(t, tt.s.NBand(), asy.Len())
			assert.Equal(t, tt.abs, abs.RawVector().Data)
			assert.Equal(t, tt.sca, sca.RawVector().Data)
			assert.Equal(t, tt.asy, asy.RawVector().Data)
		})
	}

	assert.Panics(t, func() { Vectors(optprop.Spectrum("uv")) })
}

func TestConcurrentReads(t *testing.T) {
	want := LWBands()

	var wg sync.WaitGroup
	got := make([][optprop.NBandLW]optprop.Band, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = LWBands()
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want, got[i])
	}
}

func sliceOf6(a [optprop.NBandSW]float64) []float64 {
	return a[:]
}

func sliceOf9(a [optprop.NBandLW]float64) []float64 {
	return a[:]
}
