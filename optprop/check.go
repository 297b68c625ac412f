package optprop

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrBandCount  = errors.New("wrong number of bands")
	ErrOutOfRange = errors.New("value out of range")
)

/*
Check a band-resolved absorption or scattering coefficient.

	Args:
		name: constant name used in the error message
		s: spectral regime
		v: coefficient, m-1, [band]

	Returns:
		nil if v has exactly s.NBand() elements, all finite and non-negative
*/
func CheckCoefficients(name string, s Spectrum, v []float64) error {
	if err := checkLen(name, s, v); err != nil {
		return err
	}
	return checkRange(name, v, 0, math.Inf(1))
}

/*
Check a band-resolved asymmetry parameter.

	Args:
		name: constant name used in the error message
		s: spectral regime
		v: asymmetry parameter, -, [band]

	Returns:
		nil if v has exactly s.NBand() elements, all in [0, 1]
*/
func CheckAsymmetry(name string, s Spectrum, v []float64) error {
	if err := checkLen(name, s, v); err != nil {
		return err
	}
	return checkRange(name, v, 0, 1)
}

// CheckSpectrum checks the three sibling sequences of one spectral regime.
// Errors are named <S>_ABS, <S>_SCA and <S>_ASY.
func CheckSpectrum(s Spectrum, abs, sca, asy []float64) error {
	prefix := strings.ToUpper(s.String())
	if err := CheckCoefficients(prefix+"_ABS", s, abs); err != nil {
		return err
	}
	if err := CheckCoefficients(prefix+"_SCA", s, sca); err != nil {
		return err
	}
	return CheckAsymmetry(prefix+"_ASY", s, asy)
}

/*
Check the vertical distribution parameters.

	Args:
		numberDensity: particle number density, m-3
		fractTop: fraction of particles in the upper layer, -
		hTop: top of the layer confining the particles, m
*/
func CheckVertical(numberDensity, fractTop, hTop float64) error {
	if !(numberDensity >= 0) || math.IsInf(numberDensity, 0) {
		return fmt.Errorf("%w: NUMBER_DENSITY = %g, want >= 0", ErrOutOfRange, numberDensity)
	}
	if !(fractTop >= 0 && fractTop <= 1) {
		return fmt.Errorf("%w: FRACT_TOP = %g, want [0, 1]", ErrOutOfRange, fractTop)
	}
	if !(hTop > 0) || math.IsInf(hTop, 0) {
		return fmt.Errorf("%w: H_TOP = %g, want > 0", ErrOutOfRange, hTop)
	}
	return nil
}

func checkLen(name string, s Spectrum, v []float64) error {
	if n := s.NBand(); len(v) != n {
		return fmt.Errorf("%w: %s has %d, want %d", ErrBandCount, name, len(v), n)
	}
	return nil
}

// hi may be +Inf; NaN never passes.
func checkRange(name string, v []float64, lo, hi float64) error {
	if len(v) == 0 {
		return nil
	}
	if !floats.HasNaN(v) && floats.Min(v) >= lo && floats.Max(v) <= hi && !math.IsInf(floats.Max(v), 1) {
		return nil
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < lo || x > hi {
			return fmt.Errorf("%w: %s[%d] = %g, want [%g, %g]", ErrOutOfRange, name, i, x, lo, hi)
		}
	}
	return nil
}
