package fibfrag2km

import (
	"fmt"

	"github.com/peterkuma/microplastics2021/optprop"
	"gonum.org/v1/gonum/mat"
)

// MP number concentration, m-3
const NUMBER_DENSITY = 50.

// Fraction of MPs in the upper layer, -
const FRACT_TOP = 0.3

// MPs are confined to between this altitude and the surface, m
const H_TOP = 2000.

// m-1
var sw_abs = [...]float64{
	2.81158369e-11,
	1.77962749e-11,
	2.08364126e-11,
	5.14508882e-11,
	3.07313372e-10,
	2.54537590e-09,
}

// m-1
var sw_sca = [...]float64{
	2.76736909e-08,
	2.77087682e-08,
	2.77304626e-08,
	2.77420879e-08,
	2.75660197e-08,
	2.54975269e-08,
}

// -
var sw_asy = [...]float64{
	0.82524714,
	0.8332091,
	0.83648979,
	0.8378385,
	0.83938119,
	0.85604786,
}

// m-1
var lw_abs = [...]float64{
	5.46044537e-09,
	7.83862314e-09,
	8.73329251e-09,
	8.73896642e-09,
	8.49942788e-09,
	8.46115076e-09,
	7.82993746e-09,
	7.28748169e-09,
	3.93569214e-09,
}

// m-1
var lw_sca = [...]float64{
	2.43824945e-08,
	2.12505464e-08,
	2.00217649e-08,
	2.00278374e-08,
	1.99839631e-08,
	1.99987942e-08,
	2.05330068e-08,
	2.10225261e-08,
	2.41769027e-08,
}

// -
var lw_asy = [...]float64{
	0.8301096,
	0.87838708,
	0.8990576,
	0.89882933,
	0.90440009,
	0.90463539,
	0.90059854,
	0.89644002,
	0.8681488,
}

// The accessors return the tables by value, so callers get a copy. Their
// result types pin the band counts: a table with a wrong number of elements
// does not compile.

// Shortwave absorption coefficient, m-1, [6]
func SW_ABS() [optprop.NBandSW]float64 {
	return sw_abs
}

// Shortwave scattering coefficient, m-1, [6]
func SW_SCA() [optprop.NBandSW]float64 {
	return sw_sca
}

// Shortwave asymmetry parameter, -, [6]
func SW_ASY() [optprop.NBandSW]float64 {
	return sw_asy
}

// Longwave absorption coefficient, m-1, [9]
func LW_ABS() [optprop.NBandLW]float64 {
	return lw_abs
}

// Longwave scattering coefficient, m-1, [9]
func LW_SCA() [optprop.NBandLW]float64 {
	return lw_sca
}

// Longwave asymmetry parameter, -, [9]
func LW_ASY() [optprop.NBandLW]float64 {
	return lw_asy
}

// Shortwave optical properties per band, [6]
func SWBands() [optprop.NBandSW]optprop.Band {
	var bands [optprop.NBandSW]optprop.Band
	for i := range bands {
		bands[i] = optprop.Band{Abs: sw_abs[i], Sca: sw_sca[i], Asy: sw_asy[i]}
	}
	return bands
}

// Longwave optical properties per band, [9]
func LWBands() [optprop.NBandLW]optprop.Band {
	var bands [optprop.NBandLW]optprop.Band
	for i := range bands {
		bands[i] = optprop.Band{Abs: lw_abs[i], Sca: lw_sca[i], Asy: lw_asy[i]}
	}
	return bands
}

/*
Optical properties per band of a spectral regime.

	Args:
		s: spectral regime

	Returns:
		optical properties, [s.NBand()]
*/
func Bands(s optprop.Spectrum) []optprop.Band {
	switch s {
	case optprop.SpectrumSW:
		bands := SWBands()
		return bands[:]
	case optprop.SpectrumLW:
		bands := LWBands()
		return bands[:]
	default:
		panic("invalid spectrum")
	}
}

/*
Band sequences of a spectral regime as gonum vectors.

	Args:
		s: spectral regime

	Returns:
		(1) absorption coefficient, m-1, [s.NBand()]
		(2) scattering coefficient, m-1, [s.NBand()]
		(3) asymmetry parameter, -, [s.NBand()]

	Notes:
		The vectors are copies; writing to them leaves the table unchanged.
*/
func Vectors(s optprop.Spectrum) (abs, sca, asy *mat.VecDense) {
	switch s {
	case optprop.SpectrumSW:
		return optprop.Vec(sw_abs[:]), optprop.Vec(sw_sca[:]), optprop.Vec(sw_asy[:])
	case optprop.SpectrumLW:
		return optprop.Vec(lw_abs[:]), optprop.Vec(lw_sca[:]), optprop.Vec(lw_asy[:])
	default:
		panic("invalid spectrum")
	}
}

func check() error {
	if err := optprop.CheckSpectrum(optprop.SpectrumSW, sw_abs[:], sw_sca[:], sw_asy[:]); err != nil {
		return err
	}
	if err := optprop.CheckSpectrum(optprop.SpectrumLW, lw_abs[:], lw_sca[:], lw_asy[:]); err != nil {
		return err
	}
	return optprop.CheckVertical(NUMBER_DENSITY, FRACT_TOP, H_TOP)
}

func init() {
	if err := check(); err != nil {
		panic(fmt.Sprintf("fibfrag2km: %v", err))
	}
}
