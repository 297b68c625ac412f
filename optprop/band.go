package optprop

import (
	"fmt"
)

// Number of spectral bands of the consuming radiative transfer model.
const (
	NBandSW = 6 // shortwave
	NBandLW = 9 // longwave
)

// Spectral regime
type Spectrum string

const (
	SpectrumSW Spectrum = "sw" // shortwave
	SpectrumLW Spectrum = "lw" // longwave
)

func (s Spectrum) String() string {
	return string(s)
}

/*
Number of bands of the spectral regime.

	Returns:
		number of bands

	Notes:
		sw: 6
		lw: 9
*/
func (s Spectrum) NBand() int {
	switch s {
	case SpectrumSW:
		return NBandSW
	case SpectrumLW:
		return NBandLW
	default:
		panic("invalid spectrum")
	}
}

// Optical properties of one spectral band.
type Band struct {
	Abs float64 // absorption coefficient, m-1
	Sca float64 // scattering coefficient, m-1
	Asy float64 // asymmetry parameter, -
}

/*
Bundle parallel band sequences into per-band records.

	Args:
		abs: absorption coefficient, m-1, [band]
		sca: scattering coefficient, m-1, [band]
		asy: asymmetry parameter, -, [band]

	Returns:
		optical properties, [band]
*/
func Zip(abs, sca, asy []float64) ([]Band, error) {
	if len(sca) != len(abs) || len(asy) != len(abs) {
		return nil, fmt.Errorf("%w: abs %d, sca %d, asy %d", ErrBandCount, len(abs), len(sca), len(asy))
	}

	bands := make([]Band, len(abs))
	for i := range abs {
		bands[i] = Band{Abs: abs[i], Sca: sca[i], Asy: asy[i]}
	}

	return bands, nil
}
