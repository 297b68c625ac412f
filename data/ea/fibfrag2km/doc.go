/*
Package fibfrag2km is the optical property table of airborne microplastic
fibres and fragments confined to the lowest 2 km of the atmosphere, in the
6 shortwave and 9 longwave bands of the consuming radiative transfer model.

SW_ABS, SW_SCA, LW_ABS and LW_SCA are the sums of the fibre and fragment
optical properties at an MP number concentration of NUMBER_DENSITY (50 m-3).
SW_ASY and LW_ASY are the averages of the fibre and fragment asymmetry
parameters, so they cannot exceed 1.

Index i of SW_ABS, SW_SCA and SW_ASY refers to the same shortwave band, and
likewise for the longwave tables. SWBands and LWBands return the three values
of each band together.

The band boundaries are defined by the radiative transfer model, not here.

All values are fixed when the package is loaded. The package panics during
initialization if a table has the wrong number of bands or a value out of
range. Reads have no side effects and need no synchronization.
*/
package fibfrag2km
