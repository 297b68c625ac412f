// Package optprop holds the vocabulary shared by the band-resolved aerosol
// optical property tables: the shortwave and longwave band counts, a per-band
// record and the consistency checks each table runs when it is loaded.
package optprop
