/*
Command moment makes moment and binned maps of data cubes with MIRIAD.

  Usage: moment [options] <file> ...

  Options:
    -m orders   moments to make, comma separated, eg. -m=-2,0
    -b orders   channel binning to do, comma separated, eg. -b=5,10
    -s fwhm     smooth each moment map with a gaussian of this FWHM, eg. 3,3
    -a axis     axis for the moment; use 2 for an lv map
    -f          overwrite existing outputs
    -i          do not run tasks whose outputs already exist
    -q          do not print MIRIAD output

Inputs that are FITS files are first converted to MIRIAD data sets with
"fits op=xyin", named for the file without the .fits extension.  Each input
then gets its moment maps, and for each binning order a binned cube
(imbin) and the moment maps of the binned cube.  All outputs are written to
the current directory, named after the input: cube.mom0, cube.bin5,
cube.bin5.mom0, cube.mom0.smooth and so on.

Without -f or -i the program asks before replacing an existing output, and
processes one file at a time.  With either option up to four files are
processed at once.  Output of each file is printed in input order.

MIRIAD tasks must be on PATH.

-------------
Public domain.
*/
package main
