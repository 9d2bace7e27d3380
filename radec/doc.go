/*
Command radec converts positions between sexagesimal J2000, degrees and
galactic coordinates.

  Usage: radec [options] <ra> <dec>
    -g=false: input is galactic longitude and latitude in degrees
    -ref="": reference position "ra,dec" for offsets
    -v=false: display version and copyright

Equatorial input is sexagesimal, "hh:mm:ss.s" for RA and "dd:mm:ss.s" for
Dec.  A Dec with a minus sign anywhere is south, so "-00:30:00" works as
expected.  The reference position takes the same form, separated by a
comma.

Sample run:

  $ radec -ref=17:45:00,-29:00:00 17:45:40.04 -29:00:28.1
  J2000:     17:45:40.040000  -29:00:28.100
  Degrees:   266.416833  -29.007806
  Galactic:  ...
  Offset:    0.166833  -0.007806

Galactic coordinates are printed as degrees, minutes and seconds.

Galactic conversion replaces MIRIAD cotra for scripts that do not have
MIRIAD at hand.  The transformation precesses to B1950 and applies the
IAU galactic pole; results agree with cotra to about a second of arc.

-------------
Public domain.
*/
package main
