/*
Command epsconvert rewrites the "+" annotation symbols in kvis EPS plots.

Contents

  Program overview
  Command line usage
  File format
  Conversion outline
  Related commands


Program overview

kvis marks positions on an image with small coloured "+" symbols.  On a
busy greyscale or false-colour image these are hard to see, and a plus is
not always the symbol a figure calls for.  Epsconvert takes EPS files
written by kvis and replaces the symbols of selected colours with a cross,
a plus, a circle, or nothing.  Each new symbol is drawn twice, first with a
thick white line and then with a thin black one, so it is visible on any
background.

Sample run:

  epsconvert -r=circle -g=cross field.eps

writes field_modified.eps to the current directory, with red symbols
drawn as circles and green ones as crosses, and prints

  Updated file: field_modified.eps


Command line usage

  Usage: epsconvert [options] <file.eps> ...    convert files
         epsconvert -h                          display help and quick reference
         epsconvert -version                    display version and copyright

  Options:
         -r, --red <shape>       -g, --green <shape>     -b, --blue <shape>
         -y, --yellow <shape>    -p, --pink <shape>
         --weight1 <width>       --weight2 <width>       --size <radius>
         -s, --switch            -i, --interactive       --verbose <n>

Shapes are cross, plus, circle and none.  Colours not named are left as
they are.  Weights are PostScript line widths, written to the output as
given; scientific notation is accepted.  The default weights are 1.0e0 for
the first (white) pass and 3.0e-1 for the second (black) pass.  -switch
draws black first, then white, with the same weights.  -size is the circle
radius, default 2.5.

With -interactive, the program asks about each symbol before converting
it.  Answering n leaves the symbol out of the new drawing.

Files are processed in order.  A file without the "grestore" line that
ends the PostScript preamble is reported and skipped; the others are still
converted.  A symbol line with a coordinate that is not a number stops the
program.


File format

kvis writes a PostScript preamble ending with a line holding only
"grestore".  Annotations follow in blocks.  A block starts with a colour
line such as

   1.0000   0.0000   0.0000  setrgbcolor

(red, with a leading space) and ends before the next setrgbcolor or
setlinewidth line.  Each "+" is two lines in the block, a horizontal and a
vertical stroke,

    x0  y0 M x1  y1 D str

with the same midpoint.  Epsconvert pairs consecutive lines whose
midpoints agree to 1e-5.  Lines that do not pair are left out of the new
drawing.


Conversion outline

For each selected colour, in the order red, green, blue, yellow, pink:

1.  Find the first block of the colour.  If there is none, go to the next
colour.

2.  Pair the strokes of the block into symbols and draw each one in the
requested shape.  A cross is the plus turned 45 degrees with its arms
shortened to fit the same box.  A circle is centred on the midpoint of the
horizontal stroke, at the y of its first point.

3.  Replace the block with a copy of itself commented out with "%  ", a
comment naming the colour, the white pass and the black pass.

4.  Repeat from 1.  The commented copy no longer matches the colour line,
so each block is converted once.

The preamble is copied unchanged.


Related commands

  moment   make moment and binned maps of cubes with MIRIAD
  radec    convert positions between sexagesimal, degrees and galactic

-------------
Public domain.
*/
package main
