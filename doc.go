/*
Command astrocal prints an almanac of solar and lunar events for a year.

Contents

  Program overview
  Command line usage
  Config file
  Packages


Program overview

Astrocal computes, for a Gregorian year, the moments of the equinoxes and
solstices and the quarters of the moon, and optionally a daily table of
twilight, sunrise, sunset, moonrise and moonset for a location on the
earth.  The daily table also marks evenings when the new crescent moon
first becomes visible.

The models are those of calendrical computation: series for solar and
lunar longitude accurate to a fraction of a minute of time over a few
thousand years around the present, with ΔT from piecewise polynomials.
They are not a substitute for a high precision ephemeris.

Season and phase moments print in universal time.  Daily events print in
the standard time of the location.  A dash marks an event that does not
occur, for example sunrise during polar night.

Sample run:

   $ astrocal -l urbana 2000
   Seasons 2000 (UT)
   March equinox      2000-03-20 07:35  RA 0ʰ00ᵐ00ˢ  Dec 0°00′00″
   June solstice      2000-06-21 01:48  RA 6ʰ00ᵐ00ˢ  Dec 23°26′21″
   ...


Command line usage

  astrocal [options] <year>    almanac for a Gregorian year
  astrocal -h                  display help and quick reference
  astrocal -v                  display version and copyright

Options:

  -c <config-file>             default astrocal.config
  -l <location>                a reference location name
  -d                           include the daily table
  -w <workers>                 concurrent workers for the daily table

Reference locations are mecca, jerusalem, jaffa, ujjain, urbana, greenwich,
tehran, beijing and cairo.  Command line options override the config file.

Days of the daily table are computed concurrently and printed in date order.
The default number of workers is the number of CPUs.


Config file

The config file is optional.  Each line holds one keyword.  Blank lines and
lines starting with # are ignored.

  headings / noheadings        section and column headings
  seasons / noseasons          equinoxes and solstices
  phases / nophases            quarters of the moon
  daily / nodaily              daily table
  crescent / nocrescent        crescent visibility marks in the daily table
  twilight <degrees>           solar depression of dawn and dusk, default 18
  workers <n>
  sites <obscode-file>
  location <name>
  location <name> <lat> <lon> <elevation m> <zone h>

Latitude and longitude are degrees, north and east positive.  Zone is the
offset of standard time from universal time in hours.

The sites keyword reads a file in the format of the MPC list of observatory
codes, https://www.minorplanetcenter.net/iau/lists/ObsCodes.html.  After it,
location and -l accept a three character observatory code.  Sites get the
standard zone of the whole hour nearest local mean time.


Packages

The ephemeris is usable as a library.  Package numeric holds the numeric
kernel and searches, deg degree trigonometry, timescale moments, the
Gregorian calendar and ΔT, astro the solar and lunar models, observer
locations, sun and moon events and crescent visibility, and almanac the
year tables.  Command astrocald serves the same computations over HTTP.

-------------
Public domain.
*/
package main
