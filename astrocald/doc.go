/*
Command astrocald serves ephemeris queries over HTTP as JSON.

  Usage: astrocald [options]
    -v=false: display version and copyright

Environment:

  PORT                    listen port, default 8080
  CORS_ALLOWED_ORIGINS    comma separated allowed origins, default all
  ASTROCALD_TWILIGHT      solar depression of dawn and dusk, default 18

Routes:

  GET /health
  GET /v1/solar/longitude?moment=<RFC3339>
  GET /v1/seasons?year=<year>
  GET /v1/phases?year=<year>
  GET /v1/sun?location=<name>&date=<YYYY-MM-DD>
  GET /v1/crescent?location=<name>&date=<YYYY-MM-DD>
  GET /v1/locations

Season and phase moments are universal time.  Sun and moon events are in
the standard time of the location, with the zone offset.  An event that
does not occur on the date is null.  Bad parameters get status 400 and a
body {"error": "..."}.
*/
package main
