// Public domain.

// Package astro, small coordinate and file helpers for radio astronomy
// scripts.
//
// Positions are passed around as float64 degrees, RA first.  Sexagesimal
// strings use colons, as MIRIAD and kvis write them.
package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/precess"
	"github.com/soniakeys/unit"
)

// ParseRADec converts a sexagesimal RA "hh:mm:ss.s" and Dec "dd:mm:ss.s"
// to degrees.  Dec is negative if its string holds a minus sign anywhere,
// so "-00:30:00" parses as -0.5.
func ParseRADec(ra, dec string) (raDeg, decDeg float64, err error) {
	h, m, s, err := splitSexa(ra)
	if err != nil {
		return 0, 0, fmt.Errorf("astro: RA %q: %v", ra, err)
	}
	raDeg = unit.NewRA(h, m, s).Deg()
	d, m, s, err := splitSexa(dec)
	if err != nil {
		return 0, 0, fmt.Errorf("astro: Dec %q: %v", dec, err)
	}
	var neg byte
	if strings.Contains(dec, "-") {
		neg = '-'
	}
	return raDeg, unit.NewAngle(neg, d, m, s).Deg(), nil
}

// splitSexa splits "a:b:c" into unsigned parts.
func splitSexa(str string) (a, b int, c float64, err error) {
	f := strings.Split(strings.TrimSpace(str), ":")
	if len(f) != 3 {
		return 0, 0, 0, fmt.Errorf("want three colon separated fields")
	}
	if a, err = strconv.Atoi(strings.TrimLeft(f[0], "+-")); err != nil {
		return
	}
	if b, err = strconv.Atoi(f[1]); err != nil {
		return
	}
	c, err = strconv.ParseFloat(f[2], 64)
	return
}

// FormatRA formats an RA in degrees as "hh:mm:ss.ssssss".  Each field is
// truncated, not rounded.
func FormatRA(deg float64) string {
	h := deg / 15
	m := math.Mod(h, 1) * 60
	s := math.Mod(m, 1) * 60
	return fmt.Sprintf("%02d:%02d:%09f", int(h), int(m), s)
}

// FormatDMS formats an angle in degrees as "[-]dd:mm:ss.sss".
func FormatDMS(deg float64) string {
	sign := ""
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	m := math.Mod(deg, 1) * 60
	s := math.Mod(m, 1) * 60
	return fmt.Sprintf("%s%02d:%02d:%.3f", sign, int(deg), int(m), s)
}

// FormatGalactic formats galactic longitude and latitude in degrees with
// FormatDMS.
func FormatGalactic(l, b float64) [2]string {
	return [2]string{FormatDMS(l), FormatDMS(b)}
}

// Offset subtracts ref from pos, both in degrees, and formats the result
// with six decimals.
func Offset(pos, ref [2]float64) [2]string {
	return [2]string{
		fmt.Sprintf("%.6f", pos[0]-ref[0]),
		fmt.Sprintf("%.6f", pos[1]-ref[1]),
	}
}

// EqToGal converts J2000 equatorial coordinates to galactic coordinates,
// all in degrees.  Longitude is in [0, 360).
//
// The galactic frame is defined on the B1950 equinox, so the position is
// precessed there first.
func EqToGal(raDeg, decDeg float64) (l, b float64) {
	j2000 := coord.Equatorial{
		RA:  unit.RAFromDeg(raDeg),
		Dec: unit.AngleFromDeg(decDeg),
	}
	var b1950 coord.Equatorial
	precess.Position(&j2000, &b1950, 2000, 1950, 0, 0)
	var g coord.Galactic
	g.EqToGal(&b1950)
	return pmod360(g.Lon.Deg()), g.Lat.Deg()
}

// GalToEq is the inverse of EqToGal.  RA is in [0, 360).
func GalToEq(l, b float64) (raDeg, decDeg float64) {
	g := coord.Galactic{
		Lon: unit.AngleFromDeg(l),
		Lat: unit.AngleFromDeg(b),
	}
	var b1950, j2000 coord.Equatorial
	b1950.GalToEq(&g)
	precess.Position(&b1950, &j2000, 1950, 2000, 0, 0)
	return pmod360(j2000.RA.Deg()), j2000.Dec.Deg()
}

func pmod360(x float64) float64 {
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	return x
}
