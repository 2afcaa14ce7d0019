// Package coord converts the {{coord}} template's sexagesimal positional
// parameters, and split infobox coordinate fields, to decimal degrees.
package coord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/justfish09/Wikipedia-Template-Parser/models"
	"github.com/justfish09/Wikipedia-Template-Parser/pkg/wikitext"
)

// TemplateName is the normalized name of the coordinate template.
const TemplateName = "coord"

// DefaultOptionalParams are the reserved tokens marking a coord parameter
// as presentational rather than positional. An entry whose key or value
// contains one of these as a substring is dropped before arity dispatch.
var DefaultOptionalParams = []string{
	"dim",
	"globe",
	"region",
	"scale",
	"source",
	"type",
	"display",
}

// ConversionError reports a coord template whose positional parameters
// could not be converted: unsupported arity, a missing position, or a
// non-numeric value.
type ConversionError struct {
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("coord conversion: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("coord conversion: %s", e.Reason)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Resolver holds the immutable optional-parameter exclusion list.
type Resolver struct {
	optional []string
}

// NewResolver builds a Resolver. With no arguments it uses
// DefaultOptionalParams.
func NewResolver(optional ...string) *Resolver {
	if len(optional) == 0 {
		optional = DefaultOptionalParams
	}
	return &Resolver{optional: optional}
}

// Resolve converts a coord template's parameters to a decimal lat/lon
// pair. The caller replaces the occurrence's data with the result; the raw
// positional parameters are discarded once resolved.
func (r *Resolver) Resolve(data *models.ParamMap) (models.Coordinates, error) {
	positions := r.positional(data)
	if len(positions) == 0 {
		return models.Coordinates{}, &ConversionError{Reason: "no positional parameters"}
	}

	start := 0
	for n := range positions {
		if start == 0 || n < start {
			start = n
		}
	}

	at := func(offset int) (string, error) {
		v, ok := positions[start+offset]
		if !ok {
			return "", &ConversionError{Reason: fmt.Sprintf("missing positional parameter %d", start+offset)}
		}
		return v, nil
	}
	num := func(offset int) (float64, error) {
		v, err := at(offset)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &ConversionError{Reason: fmt.Sprintf("positional parameter %d is not numeric", start+offset), Err: err}
		}
		return f, nil
	}

	var (
		latDeg, latMin, latSec float64
		lonDeg, lonMin, lonSec float64
		latDir, lonDir         string
		err                    error
	)

	read := func(dst *float64, offset int) {
		if err == nil {
			*dst, err = num(offset)
		}
	}
	readDir := func(dst *string, offset int) {
		if err == nil {
			*dst, err = at(offset)
		}
	}

	read(&latDeg, 0)
	switch len(positions) {
	case 2:
		read(&lonDeg, 1)
	case 4:
		readDir(&latDir, 1)
		read(&lonDeg, 2)
		readDir(&lonDir, 3)
	case 6:
		read(&latMin, 1)
		readDir(&latDir, 2)
		read(&lonDeg, 3)
		read(&lonMin, 4)
		readDir(&lonDir, 5)
	case 8:
		read(&latMin, 1)
		read(&latSec, 2)
		readDir(&latDir, 3)
		read(&lonDeg, 4)
		read(&lonMin, 5)
		read(&lonSec, 6)
		readDir(&lonDir, 7)
	default:
		return models.Coordinates{}, &ConversionError{
			Reason: fmt.Sprintf("unsupported positional parameter count %d", len(positions)),
		}
	}
	if err != nil {
		return models.Coordinates{}, err
	}

	lat := toDecimal(latDeg, latMin, latSec, latDir == "S")
	lon := toDecimal(lonDeg, lonMin, lonSec, lonDir == "W")

	return models.Coordinates{
		Lat: strconv.FormatFloat(lat, 'f', -1, 64),
		Lon: strconv.FormatFloat(lon, 'f', -1, 64),
	}, nil
}

// positional drops optional entries and collects the surviving anonymous
// parameters keyed by their positional index. Leftover named keys have no
// meaning for coordinates and are ignored.
func (r *Resolver) positional(data *models.ParamMap) map[int]string {
	positions := make(map[int]string)
	for _, key := range data.Keys() {
		value := data.Lookup(key)
		if r.isOptional(key) || r.isOptional(value) {
			continue
		}
		rest, ok := strings.CutPrefix(key, wikitext.AnonPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			continue
		}
		positions[n] = value
	}
	return positions
}

func (r *Resolver) isOptional(s string) bool {
	for _, token := range r.optional {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// toDecimal is degrees + minutes/60 + seconds/3600, negated for the
// southern and western hemispheres.
func toDecimal(deg, min, sec float64, negative bool) float64 {
	d := deg + min/60.0 + sec/3600.0
	if negative {
		return -d
	}
	return d
}
