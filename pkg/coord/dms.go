package coord

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/justfish09/Wikipedia-Template-Parser/models"
)

// Augment derives decimal lat/lon from split DMS infobox fields and merges
// them into data under "lat" and "lon", leaving the source fields in
// place. fieldGroups is flattened in order; missing fields read as empty.
// It reports whether augmentation happened: false when every field is
// empty, and false on a parse failure, which is logged and swallowed so
// extraction never aborts on a malformed infobox.
func Augment(data *models.ParamMap, fieldGroups [][]string, logger *slog.Logger) bool {
	var values []string
	present := false
	for _, group := range fieldGroups {
		for _, field := range group {
			v := data.Lookup(field)
			if v != "" {
				present = true
			}
			values = append(values, v)
		}
	}
	if !present {
		return false
	}

	lat, lon, err := parseDMS(values)
	if err != nil {
		if logger != nil {
			logger.Warn("can't find coordinates", "error", err)
		}
		return false
	}

	data.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	data.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return true
}

// parseDMS interprets a flattened field-value list as a coordinate pair.
// Supported layouts mirror the coord template arities: 2 fields (one full
// coordinate string, or a plain decimal, per axis), 4 (deg+dir per axis),
// 6 (deg+min+dir) and 8 (deg+min+sec+dir).
func parseDMS(values []string) (lat, lon float64, err error) {
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	switch len(values) {
	case 2:
		lat, err = parseAxis(values[0], "S")
		if err != nil {
			return 0, 0, err
		}
		lon, err = parseAxis(values[1], "W")
		return lat, lon, err
	case 4:
		return parseSplit(values[0:1], values[1], values[2:3], values[3])
	case 6:
		return parseSplit(values[0:2], values[2], values[3:5], values[5])
	case 8:
		return parseSplit(values[0:3], values[3], values[4:7], values[7])
	}
	return 0, 0, fmt.Errorf("unsupported coordinate field count %d", len(values))
}

func parseSplit(latParts []string, latDir string, lonParts []string, lonDir string) (float64, float64, error) {
	lat, err := combine(latParts, latDir, "S")
	if err != nil {
		return 0, 0, err
	}
	lon, err := combine(lonParts, lonDir, "W")
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// combine folds up to three numeric parts (degrees, minutes, seconds) and
// a direction letter into a signed decimal. Empty trailing parts are zero.
func combine(parts []string, dir, negativeDir string) (float64, error) {
	var dms [3]float64
	for i, p := range parts {
		if p == "" {
			continue
		}
		f, err := parseNumber(p)
		if err != nil {
			return 0, err
		}
		dms[i] = f
	}
	d := strings.ToUpper(strings.TrimSpace(dir))
	return toDecimal(dms[0], dms[1], dms[2], d == negativeDir), nil
}

// axisPattern picks the numeric parts and optional direction letter out of
// a single coordinate string such as `43°46'24"N` or `45.5`.
var axisPattern = regexp.MustCompile(`^\s*([+-]?[0-9]+(?:[.,][0-9]+)?)\s*(?:°\s*(?:([0-9]+(?:[.,][0-9]+)?)\s*['′]\s*(?:([0-9]+(?:[.,][0-9]+)?)\s*["″]\s*)?)?)?\s*([NSEW])?\s*$`)

func parseAxis(value, negativeDir string) (float64, error) {
	m := axisPattern.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("unparseable coordinate %q", value)
	}
	var dms [3]float64
	for i, part := range m[1:4] {
		if part == "" {
			continue
		}
		f, err := parseNumber(part)
		if err != nil {
			return 0, err
		}
		dms[i] = f
	}
	return toDecimal(dms[0], dms[1], dms[2], m[4] == negativeDir), nil
}

// parseNumber accepts a decimal comma as well as a decimal point, the
// convention on many non-English infoboxes.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}
