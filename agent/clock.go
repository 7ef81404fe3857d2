package agent

import (
	"fmt"
	"strings"
	"time"
)

// zoneOffset is a display zone with its standard-time offset from UTC.
type zoneOffset struct {
	name   string
	offset int
	region string // "us", "eu", "au", or "" for zones without DST handling
}

// Offsets are standard time; DST is applied per region below.
var worldZones = []zoneOffset{
	{"UTC", 0, ""},
	{"Eastern Time (ET)", -5, "us"},
	{"Central Time (CT)", -6, "us"},
	{"Mountain Time (MT)", -7, "us"},
	{"Pacific Time (PT)", -8, "us"},
	{"GMT", 0, ""},
	{"Central European Time (CET)", 1, "eu"},
	{"Japan Standard Time (JST)", 9, ""},
	{"Australian Eastern Time (AET)", 10, "au"},
}

// FormattedTimes returns the current time rendered in major world time
// zones, one per line, for substitution into the system prompt. This
// helps the model give accurate time-based answers regardless of where
// the user is.
func FormattedTimes() string {
	return FormattedTimesAt(time.Now().UTC())
}

// FormattedTimesAt renders the given instant in major world time zones.
// DST is approximated by coarse month windows (March-November for US
// zones, March-October for CET, October-April for AET) rather than exact
// transition dates.
func FormattedTimesAt(now time.Time) string {
	now = now.UTC()
	month := int(now.Month())

	dstUS := month >= 3 && month <= 11
	dstEU := month >= 3 && month <= 10
	dstAU := month <= 4 || month >= 10

	lines := make([]string, 0, len(worldZones))
	for _, zone := range worldZones {
		offset := zone.offset
		switch zone.region {
		case "us":
			if dstUS {
				offset++
			}
		case "eu":
			if dstEU {
				offset++
			}
		case "au":
			if dstAU {
				offset++
			}
		}

		local := now.In(time.FixedZone(zone.name, offset*3600))
		lines = append(lines, fmt.Sprintf("%s: %s", zone.name, local.Format("2006-01-02 15:04:05")))
	}

	return strings.Join(lines, "\n")
}
