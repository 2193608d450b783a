package filters

import (
	"net/url"
	"strconv"
	"time"
)

// MeasurementColumns maps orderable measurement fields to SQL columns.
// Queries alias measurements as m and hydroponic_systems as s.
var MeasurementColumns = map[string]string{
	"timestamp":   "m.timestamp",
	"temperature": "m.temperature",
	"ph":          "m.ph",
	"tds":         "m.tds",
}

var defaultMeasurementOrdering = Ordering{{Name: "timestamp", Desc: true}}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Range is an inclusive bound pair; nil means unbounded.
type Range struct {
	Min *float64
	Max *float64
}

// MeasurementFilter holds the user-supplied filters of the measurements list.
type MeasurementFilter struct {
	SystemName      string // case-insensitive substring of the parent system name
	TimestampAfter  *time.Time
	TimestampBefore *time.Time
	Temperature     Range
	PH              Range
	TDS             Range
	Ordering        Ordering
}

// ParseMeasurementFilter reads system__name, timestamp_after/before,
// temperature_min/max, ph_min/max, tds_min/max and ordering.
func ParseMeasurementFilter(q url.Values) (MeasurementFilter, error) {
	perr := &ParamError{}

	f := MeasurementFilter{
		SystemName:      first(q, "system__name", "system__name__icontains"),
		TimestampAfter:  parseTime(q, "timestamp_after", perr),
		TimestampBefore: parseTime(q, "timestamp_before", perr),
		Temperature:     Range{Min: parseFloat(q, "temperature_min", perr), Max: parseFloat(q, "temperature_max", perr)},
		PH:              Range{Min: parseFloat(q, "ph_min", perr), Max: parseFloat(q, "ph_max", perr)},
		TDS:             Range{Min: parseFloat(q, "tds_min", perr), Max: parseFloat(q, "tds_max", perr)},
		Ordering:        ParseOrdering(q, MeasurementColumns),
	}

	if err := perr.orNil(); err != nil {
		return MeasurementFilter{}, err
	}
	return f, nil
}

// Apply adds the filter predicates to w.
func (f MeasurementFilter) Apply(w *Where) {
	if f.SystemName != "" {
		w.Add(`s.name ILIKE ?`, Contains(f.SystemName))
	}
	if f.TimestampAfter != nil {
		w.Add(`m.timestamp >= ?`, *f.TimestampAfter)
	}
	if f.TimestampBefore != nil {
		w.Add(`m.timestamp <= ?`, *f.TimestampBefore)
	}
	f.Temperature.apply(w, "m.temperature")
	f.PH.apply(w, "m.ph")
	f.TDS.apply(w, "m.tds")
}

// OrderBy renders the ORDER BY clause, defaulting to newest first.
func (f MeasurementFilter) OrderBy() string {
	return f.Ordering.SQL(MeasurementColumns, defaultMeasurementOrdering, "m.measurement_id ASC")
}

func (r Range) apply(w *Where, column string) {
	if r.Min != nil {
		w.Add(column+` >= ?`, *r.Min)
	}
	if r.Max != nil {
		w.Add(column+` <= ?`, *r.Max)
	}
}

func parseFloat(q url.Values, param string, perr *ParamError) *float64 {
	raw := first(q, param)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		perr.add(param, "Enter a number.")
		return nil
	}
	return &v
}

func parseTime(q url.Values, param string, perr *ParamError) *time.Time {
	raw := first(q, param)
	if raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}
	perr.add(param, "Enter a valid date/time.")
	return nil
}
