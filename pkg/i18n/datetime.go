package i18n

import (
	"sync"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/ru_RU"
	"golang.org/x/text/language"
)

var (
	calendarsOnce sync.Once
	calendars     map[string]locales.Translator
)

func calendarTranslators() map[string]locales.Translator {
	calendarsOnce.Do(func() {
		calendars = make(map[string]locales.Translator)
		for _, t := range []locales.Translator{
			en.New(), en_US.New(), en_GB.New(),
			ru.New(), ru_RU.New(),
			ja.New(), de.New(), fr.New(), es.New(),
		} {
			calendars[t.Locale()] = t
		}
	})
	return calendars
}

// calendarFor returns the CLDR calendar data closest to tag: base_REGION,
// then base, then English.
func calendarFor(tag language.Tag) locales.Translator {
	reg := calendarTranslators()

	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if t, ok := reg[base.String()+"_"+region.String()]; ok {
			return t
		}
	}
	if t, ok := reg[base.String()]; ok {
		return t
	}
	return reg["en"]
}

// dateStyle picks a CLDR length for one half of a date/time rendering.
type dateStyle int

const (
	styleNone dateStyle = iota
	styleShort
	styleMedium
	styleLong
	styleFull
)

func parseDateStyle(s string) dateStyle {
	switch s {
	case "short":
		return styleShort
	case "medium":
		return styleMedium
	case "long":
		return styleLong
	case "full":
		return styleFull
	}
	return styleNone
}

// dateFormatter renders absolute dates with CLDR patterns.
// Calendar, era and hour cycle preferences follow the locale data.
type dateFormatter struct {
	cal  locales.Translator
	loc  *time.Location
	date dateStyle
	time dateStyle
}

func newDateFormatter(tag language.Tag, opts FormatOptions) *dateFormatter {
	df := &dateFormatter{cal: calendarFor(tag)}

	if opts.TimeZone != "" {
		if loc, err := time.LoadLocation(opts.TimeZone); err == nil {
			df.loc = loc
		}
	}

	df.date = parseDateStyle(opts.DateStyle)
	df.time = parseDateStyle(opts.TimeStyle)
	if df.date != styleNone || df.time != styleNone {
		return df
	}

	switch {
	case opts.Weekday != "":
		df.date = styleFull
	case opts.Month == "long":
		df.date = styleLong
	case opts.Month == "short" || opts.Month == "narrow":
		df.date = styleMedium
	case opts.Year != "" || opts.Month != "" || opts.Day != "":
		df.date = styleShort
	}

	switch {
	case opts.TimeZoneName == "long":
		df.time = styleFull
	case opts.TimeZoneName == "short":
		df.time = styleLong
	case opts.Second != "":
		df.time = styleMedium
	case opts.Hour != "" || opts.Minute != "":
		df.time = styleShort
	}

	if df.date == styleNone && df.time == styleNone {
		df.date = styleShort
	}
	return df
}

func (df *dateFormatter) formatToParts(v any) []FormatPart {
	t, ok := v.(time.Time)
	if !ok {
		return nil
	}
	if df.loc != nil {
		t = t.In(df.loc)
	}

	var parts []FormatPart
	if s := df.formatDate(t); s != "" {
		parts = append(parts, FormatPart{Type: PartDate, Value: s})
	}
	if s := df.formatTime(t); s != "" {
		if len(parts) > 0 {
			parts = append(parts, FormatPart{Type: PartLiteral, Value: ", "})
		}
		parts = append(parts, FormatPart{Type: PartTime, Value: s})
	}
	return parts
}

func (df *dateFormatter) formatDate(t time.Time) string {
	switch df.date {
	case styleShort:
		return df.cal.FmtDateShort(t)
	case styleMedium:
		return df.cal.FmtDateMedium(t)
	case styleLong:
		return df.cal.FmtDateLong(t)
	case styleFull:
		return df.cal.FmtDateFull(t)
	}
	return ""
}

func (df *dateFormatter) formatTime(t time.Time) string {
	switch df.time {
	case styleShort:
		return df.cal.FmtTimeShort(t)
	case styleMedium:
		return df.cal.FmtTimeMedium(t)
	case styleLong:
		return df.cal.FmtTimeLong(t)
	case styleFull:
		return df.cal.FmtTimeFull(t)
	}
	return ""
}
