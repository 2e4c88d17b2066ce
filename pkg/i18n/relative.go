package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// relativeValue is a signed difference expressed in one unit.
type relativeValue struct {
	value int
	unit  Unit
}

// relativeFormatter renders phrases such as "in 3 days" or "вчера".
type relativeFormatter struct {
	tag     language.Tag
	data    relativeLocale
	printer *message.Printer
	short   bool
	auto    bool
}

func newRelativeFormatter(tag language.Tag, opts FormatOptions) *relativeFormatter {
	nt := tag
	if opts.NumberingSystem != "" {
		if t, err := tag.SetTypeForKey("nu", opts.NumberingSystem); err == nil {
			nt = t
		}
	}

	return &relativeFormatter{
		tag:     tag,
		data:    relativeDataFor(tag),
		printer: message.NewPrinter(nt),
		short:   opts.RelativeTimeDisplay == "short" || opts.RelativeTimeDisplay == "narrow",
		auto:    opts.Numeric == "auto",
	}
}

func (rf *relativeFormatter) formatToParts(v any) []FormatPart {
	rv, ok := v.(relativeValue)
	if !ok {
		return nil
	}

	if rf.auto {
		if word, ok := rf.data.auto[rv.unit][rv.value]; ok {
			return []FormatPart{{Type: PartLiteral, Value: word}}
		}
	}

	table := rf.data.long
	if rf.short {
		table = rf.data.short
	}
	pattern, ok := table[rv.unit]
	if !ok {
		return nil
	}

	n := rv.value
	forms := pattern.future
	if n < 0 {
		n = -n
		forms = pattern.past
	}

	category := pluralCategory(rf.tag, float64(n), Cardinal, nil, nil)
	text, ok := forms[category]
	if !ok {
		text = forms[PluralOther]
	}

	before, after, _ := strings.Cut(text, "{0}")
	parts := make([]FormatPart, 0, 3)
	if before != "" {
		parts = append(parts, FormatPart{Type: PartLiteral, Value: before})
	}
	parts = append(parts, FormatPart{Type: PartInteger, Value: rf.printer.Sprint(number.Decimal(n))})
	if after != "" {
		parts = append(parts, FormatPart{Type: PartLiteral, Value: after})
	}
	return parts
}

// relativePattern holds future and past patterns keyed by plural category.
type relativePattern struct {
	future map[string]string
	past   map[string]string
}

type relativeLocale struct {
	long  map[Unit]relativePattern
	short map[Unit]relativePattern
	auto  map[Unit]map[int]string
}

func relativeDataFor(tag language.Tag) relativeLocale {
	base, _ := tag.Base()
	if data, ok := relativeData[base.String()]; ok {
		return data
	}
	return relativeData["en"]
}

// oneOther builds a pattern pair with "one" and "other" forms.
func oneOther(futureOne, futureOther, pastOne, pastOther string) relativePattern {
	return relativePattern{
		future: map[string]string{PluralOne: futureOne, PluralOther: futureOther},
		past:   map[string]string{PluralOne: pastOne, PluralOther: pastOther},
	}
}

// single builds a pattern pair with one form for every category.
func single(future, past string) relativePattern {
	return relativePattern{
		future: map[string]string{PluralOther: future},
		past:   map[string]string{PluralOther: past},
	}
}

// ru4 builds a Russian pattern pair from stems and one/few/many endings.
func ru4(stem string, one, few, many string) relativePattern {
	return relativePattern{
		future: map[string]string{
			PluralOne:   "через {0} " + stem + one,
			PluralFew:   "через {0} " + stem + few,
			PluralMany:  "через {0} " + stem + many,
			PluralOther: "через {0} " + stem + few,
		},
		past: map[string]string{
			PluralOne:   "{0} " + stem + one + " назад",
			PluralFew:   "{0} " + stem + few + " назад",
			PluralMany:  "{0} " + stem + many + " назад",
			PluralOther: "{0} " + stem + few + " назад",
		},
	}
}

var relativeData = map[string]relativeLocale{
	"en": {
		long: map[Unit]relativePattern{
			UnitYear:    oneOther("in {0} year", "in {0} years", "{0} year ago", "{0} years ago"),
			UnitQuarter: oneOther("in {0} quarter", "in {0} quarters", "{0} quarter ago", "{0} quarters ago"),
			UnitMonth:   oneOther("in {0} month", "in {0} months", "{0} month ago", "{0} months ago"),
			UnitWeek:    oneOther("in {0} week", "in {0} weeks", "{0} week ago", "{0} weeks ago"),
			UnitDay:     oneOther("in {0} day", "in {0} days", "{0} day ago", "{0} days ago"),
			UnitHour:    oneOther("in {0} hour", "in {0} hours", "{0} hour ago", "{0} hours ago"),
			UnitMinute:  oneOther("in {0} minute", "in {0} minutes", "{0} minute ago", "{0} minutes ago"),
			UnitSecond:  oneOther("in {0} second", "in {0} seconds", "{0} second ago", "{0} seconds ago"),
		},
		short: map[Unit]relativePattern{
			UnitYear:    single("in {0} yr.", "{0} yr. ago"),
			UnitQuarter: oneOther("in {0} qtr.", "in {0} qtrs.", "{0} qtr. ago", "{0} qtrs. ago"),
			UnitMonth:   single("in {0} mo.", "{0} mo. ago"),
			UnitWeek:    single("in {0} wk.", "{0} wk. ago"),
			UnitDay:     oneOther("in {0} day", "in {0} days", "{0} day ago", "{0} days ago"),
			UnitHour:    single("in {0} hr.", "{0} hr. ago"),
			UnitMinute:  single("in {0} min.", "{0} min. ago"),
			UnitSecond:  single("in {0} sec.", "{0} sec. ago"),
		},
		auto: map[Unit]map[int]string{
			UnitYear:    {-1: "last year", 0: "this year", 1: "next year"},
			UnitQuarter: {-1: "last quarter", 0: "this quarter", 1: "next quarter"},
			UnitMonth:   {-1: "last month", 0: "this month", 1: "next month"},
			UnitWeek:    {-1: "last week", 0: "this week", 1: "next week"},
			UnitDay:     {-1: "yesterday", 0: "today", 1: "tomorrow"},
			UnitHour:    {0: "this hour"},
			UnitMinute:  {0: "this minute"},
			UnitSecond:  {0: "now"},
		},
	},
	"ru": {
		long: map[Unit]relativePattern{
			UnitYear: {
				future: map[string]string{PluralOne: "через {0} год", PluralFew: "через {0} года", PluralMany: "через {0} лет", PluralOther: "через {0} года"},
				past:   map[string]string{PluralOne: "{0} год назад", PluralFew: "{0} года назад", PluralMany: "{0} лет назад", PluralOther: "{0} года назад"},
			},
			UnitQuarter: ru4("квартал", "", "а", "ов"),
			UnitMonth:   ru4("месяц", "", "а", "ев"),
			UnitWeek:    ru4("недел", "ю", "и", "ь"),
			UnitDay: {
				future: map[string]string{PluralOne: "через {0} день", PluralFew: "через {0} дня", PluralMany: "через {0} дней", PluralOther: "через {0} дня"},
				past:   map[string]string{PluralOne: "{0} день назад", PluralFew: "{0} дня назад", PluralMany: "{0} дней назад", PluralOther: "{0} дня назад"},
			},
			UnitHour:   ru4("час", "", "а", "ов"),
			UnitMinute: ru4("минут", "у", "ы", ""),
			UnitSecond: ru4("секунд", "у", "ы", ""),
		},
		short: map[Unit]relativePattern{
			UnitYear: {
				future: map[string]string{PluralMany: "через {0} л.", PluralOther: "через {0} г."},
				past:   map[string]string{PluralMany: "{0} л. назад", PluralOther: "{0} г. назад"},
			},
			UnitQuarter: single("через {0} кв.", "{0} кв. назад"),
			UnitMonth:   single("через {0} мес.", "{0} мес. назад"),
			UnitWeek:    single("через {0} нед.", "{0} нед. назад"),
			UnitDay:     single("через {0} дн.", "{0} дн. назад"),
			UnitHour:    single("через {0} ч", "{0} ч назад"),
			UnitMinute:  single("через {0} мин.", "{0} мин. назад"),
			UnitSecond:  single("через {0} сек.", "{0} сек. назад"),
		},
		auto: map[Unit]map[int]string{
			UnitYear:    {-1: "в прошлом году", 0: "в этом году", 1: "в следующем году"},
			UnitQuarter: {-1: "в прошлом квартале", 0: "в текущем квартале", 1: "в следующем квартале"},
			UnitMonth:   {-1: "в прошлом месяце", 0: "в этом месяце", 1: "в следующем месяце"},
			UnitWeek:    {-1: "на прошлой неделе", 0: "на этой неделе", 1: "на следующей неделе"},
			UnitDay:     {-2: "позавчера", -1: "вчера", 0: "сегодня", 1: "завтра", 2: "послезавтра"},
			UnitHour:    {0: "в этот час"},
			UnitMinute:  {0: "в эту минуту"},
			UnitSecond:  {0: "сейчас"},
		},
	},
	"ja": {
		long: map[Unit]relativePattern{
			UnitYear:    single("{0} 年後", "{0} 年前"),
			UnitQuarter: single("{0} 四半期後", "{0} 四半期前"),
			UnitMonth:   single("{0} か月後", "{0} か月前"),
			UnitWeek:    single("{0} 週間後", "{0} 週間前"),
			UnitDay:     single("{0} 日後", "{0} 日前"),
			UnitHour:    single("{0} 時間後", "{0} 時間前"),
			UnitMinute:  single("{0} 分後", "{0} 分前"),
			UnitSecond:  single("{0} 秒後", "{0} 秒前"),
		},
		short: map[Unit]relativePattern{
			UnitYear:    single("{0} 年後", "{0} 年前"),
			UnitQuarter: single("{0} 四半期後", "{0} 四半期前"),
			UnitMonth:   single("{0} か月後", "{0} か月前"),
			UnitWeek:    single("{0} 週間後", "{0} 週間前"),
			UnitDay:     single("{0} 日後", "{0} 日前"),
			UnitHour:    single("{0} 時間後", "{0} 時間前"),
			UnitMinute:  single("{0} 分後", "{0} 分前"),
			UnitSecond:  single("{0} 秒後", "{0} 秒前"),
		},
		auto: map[Unit]map[int]string{
			UnitYear:    {-1: "昨年", 0: "今年", 1: "来年"},
			UnitQuarter: {-1: "前四半期", 0: "今四半期", 1: "翌四半期"},
			UnitMonth:   {-1: "先月", 0: "今月", 1: "来月"},
			UnitWeek:    {-1: "先週", 0: "今週", 1: "来週"},
			UnitDay:     {-2: "一昨日", -1: "昨日", 0: "今日", 1: "明日", 2: "明後日"},
			UnitHour:    {0: "1 時間以内"},
			UnitMinute:  {0: "1 分以内"},
			UnitSecond:  {0: "今"},
		},
	},
	"de": {
		long: map[Unit]relativePattern{
			UnitYear:    oneOther("in {0} Jahr", "in {0} Jahren", "vor {0} Jahr", "vor {0} Jahren"),
			UnitQuarter: oneOther("in {0} Quartal", "in {0} Quartalen", "vor {0} Quartal", "vor {0} Quartalen"),
			UnitMonth:   oneOther("in {0} Monat", "in {0} Monaten", "vor {0} Monat", "vor {0} Monaten"),
			UnitWeek:    oneOther("in {0} Woche", "in {0} Wochen", "vor {0} Woche", "vor {0} Wochen"),
			UnitDay:     oneOther("in {0} Tag", "in {0} Tagen", "vor {0} Tag", "vor {0} Tagen"),
			UnitHour:    oneOther("in {0} Stunde", "in {0} Stunden", "vor {0} Stunde", "vor {0} Stunden"),
			UnitMinute:  oneOther("in {0} Minute", "in {0} Minuten", "vor {0} Minute", "vor {0} Minuten"),
			UnitSecond:  oneOther("in {0} Sekunde", "in {0} Sekunden", "vor {0} Sekunde", "vor {0} Sekunden"),
		},
		short: map[Unit]relativePattern{
			UnitYear:    single("in {0} J.", "vor {0} J."),
			UnitQuarter: single("in {0} Quart.", "vor {0} Quart."),
			UnitMonth:   single("in {0} Mon.", "vor {0} Mon."),
			UnitWeek:    single("in {0} Wo.", "vor {0} Wo."),
			UnitDay:     oneOther("in {0} Tag", "in {0} Tagen", "vor {0} Tag", "vor {0} Tagen"),
			UnitHour:    single("in {0} Std.", "vor {0} Std."),
			UnitMinute:  single("in {0} Min.", "vor {0} Min."),
			UnitSecond:  single("in {0} Sek.", "vor {0} Sek."),
		},
		auto: map[Unit]map[int]string{
			UnitYear:    {-1: "letztes Jahr", 0: "dieses Jahr", 1: "nächstes Jahr"},
			UnitQuarter: {-1: "letztes Quartal", 0: "dieses Quartal", 1: "nächstes Quartal"},
			UnitMonth:   {-1: "letzten Monat", 0: "diesen Monat", 1: "nächsten Monat"},
			UnitWeek:    {-1: "letzte Woche", 0: "diese Woche", 1: "nächste Woche"},
			UnitDay:     {-2: "vorgestern", -1: "gestern", 0: "heute", 1: "morgen", 2: "übermorgen"},
			UnitHour:    {0: "in dieser Stunde"},
			UnitMinute:  {0: "in dieser Minute"},
			UnitSecond:  {0: "jetzt"},
		},
	},
	"fr": {
		long: map[Unit]relativePattern{
			UnitYear:    oneOther("dans {0} an", "dans {0} ans", "il y a {0} an", "il y a {0} ans"),
			UnitQuarter: oneOther("dans {0} trimestre", "dans {0} trimestres", "il y a {0} trimestre", "il y a {0} trimestres"),
			UnitMonth:   single("dans {0} mois", "il y a {0} mois"),
			UnitWeek:    oneOther("dans {0} semaine", "dans {0} semaines", "il y a {0} semaine", "il y a {0} semaines"),
			UnitDay:     oneOther("dans {0} jour", "dans {0} jours", "il y a {0} jour", "il y a {0} jours"),
			UnitHour:    oneOther("dans {0} heure", "dans {0} heures", "il y a {0} heure", "il y a {0} heures"),
			UnitMinute:  oneOther("dans {0} minute", "dans {0} minutes", "il y a {0} minute", "il y a {0} minutes"),
			UnitSecond:  oneOther("dans {0} seconde", "dans {0} secondes", "il y a {0} seconde", "il y a {0} secondes"),
		},
		short: map[Unit]relativePattern{
			UnitYear:    single("dans {0} a", "il y a {0} a"),
			UnitQuarter: single("dans {0} trim.", "il y a {0} trim."),
			UnitMonth:   single("dans {0} m.", "il y a {0} m."),
			UnitWeek:    single("dans {0} sem.", "il y a {0} sem."),
			UnitDay:     single("dans {0} j", "il y a {0} j"),
			UnitHour:    single("dans {0} h", "il y a {0} h"),
			UnitMinute:  single("dans {0} min", "il y a {0} min"),
			UnitSecond:  single("dans {0} s", "il y a {0} s"),
		},
		auto: map[Unit]map[int]string{
			UnitYear:    {-1: "l’année dernière", 0: "cette année", 1: "l’année prochaine"},
			UnitQuarter: {-1: "le trimestre dernier", 0: "ce trimestre", 1: "le trimestre prochain"},
			UnitMonth:   {-1: "le mois dernier", 0: "ce mois-ci", 1: "le mois prochain"},
			UnitWeek:    {-1: "la semaine dernière", 0: "cette semaine", 1: "la semaine prochaine"},
			UnitDay:     {-2: "avant-hier", -1: "hier", 0: "aujourd’hui", 1: "demain", 2: "après-demain"},
			UnitHour:    {0: "cette heure-ci"},
			UnitMinute:  {0: "cette minute-ci"},
			UnitSecond:  {0: "maintenant"},
		},
	},
	"es": {
		long: map[Unit]relativePattern{
			UnitYear:    oneOther("dentro de {0} año", "dentro de {0} años", "hace {0} año", "hace {0} años"),
			UnitQuarter: oneOther("dentro de {0} trimestre", "dentro de {0} trimestres", "hace {0} trimestre", "hace {0} trimestres"),
			UnitMonth:   oneOther("dentro de {0} mes", "dentro de {0} meses", "hace {0} mes", "hace {0} meses"),
			UnitWeek:    oneOther("dentro de {0} semana", "dentro de {0} semanas", "hace {0} semana", "hace {0} semanas"),
			UnitDay:     oneOther("dentro de {0} día", "dentro de {0} días", "hace {0} día", "hace {0} días"),
			UnitHour:    oneOther("dentro de {0} hora", "dentro de {0} horas", "hace {0} hora", "hace {0} horas"),
			UnitMinute:  oneOther("dentro de {0} minuto", "dentro de {0} minutos", "hace {0} minuto", "hace {0} minutos"),
			UnitSecond:  oneOther("dentro de {0} segundo", "dentro de {0} segundos", "hace {0} segundo", "hace {0} segundos"),
		},
		short: map[Unit]relativePattern{
			UnitYear:    single("dentro de {0} a", "hace {0} a"),
			UnitQuarter: single("dentro de {0} trim.", "hace {0} trim."),
			UnitMonth:   single("dentro de {0} m", "hace {0} m"),
			UnitWeek:    single("dentro de {0} sem.", "hace {0} sem."),
			UnitDay:     oneOther("dentro de {0} día", "dentro de {0} días", "hace {0} día", "hace {0} días"),
			UnitHour:    single("dentro de {0} h", "hace {0} h"),
			UnitMinute:  single("dentro de {0} min", "hace {0} min"),
			UnitSecond:  single("dentro de {0} s", "hace {0} s"),
		},
		auto: map[Unit]map[int]string{
			UnitYear:    {-1: "el año pasado", 0: "este año", 1: "el próximo año"},
			UnitQuarter: {-1: "el trimestre pasado", 0: "este trimestre", 1: "el próximo trimestre"},
			UnitMonth:   {-1: "el mes pasado", 0: "este mes", 1: "el próximo mes"},
			UnitWeek:    {-1: "la semana pasada", 0: "esta semana", 1: "la próxima semana"},
			UnitDay:     {-2: "anteayer", -1: "ayer", 0: "hoy", 1: "mañana", 2: "pasado mañana"},
			UnitHour:    {0: "esta hora"},
			UnitMinute:  {0: "este minuto"},
			UnitSecond:  {0: "ahora"},
		},
	},
}
