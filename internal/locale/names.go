package locale

import "time"

var monthNames = map[Language][12]string{
	Nepali: {
		"बैशाख", "जेठ", "असार", "साउन", "भदौ", "आश्विन",
		"कार्तिक", "मंसिर", "पुष", "माघ", "फाल्गुण", "चैत",
	},
	English: {
		"Baishakh", "Jeth", "Ashar", "Shrawan", "Bhadra", "Ashwin",
		"Kartik", "Mangsir", "Poush", "Magh", "Falgun", "Chaitra",
	},
}

var weekdayNames = map[Language][7]string{
	Nepali:  {"आइत", "सोम", "मंगल", "बुध", "बिहि", "शुक्र", "शनि"},
	English: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var weekdayShortNames = map[Language][7]string{
	Nepali:  {"आ", "सो", "मं", "बु", "बि", "शु", "श"},
	English: {"S", "M", "T", "W", "T", "F", "S"},
}

// MonthName returns the name of BS month 1..12, or "" when month is out of range.
func MonthName(month int, lang Language) string {
	names, ok := monthNames[lang]
	if !ok || month < 1 || month > len(names) {
		return ""
	}
	return names[month-1]
}

// WeekdayName returns the calendar header for wd. Unknown weekdays yield "".
func WeekdayName(wd time.Weekday, lang Language, short bool) string {
	table := weekdayNames
	if short {
		table = weekdayShortNames
	}
	names, ok := table[lang]
	if !ok || wd < time.Sunday || wd > time.Saturday {
		return ""
	}
	return names[wd]
}

// WeekdayHeaders returns Sunday-first headers for a month grid.
func WeekdayHeaders(lang Language, short bool) []string {
	out := make([]string, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		out = append(out, WeekdayName(wd, lang, short))
	}
	return out
}
