package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/engine"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// calendarView holds the widgets of the month window so navigation only
// relabels them.
type calendarView struct {
	window   fyne.Window
	month    bikram.NepaliDate
	header   *widget.Label
	weekdays []*widget.Label
	cells    []*widget.Label
	prev     *widget.Button
	next     *widget.Button
	today    *widget.Button
}

// ShowCalendarWindow opens the BS month window on the current month.
// If the window is already open, it requests focus.
func (app *NepaliDateApp) ShowCalendarWindow() {
	if app.calendar != nil {
		app.calendar.window.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenCalendar, config.LogKeyComponent, config.CompCalendar)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinCalendar))
	w.Resize(fyne.NewSize(config.CalendarWindowWidth, config.CalendarWindowHeight))

	cv := &calendarView{
		window: w,
		month:  app.currentMonth(),
		header: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	cv.prev = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { app.shiftCalendar(-1) })
	cv.next = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { app.shiftCalendar(1) })
	cv.today = widget.NewButton("", func() { app.showCalendarMonth(app.currentMonth()) })

	grid := container.NewGridWithColumns(config.GridDaysPerWeek)
	for range config.GridDaysPerWeek {
		l := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
		cv.weekdays = append(cv.weekdays, l)
		grid.Add(l)
	}
	for range config.GridTotalCells {
		l := widget.NewLabel("")
		l.Alignment = fyne.TextAlignCenter
		cv.cells = append(cv.cells, l)
		grid.Add(l)
	}

	nav := container.NewBorder(nil, nil, cv.prev, cv.next, cv.header)
	content := container.NewBorder(nav, container.NewCenter(cv.today), nil, nil, grid)

	app.calendar = cv
	app.renderCalendar()

	w.SetContent(container.NewPadded(content))
	w.SetOnClosed(func() { app.calendar = nil })
	w.Show()
}

// currentMonth is the first day of today's BS month. Outside the table the
// window opens on the nearest supported month.
func (app *NepaliDateApp) currentMonth() bikram.NepaliDate {
	if today, err := app.Converter.Today(app.Clock); err == nil {
		return today.FirstOfMonth()
	}
	table := app.Converter.Table()
	first := bikram.Date(table.MinYear(), 1, 1)
	if start, err := app.Converter.ToGregorian(first); err == nil && app.Clock.Now().Before(start) {
		return first
	}
	return bikram.Date(table.MaxYear(), bikram.MonthsPerYear, 1)
}

// shiftCalendar moves the window by n months. At the ends of the table the
// current month stays.
func (app *NepaliDateApp) shiftCalendar(n int) {
	if app.calendar == nil {
		return
	}
	target, err := app.Converter.AddMonths(app.calendar.month, n)
	if err != nil {
		slog.Debug(config.MsgDaySkipped,
			config.LogKeyComponent, config.CompCalendar,
			config.LogKeyDate, app.calendar.month.String(),
			config.LogKeyError, err)
		return
	}
	app.showCalendarMonth(target)
}

func (app *NepaliDateApp) showCalendarMonth(d bikram.NepaliDate) {
	if app.calendar == nil {
		return
	}
	app.calendar.month = d.FirstOfMonth()
	app.renderCalendar()
}

// renderCalendar relabels the open window for its month and the active
// language. UI thread only.
func (app *NepaliDateApp) renderCalendar() {
	cv := app.calendar
	if cv == nil {
		return
	}
	lang := app.Language()

	cv.window.SetTitle(app.GetMsg(config.TKeyWinCalendar))
	cv.today.SetText(app.GetMsg(config.TKeyBtnToday))
	cv.header.SetText(calendarTitle(cv.month, lang))
	for i, name := range locale.WeekdayHeaders(lang, true) {
		cv.weekdays[i].SetText(name)
	}

	cells, err := engine.MonthGrid(app.Converter, cv.month, app.Clock)
	if err != nil {
		slog.Warn(config.MsgTodayMissing,
			config.LogKeyComponent, config.CompCalendar,
			config.LogKeyDate, cv.month.String(),
			config.LogKeyError, err)
		cv.header.SetText(app.GetMsg(config.TKeyUnsupported))
		cells = make([]engine.DayCell, config.GridTotalCells)
	}

	for i, l := range cv.cells {
		c := cells[i]
		l.TextStyle = fyne.TextStyle{Bold: c.Today}
		if c.Today {
			l.Importance = widget.HighImportance
		} else {
			l.Importance = widget.MediumImportance
		}
		l.SetText(cellText(c, lang))
	}

	_, prevErr := app.Converter.AddMonths(cv.month, -1)
	_, nextErr := app.Converter.AddMonths(cv.month, 1)
	setEnabled(cv.prev, prevErr == nil)
	setEnabled(cv.next, nextErr == nil)
}

// calendarTitle renders "Magh 2082" or "माघ २०८२".
func calendarTitle(d bikram.NepaliDate, lang locale.Language) string {
	return locale.MonthName(d.Month, lang) + " " + locale.Int(d.Year, lang)
}

// cellText shows the BS day above the Gregorian day of month.
func cellText(c engine.DayCell, lang locale.Language) string {
	if c.IsBlank() {
		return ""
	}
	return locale.Int(c.Nepali.Day, lang) + "\n" + c.Gregorian.Format("2")
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
