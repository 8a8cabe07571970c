package ui

import (
	"context"
	_ "embed"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/engine"
	"github.com/tartampluch/go-nepalidate/internal/locale"
	"github.com/tartampluch/go-nepalidate/internal/server"
)

//go:embed Icon.png
var appIconData []byte

// NepaliDateApp owns the tray menu, the month window and the background
// worker that keeps today's date and the feed current.
type NepaliDateApp struct {
	App         fyne.App
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Server    *server.FeedServer
	Converter *bikram.Converter
	Clock     bikram.Clock // Injected clock for testability.

	Tray desktop.App
	Menu *fyne.Menu

	TrayTitleItem     *fyne.MenuItem
	TrayTooltipItem   *fyne.MenuItem
	TrayGregorianItem *fyne.MenuItem
	TrayStatusItem    *fyne.MenuItem
	TrayLanguageItem  *fyne.MenuItem
	TrayFormatItem    *fyne.MenuItem
	TrayCalendarItem  *fyne.MenuItem
	TrayCopyFeedItem  *fyne.MenuItem
	TraySettingsItem  *fyne.MenuItem

	SupportedLanguages []string
	configChan         chan string
	rolloverChan       chan struct{}

	snapMu   sync.RWMutex
	snapshot engine.Snapshot

	calendar       *calendarView
	settingsWindow fyne.Window
}

// NewNepaliDateApp constructs the application and wires dependencies.
func NewNepaliDateApp(a fyne.App, ctx context.Context, srv *server.FeedServer) *NepaliDateApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	app := &NepaliDateApp{
		App:          a,
		Preferences:  a.Preferences(),
		Ctx:          ctx,
		Server:       srv,
		Converter:    bikram.Default(),
		Clock:        bikram.RealClock{},
		configChan:   make(chan string, config.ChannelBufferSize),
		rolloverChan: make(chan struct{}, config.ChannelBufferSize),
	}
	if srv != nil && srv.Today == nil {
		srv.Today = app.TodaySnapshot
	}
	return app
}

// Run launches the application services and the main UI loop.
func (app *NepaliDateApp) Run() {
	app.SetupI18n()
	app.watchPreferences()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	go app.backgroundWorker()
	app.App.Run()
}

// Language is the language preference, Nepali when unset or unknown.
func (app *NepaliDateApp) Language() locale.Language {
	lang, err := locale.ParseLanguage(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))
	if err != nil {
		return locale.Nepali
	}
	return lang
}

// Settings assembles the normalized settings from Fyne preferences.
func (app *NepaliDateApp) Settings() config.Settings {
	s := config.Settings{
		Language:       app.Language(),
		FormatType:     dateformat.Type(app.Preferences.StringWithFallback(config.PrefFormatType, config.DefaultFormatType)),
		CustomPattern:  app.Preferences.String(config.PrefCustomPattern),
		FeedPort:       app.Preferences.StringWithFallback(config.PrefFeedPort, config.DefaultFeedPort),
		FeedPastDays:   config.DefaultFeedPastDays,
		FeedFutureDays: config.DefaultFeedFutureDays,
	}
	s.Normalize()
	return s
}

// TodaySnapshot renders the current date with the current settings.
func (app *NepaliDateApp) TodaySnapshot() (engine.Snapshot, error) {
	s := app.Settings()
	return engine.TakeSnapshot(app.Converter, app.Clock.Now(), s.Language, s.Pattern())
}

// Snapshot returns the state last shown in the tray.
func (app *NepaliDateApp) Snapshot() engine.Snapshot {
	app.snapMu.RLock()
	defer app.snapMu.RUnlock()
	return app.snapshot
}

// watchPreferences notifies the worker when a setting changes.
func (app *NepaliDateApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- config.PrefFormatType:
		default:
		}
	})
}

// backgroundWorker refreshes on start, on every preference change and at
// each local midnight.
func (app *NepaliDateApp) backgroundWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	app.refresh()

	scheduler, err := startRolloverScheduler(func() {
		select {
		case app.rolloverChan <- struct{}{}:
		default:
		}
	})
	if err != nil {
		log.Error(config.ErrScheduler, config.LogKeyError, err)
	} else {
		defer scheduler.Stop()
	}

	for {
		select {
		case <-app.Ctx.Done():
			return

		case <-app.configChan:
			fyne.Do(func() {
				app.UpdateLocalizer()
				app.RefreshTrayMenu()
				app.renderCalendar()
			})
			app.refresh()

		case <-app.rolloverChan:
			log.Info(config.MsgRollover)
			app.refresh()
			fyne.Do(app.renderCalendar)
		}
	}
}

// refresh recomputes today's snapshot, republishes the feed and updates
// the tray. It is safe to call from any goroutine.
func (app *NepaliDateApp) refresh() {
	snap, err := app.TodaySnapshot()
	if err != nil {
		slog.Warn(config.MsgTodayMissing,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyGregorian, snap.Gregorian,
			config.LogKeyError, err)
	}

	app.snapMu.Lock()
	app.snapshot = snap
	app.snapMu.Unlock()

	app.publishFeed()
	fyne.Do(func() { app.applySnapshot(snap) })
}

// publishFeed regenerates the ICS overlay and hands it to the server.
func (app *NepaliDateApp) publishFeed() {
	if app.Server == nil {
		return
	}
	s := app.Settings()
	gen := &engine.Generator{
		Clock:     app.Clock,
		Converter: app.Converter,
		Language:  s.Language,
		Pattern:   s.Pattern(),
	}
	data, _, err := gen.Generate(app.Ctx, engine.FeedWindow{PastDays: s.FeedPastDays, FutureDays: s.FeedFutureDays})
	if err != nil {
		slog.Error(config.ErrICalEncode, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}
	app.Server.Update(data)
}

// applySnapshot writes the snapshot into the tray items. UI thread only.
func (app *NepaliDateApp) applySnapshot(snap engine.Snapshot) {
	if app.Menu == nil || app.TrayTitleItem == nil {
		return
	}

	app.TrayTitleItem.Label = snap.Title
	app.TrayTooltipItem.Label = snap.Tooltip
	app.TrayGregorianItem.Label = app.GetMsgData(config.TKeyGregorian, map[string]any{"Date": snap.Gregorian})
	app.TrayStatusItem.Label = app.statusLabel(snap)
	app.Menu.Label = snap.Title
	app.Menu.Refresh()

	slog.Debug(config.MsgTrayUpdated,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDate, snap.BS,
		config.LogKeyFormat, snap.Title)
}

// statusLabel reports how many days remain in the current BS month.
func (app *NepaliDateApp) statusLabel(snap engine.Snapshot) string {
	if !snap.Supported {
		return app.GetMsg(config.TKeyUnsupported)
	}
	n, ok := app.Converter.Table().DaysInMonth(snap.Nepali.Year, snap.Nepali.Month)
	if !ok {
		return app.GetMsg(config.TKeyUnsupported)
	}
	return app.GetPlural(config.TKeyTrayStatusDays, n-snap.Nepali.Day, map[string]any{"Month": snap.MonthName})
}

// copyFeedURL puts the feed address on the clipboard.
func (app *NepaliDateApp) copyFeedURL() {
	if app.Server == nil {
		return
	}
	url := app.Server.URL()
	app.App.Clipboard().SetContent(url)
	app.App.SendNotification(fyne.NewNotification(config.AppName,
		app.GetMsgData(config.TKeyNotifCopied, map[string]any{"URL": url})))
}

// setLanguage and setFormat persist a menu choice. The change listener
// triggers the refresh.
func (app *NepaliDateApp) setLanguage(lang locale.Language) {
	app.Preferences.SetString(config.PrefLanguage, lang.String())
}

func (app *NepaliDateApp) setFormat(t dateformat.Type) {
	if t == dateformat.Custom {
		app.ShowSettingsWindow()
		return
	}
	app.Preferences.SetString(config.PrefFormatType, string(t))
}
