package ui

import (
	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// setupTrayMenu constructs the system tray menu. The first items are
// informational and refreshed by applySnapshot.
func (app *NepaliDateApp) setupTrayMenu() {
	app.TrayTitleItem = fyne.NewMenuItem(dateformat.Placeholder, func() { app.ShowCalendarWindow() })
	app.TrayTooltipItem = fyne.NewMenuItem(dateformat.Placeholder, nil)
	app.TrayTooltipItem.Disabled = true
	app.TrayGregorianItem = fyne.NewMenuItem("", nil)
	app.TrayGregorianItem.Disabled = true
	app.TrayStatusItem = fyne.NewMenuItem("", nil)
	app.TrayStatusItem.Disabled = true

	app.TrayLanguageItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuLanguage), nil)
	app.TrayFormatItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuFormat), nil)
	app.TrayCalendarItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuCalendar), func() { app.ShowCalendarWindow() })
	app.TrayCopyFeedItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuCopyFeed), func() { app.copyFeedURL() })
	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() { app.ShowSettingsWindow() })

	app.TrayLanguageItem.ChildMenu = app.buildLanguageMenu()
	app.TrayFormatItem.ChildMenu = app.buildFormatMenu()

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayTitleItem,
		app.TrayTooltipItem,
		app.TrayGregorianItem,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayCalendarItem,
		app.TrayLanguageItem,
		app.TrayFormatItem,
		fyne.NewMenuItemSeparator(),
		app.TrayCopyFeedItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu relocalizes labels and rebuilds the checkable submenus.
func (app *NepaliDateApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayLanguageItem.Label = app.GetMsg(config.TKeyMenuLanguage)
	app.TrayFormatItem.Label = app.GetMsg(config.TKeyMenuFormat)
	app.TrayCalendarItem.Label = app.GetMsg(config.TKeyMenuCalendar)
	app.TrayCopyFeedItem.Label = app.GetMsg(config.TKeyMenuCopyFeed)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)

	app.TrayLanguageItem.ChildMenu = app.buildLanguageMenu()
	app.TrayFormatItem.ChildMenu = app.buildFormatMenu()

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
	app.Menu.Refresh()
}

// buildLanguageMenu lists each language in its own script.
func (app *NepaliDateApp) buildLanguageMenu() *fyne.Menu {
	current := app.Language()
	var items []*fyne.MenuItem
	for _, lang := range locale.Languages() {
		item := fyne.NewMenuItem(lang.DisplayName(), func() { app.setLanguage(lang) })
		item.Checked = lang == current
		items = append(items, item)
	}
	return fyne.NewMenu(app.GetMsg(config.TKeyMenuLanguage), items...)
}

// buildFormatMenu shows each preset as a rendered sample so users pick by
// appearance rather than by name.
func (app *NepaliDateApp) buildFormatMenu() *fyne.Menu {
	s := app.Settings()
	var items []*fyne.MenuItem
	for _, t := range dateformat.Types() {
		item := fyne.NewMenuItem(t.Example(s.Language), func() { app.setFormat(t) })
		item.Checked = t == s.FormatType
		items = append(items, item)
	}
	return fyne.NewMenu(app.GetMsg(config.TKeyMenuFormat), items...)
}
