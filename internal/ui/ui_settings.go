package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-nepalidate/internal/bikram"
	"github.com/tartampluch/go-nepalidate/internal/config"
	"github.com/tartampluch/go-nepalidate/internal/dateformat"
	"github.com/tartampluch/go-nepalidate/internal/locale"
)

// previewSample is rendered when today is outside the table.
var previewSample = bikram.Date(2082, 10, 1)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect    *widget.Select
	formatSelect  *widget.Select
	patternEntry  *widget.Entry
	previewLabel  *widget.Label
	entryPort     *NumericalEntry
	feedLabel     *widget.Label
	formatOptions map[string]dateformat.Type
	langOptions   map[string]locale.Language
}

// newSettingsWidgets builds the form controls from the current preferences.
func (app *NepaliDateApp) newSettingsWidgets() *settingsWidgets {
	s := app.Settings()
	sw := &settingsWidgets{
		formatOptions: make(map[string]dateformat.Type),
		langOptions:   make(map[string]locale.Language),
	}

	// --- Language ---
	var langNames []string
	for _, l := range locale.Languages() {
		langNames = append(langNames, l.DisplayName())
		sw.langOptions[l.DisplayName()] = l
	}
	sw.langSelect = widget.NewSelect(langNames, nil)
	sw.langSelect.SetSelected(s.Language.DisplayName())

	// --- Format ---
	var formatNames []string
	for _, t := range dateformat.Types() {
		label := t.Example(s.Language)
		formatNames = append(formatNames, label)
		sw.formatOptions[label] = t
	}
	sw.formatSelect = widget.NewSelect(formatNames, nil)

	sw.patternEntry = widget.NewEntry()
	sw.patternEntry.SetPlaceHolder(s.Pattern())
	sw.patternEntry.SetText(s.CustomPattern)
	sw.patternEntry.Validator = func(p string) error {
		if sw.selectedFormat() == dateformat.Custom && strings.TrimSpace(p) == "" {
			return errors.New(app.GetMsg(config.TKeyErrPatternReq))
		}
		return nil
	}

	sw.previewLabel = widget.NewLabel("")
	sw.previewLabel.TextStyle = fyne.TextStyle{Bold: true}

	updatePreview := func() {
		sw.previewLabel.SetText(app.previewPattern(sw.pattern(), sw.selectedLanguage()))
	}
	sw.formatSelect.OnChanged = func(string) {
		if sw.selectedFormat() == dateformat.Custom {
			sw.patternEntry.Enable()
		} else {
			sw.patternEntry.Disable()
		}
		updatePreview()
	}
	sw.langSelect.OnChanged = func(string) { updatePreview() }
	sw.patternEntry.OnChanged = func(string) { updatePreview() }
	sw.formatSelect.SetSelected(s.FormatType.Example(s.Language))

	// --- Feed ---
	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(s.FeedPort)
	sw.entryPort.Validator = func(p string) error {
		if p == "" {
			return errors.New(app.GetMsg(config.TKeyErrPortReq))
		}
		if err := config.ValidatePort(p); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrPortNum))
		}
		return nil
	}

	feed := ""
	if app.Server != nil {
		feed = app.Server.URL()
	}
	sw.feedLabel = widget.NewLabel(feed)
	sw.feedLabel.Wrapping = fyne.TextWrapBreak

	return sw
}

func (sw *settingsWidgets) selectedFormat() dateformat.Type {
	if t, ok := sw.formatOptions[sw.formatSelect.Selected]; ok {
		return t
	}
	return dateformat.Type(config.DefaultFormatType)
}

func (sw *settingsWidgets) selectedLanguage() locale.Language {
	if l, ok := sw.langOptions[sw.langSelect.Selected]; ok {
		return l
	}
	return locale.Nepali
}

// pattern is the pattern the form would save.
func (sw *settingsWidgets) pattern() string {
	s := config.Settings{FormatType: sw.selectedFormat(), CustomPattern: sw.patternEntry.Text}
	return s.Pattern()
}

// previewPattern renders today, or a sample date when today is unsupported.
func (app *NepaliDateApp) previewPattern(pattern string, lang locale.Language) string {
	d, err := app.Converter.Today(app.Clock)
	if err != nil {
		d = previewSample
	}
	return dateformat.Format(d, pattern, lang)
}

// ShowSettingsWindow displays the settings dialog.
// If the window is already open, it requests focus.
func (app *NepaliDateApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompSettings)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info("Opening settings window", config.LogKeyComponent, config.CompSettings)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	// --- Display Section ---
	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyMenuLanguage), sw.langSelect)
	itemFormat := widget.NewFormItem(app.GetMsg(config.TKeyMenuFormat), sw.formatSelect)
	itemPattern := widget.NewFormItem(app.GetMsg(config.TKeyLblPattern), sw.patternEntry)
	itemPattern.HintText = app.GetMsg(config.TKeyHelpPattern)
	itemPreview := widget.NewFormItem(app.GetMsg(config.TKeyLblPreview), sw.previewLabel)

	displayCard := widget.NewCard(app.GetMsg(config.TKeyMenuFormat), "",
		widget.NewForm(itemLang, itemFormat, itemPattern, itemPreview))

	// --- Feed Section ---
	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)
	itemURL := widget.NewFormItem("URL", sw.feedLabel)

	feedCard := widget.NewCard(app.GetMsg(config.TKeyLblFeed), "", widget.NewForm(itemPort, itemURL))

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		if err := app.saveSettings(sw); err != nil {
			dialog.ShowError(err, w)
			return
		}
		w.Close()
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		displayCard,
		feedCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// saveSettings validates the form and persists it. The preference change
// listener picks the new values up, except the port which applies on the
// next start.
func (app *NepaliDateApp) saveSettings(sw *settingsWidgets) error {
	if err := sw.entryPort.Validate(); err != nil {
		return err
	}
	if err := sw.patternEntry.Validate(); err != nil {
		return err
	}

	lang := sw.selectedLanguage()
	format := sw.selectedFormat()

	app.Preferences.SetString(config.PrefLanguage, lang.String())
	app.Preferences.SetString(config.PrefFormatType, string(format))
	if format == dateformat.Custom {
		app.Preferences.SetString(config.PrefCustomPattern, strings.TrimSpace(sw.patternEntry.Text))
	}
	app.Preferences.SetString(config.PrefFeedPort, sw.entryPort.Text)

	slog.Info(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompSettings,
		config.LogKeyLang, lang.Code(),
		config.LogKeyFormat, string(format),
		config.LogKeyPort, sw.entryPort.Text)
	return nil
}
