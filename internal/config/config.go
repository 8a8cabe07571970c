package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Nepali Date"
	AppID             = "com.github.tartampluch.go-nepalidate"
	CLIName           = "bsdate"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	IconFile          = "Icon.png"
	SettingsFileName  = "settings.yaml"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
	ExitCodeUsage   = 2
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and the settings file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion = "version"
	FlagDebug   = "debug"
	FlagConfig  = "config"
	FlagLang    = "lang"
	FlagFormat  = "format"
	FlagToBS    = "to-bs"
	FlagToAD    = "to-ad"
	FlagMonth   = "month"
	FlagAgenda  = "agenda"

	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stdout"
	FlagDescConfig  = "Path to the YAML settings file (created with defaults if missing)"
	FlagDescLang    = "Output language: Nepali/ne or English/en (overrides settings)"
	FlagDescFormat  = "Format preset name or token pattern (overrides settings)"
	FlagDescToBS    = "Convert a Gregorian date (YYYY-MM-DD) to Bikram Sambat"
	FlagDescToAD    = "Convert a Bikram Sambat date (YYYY/MM/DD, Devanagari digits allowed) to Gregorian"
	FlagDescMonth   = "Print the BS month grid containing the selected date"
	FlagDescAgenda  = "Print this many days from the selected date with their BS dates"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preference Keys (Fyne Preferences)
// -----------------------------------------------------------------------------

const (
	PrefLanguage      = "appLanguage"
	PrefFormatType    = "dateFormatType"
	PrefCustomPattern = "customFormatPattern"
	PrefFeedPort      = "feedPort"
	PrefLastRun       = "lastRunVersion"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage       = "Nepali"
	DefaultFormatType     = "Medium"
	DefaultFeedPort       = "18082"
	DefaultFeedPastDays   = 30
	DefaultFeedFutureDays = 60
	AgendaLookAheadDays   = 60
	MaxFeedDays           = 800

	// RolloverSchedule refreshes the tray label at local midnight.
	RolloverSchedule = "0 0 * * *"

	// Month window geometry.
	GridDaysPerWeek = 7
	GridTotalCells  = 42
)

// -----------------------------------------------------------------------------
// UI Layout
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth  = 420
	CalendarWindowWidth  = 460
	CalendarWindowHeight = 380
	LayoutColumnsDouble  = 2
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyMenuLanguage   = "menu_language"
	TKeyMenuFormat     = "menu_format"
	TKeyMenuCalendar   = "menu_calendar"
	TKeyMenuCopyFeed   = "menu_copy_feed"
	TKeyMenuSettings   = "menu_settings"
	TKeyWinCalendar    = "win_calendar_title"
	TKeyWinSettings    = "win_settings_title"
	TKeyBtnPrev        = "btn_previous"
	TKeyBtnNext        = "btn_next"
	TKeyBtnToday       = "btn_today"
	TKeyBtnSave        = "btn_save"
	TKeyBtnCancel      = "btn_cancel"
	TKeyNotifCopied    = "notif_feed_copied"
	TKeyGregorian      = "lbl_gregorian"
	TKeyUnsupported    = "lbl_unsupported"
	TKeyLblPattern     = "lbl_custom_pattern"
	TKeyHelpPattern    = "help_custom_pattern"
	TKeyLblPreview     = "lbl_preview"
	TKeyLblPort        = "lbl_port"
	TKeyHelpPort       = "help_port"
	TKeyLblFeed        = "lbl_feed"
	TKeyLblFooter      = "lbl_footer"
	TKeyErrPortReq     = "err_port_required"
	TKeyErrPortNum     = "err_port_number"
	TKeyErrPatternReq  = "err_pattern_required"
	TKeyTrayStatusDays = "tray_status_days"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion  = "2.0"
	ICalProdid   = "-//Nepali Date//Feed//EN"
	ICalCalName  = "Bikram Sambat"
	ICalMethod   = "PUBLISH"
	ICalScale    = "GREGORIAN"
	ICalDomain   = "nepalidate"
	ICalTransp   = "TRANSPARENT"
	ICalCategory = "Bikram Sambat"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTEnd      = "DTEND"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropTransp     = "TRANSP"
	PropCategories = "CATEGORIES"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// FormatUID is "<bs date>@<domain>" so UIDs are stable across refreshes.
	FormatUID = "%04d%02d%02d@%s"

	DefaultICalRefresh = 12 * time.Hour

	// StubVCalendar is returned when no day in the window is convertible.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	DateFormatGregorian = "2006-01-02"
	DateFormatDisplay   = "Mon, 02 Jan 2006"
	BSDateSeparators    = "/-."
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteFeed          = "/bs.ics"
	RouteToday         = "/today"
	AddrSeparator      = ":"
	FeedURLFormat      = "http://%s:%s%s"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrPortNumber       = "server port must be a number between 1 and 65535"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrFeedRange        = "invalid feed range"
	ErrDayRule          = "failed to build day recurrence"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrConfigDir        = "could not determine user config dir"
	ErrCreateDir        = "could not create app directory"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
	ErrSettingsLoad     = "failed to load settings"
	ErrSettingsSave     = "failed to save settings"
	ErrSettingsPath     = "settings path is empty"
	ErrConvert          = "date conversion failed"
	ErrParseBSDate      = "expected a BS date as YYYY/MM/DD"
	ErrParseADDate      = "expected a Gregorian date as YYYY-MM-DD"
	ErrScheduler        = "failed to schedule day rollover"
	ErrFlagConflict     = "-to-bs and -to-ad cannot be combined"
	ErrAgendaCount      = "agenda length must be between 1 and the feed maximum"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
	HTTPMsgUnsupported  = "Today is outside the supported Bikram Sambat range."
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgFeedBuilt     = "Bikram Sambat feed generated"
	MsgDaySkipped    = "Skipping day outside calendar table"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgTrayUpdated   = "Tray label updated"
	MsgRollover      = "Day rollover"
	MsgTodayMissing  = "Today is outside the supported range"
	MsgSettingsSaved = "Settings saved"
	MsgOpenCalendar  = "Opening calendar window"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyPattern   = "pattern"
	LogKeyFormat    = "format"
	LogKeyDate      = "date"
	LogKeyGregorian = "gregorian"
	LogKeyDays      = "days"
	LogKeySkipped   = "skipped"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyPath      = "path"
	LogKeyDuration  = "duration_ms"
	LogKeySchedule  = "schedule"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompCalendar = "ui_calendar"
	CompEngine   = "engine"
	CompServer   = "server"
	CompWorker   = "worker"
	CompMain     = "main"
	CompCLI      = "cli"
	CompI18n     = "i18n"
	CompSettings = "settings"
)
