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
	AppName         = "Go Contact Book"
	AppID           = "com.github.tartampluch.go-contactbook"
	LogFileName     = "app.log"
	JSONFileName    = "addressbook.json"
	SQLiteFileName  = "addressbook.db"
	SnapshotVersion = 1
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book snapshot and logs.
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
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagData         = "data"
	FlagStore        = "store"
	FlagLang         = "lang"
	FlagHorizon      = "horizon"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable colored debug logging to stderr"
	FlagDescData     = "Path to the address book file (default: user config dir)"
	FlagDescStore    = "Storage backend: json or sqlite"
	FlagDescLang     = "Language of the messages (en, fr)"
	FlagDescHorizon  = "Default number of days reported by the birthdays command"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
	EnvLogLevel      = "LOG_LEVEL"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	StoreJSON          = "json"
	StoreSQLite        = "sqlite"
	DefaultStore       = StoreJSON
	DefaultLanguage    = "en"
	DefaultHorizonDays = 7
	DefaultLeapYear    = 2000 // Leap year fallback for vCard dates like --02-29
	PhoneLength        = 10
	UIDSalt            = "go-contactbook-v1-" // Salt for deterministic UID generation
	MaxDecodeErrors    = 100
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatInput parses user supplied birthdays (DD.MM.YYYY, leading zeros optional).
	DateFormatInput = "2.1.2006"
	// DateFormatBirthday renders a stored birthday back in the input convention.
	DateFormatBirthday = "02.01.2006"
	// Birthdays imported without a year are stored and shown as DD.MM.
	DateFormatInputNoYear    = "2.1"
	DateFormatBirthdayNoYear = "02.01"
	// DateFormatCongrats renders congratulation dates (YYYY.MM.DD).
	DateFormatCongrats = "2006.01.02"

	// vCard BDAY layouts
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// Presentation
	PhoneSeparator     = ", "
	PhoneSeparatorText = "; "
	FormatContactLine  = "%s: %s"
	FormatRecordString = "Contact name: %s, phones: %s"
	FormatUpcomingLine = "%s (%s)"
	FormatNotFound     = "%s %q not found"
)

// -----------------------------------------------------------------------------
// Domain Field & Entity Names
// -----------------------------------------------------------------------------

const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldBirthday = "birthday"

	EntityContact = "contact"
	EntityPhone   = "phone"
)

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdImportVCF    = "import-vcf"
	CmdExportVCF    = "export-vcf"
	CmdExportICS    = "export-ics"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome         = "welcome"
	TKeyPrompt          = "prompt"
	TKeyGoodbye         = "goodbye"
	TKeyHello           = "hello"
	TKeyInvalidCommand  = "invalid_command"
	TKeyHelp            = "help"
	TKeyContactAdded    = "contact_added"
	TKeyContactUpdated  = "contact_updated"
	TKeyContactNotFound = "contact_not_found"
	TKeyContactDeleted  = "contact_deleted"
	TKeyPhoneChanged    = "phone_changed"
	TKeyPhoneNotFound   = "phone_not_found"
	TKeyPhoneRemoved    = "phone_removed"
	TKeyBirthdayAdded   = "birthday_added"
	TKeyBirthdayShow    = "birthday_show"
	TKeyBirthdayNone    = "birthday_none"
	TKeyAllHeader       = "all_header"
	TKeyAllEmpty        = "all_empty"
	TKeyUpcomingHeader  = "upcoming_header"
	TKeyUpcomingNone    = "upcoming_none"
	TKeyImportDone      = "import_done"
	TKeyExportVCFDone   = "export_vcf_done"
	TKeyExportICSDone   = "export_ics_done"
	TKeyOperationFailed = "operation_failed"
	TKeySaveFailed      = "save_failed"
	TKeyEvtSummary      = "event_summary"     // Requires Name
	TKeyEvtSummaryAge   = "event_summary_age" // Requires Name, Age

	// Argument errors
	TKeyArgsMissing      = "args_missing"
	TKeyArgsName         = "args_name"
	TKeyArgsPhone        = "args_phone"
	TKeyArgsNamePhone    = "args_name_phone"
	TKeyArgsNewPhone     = "args_new_phone"
	TKeyArgsOldNewPhone  = "args_old_new_phone"
	TKeyArgsNameTwoPhone = "args_name_two_phones"
	TKeyArgsPath         = "args_path"
	TKeyArgsDays         = "args_days"

	// Validation errors
	TKeyErrName     = "err_name"
	TKeyErrPhone    = "err_phone"
	TKeyErrBirthday = "err_birthday"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Contact Book//Engine//EN"
	ICalCalName   = "Congratulations"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gocontactbook"
	ICalTrigger   = "-PT9H" // Reminder on the evening before

	// iCal Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	DefaultICalRefresh = 24 * time.Hour

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummary    = "Congratulate %s"
	FallbackSummaryAge = "Congratulate %s (%d)"
	FormatBornOn       = "Birthday: %s"
)

// -----------------------------------------------------------------------------
// Storage
// -----------------------------------------------------------------------------

const (
	SQLiteDriver      = "sqlite"
	SQLitePragmaFK    = "PRAGMA foreign_keys = ON"
	TempFilePattern   = ".addressbook-*.tmp"
	JSONIndentPrefix  = ""
	JSONIndentPadding = "  "
)

// -----------------------------------------------------------------------------
// Error Messages (Validation/Technical)
// -----------------------------------------------------------------------------

const (
	ErrKindValidation = "validation error"
	ErrKindNotFound   = "not found"
	ErrNameRequired   = "Name is required"
	ErrPhoneFormat    = "Phone must have 10 digit characters"
	ErrBirthdayFormat = "Invalid date format. Use DD.MM.YYYY"

	ErrDateParse       = "unable to parse date"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrVCardEncode     = "failed to encode vCard"
	ErrVCardDecode     = "too many malformed vCards"
	ErrStoreUnknown    = "configuration error: unsupported storage backend"
	ErrStoreOpen       = "failed to open storage"
	ErrStoreLoad       = "failed to load address book"
	ErrStoreSave       = "failed to save address book"
	ErrEnableFK        = "failed to enable foreign keys"
	ErrMigrations      = "failed to run migrations"
	ErrTxBegin         = "failed to begin transaction"
	ErrTxCommit        = "failed to commit transaction"
	ErrSnapshotDecode  = "failed to decode address book snapshot"
	ErrSnapshotVersion = "unsupported snapshot version"
	ErrCreateDir       = "could not create app directory"
	ErrConfigDir       = "could not determine user config dir"
	ErrCacheDir        = "could not determine user cache dir"
	ErrLogFile         = "failed to open log file"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrReadInput       = "failed to read command input"
	ErrFileOpen        = "failed to open file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, closing session"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgStoreOpen     = "Storage opened"
	MsgBookLoaded    = "Address book loaded"
	MsgBookSaved     = "Address book saved"
	MsgBookFresh     = "Starting with an empty address book"
	MsgCommand       = "Command received"
	MsgCommandFailed = "Command failed"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedPhone  = "Skipping invalid phone number"
	MsgSkippedName   = "Skipping vCard without name"
	MsgImportDone    = "vCard import finished"
	MsgExportDone    = "vCard export finished"
	MsgGenSuccess    = "Calendar generation successful"
	MsgMigrations    = "Database schema ready"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
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
	LogKeyStore     = "store"
	LogKeyPath      = "path"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyStats     = "stats"
	LogKeyCount     = "count"
	LogKeyProcessed = "processed"
	LogKeyImported  = "imported"
	LogKeyMerged    = "merged"
	LogKeySkipped   = "skipped"
	LogKeyEvents    = "events"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
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
	CompUI      = "ui"
	CompEngine  = "engine"
	CompStorage = "storage"
	CompMain    = "main"
	CompI18n    = "i18n"
)
