package i18n

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL        = "error.internal"
	ERROR_INVALIDARGUMENT = "error.invalidargument"
	ERROR_EMPTY_INPUT     = "error.empty.input"
	ERROR_UNREADABLE      = "error.unreadable.source"
)
