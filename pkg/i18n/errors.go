package i18n

import "errors"

var (
	ErrEmptyDisplayName  = errors.New("i18n: dictionary display name cannot be empty")
	ErrEmptyLanguageTag  = errors.New("i18n: dictionary language tag cannot be empty")
	ErrInvalidFile       = errors.New("i18n: invalid dictionary file")
	ErrInvalidMessage    = errors.New("i18n: invalid message")
	ErrMissingOther      = errors.New("i18n: format table has no \"other\" entry")
	ErrInvalidPluralType = errors.New("i18n: plural type must be \"cardinal\" or \"ordinal\"")
	ErrUnknownDictionary = errors.New("i18n: extended dictionary not found")
	ErrExtendsCycle      = errors.New("i18n: dictionaries extend each other")
)
