package i18n

var LocaleCurrency = localeCurrency
