// Package i18n holds the user-facing strings of passguard and formats them
// in the requested language using golang.org/x/text/message.
//
// English and Chinese are supported. Any other language falls back to English.
package i18n
