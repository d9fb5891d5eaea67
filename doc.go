// Package consentbuilder re-exports the entry points of the consent form
// builder: language lookup, editing sessions, form-file loading and export
// to PDF, Word, HTML or plain text. The packages under pkg/ hold the
// implementation and can be used directly for finer control.
package consentbuilder
