// Package model defines the consent form state and the editing operations a
// UI applies to it: field edits, the rights checklist toggle and language
// switches that carry untouched defaults over to the new language.
package model
