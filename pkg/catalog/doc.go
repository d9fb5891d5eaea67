// Package catalog holds the localized consent-form templates. Templates are
// YAML documents embedded in the binary and decoded once at start-up; the
// selector list in DefaultLanguages and the template files must stay in
// one-to-one correspondence, which Load enforces.
package catalog
