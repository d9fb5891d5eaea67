// Package document projects a consent form and its language template into an
// ordered list of tagged blocks. Encoders consume the projection instead of
// reading form fields directly, so every output format shares one ordering.
package document
