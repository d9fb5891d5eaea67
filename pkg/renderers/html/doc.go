// Package html renders a browser preview of a consent form through the pongo2
// template adapter. User text is passed through a strict bluemonday policy and
// theme tokens from go-theme manifests become CSS custom properties.
package html
