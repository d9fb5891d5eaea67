// Package template defines the template engine contract used by the HTML
// preview. The gotemplate subpackage adapts pongo2 to it.
package template
