package render

// RenderOptions describe per-call data that renderers can use to customise
// their output without changing the projected document.
type RenderOptions struct {
	// Theme names a theme manifest for renderers that support theming. Empty
	// selects the renderer default.
	Theme string
	// ThemeVariant selects a variant within Theme.
	ThemeVariant string
	// Title overrides the document title written to file metadata. Defaults
	// to the project title.
	Title string
}

// DocumentTitle returns the metadata title for doc.
func (o RenderOptions) DocumentTitle(projectTitle string) string {
	if o.Title != "" {
		return o.Title
	}
	return projectTitle
}
