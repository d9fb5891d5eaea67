// Package render defines the encoder seam shared by every output format. A
// Renderer turns a document.Document into bytes; a Registry resolves
// renderers by format name for the export pipeline.
package render
