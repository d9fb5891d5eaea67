// Package docx encodes consent documents as minimal WordprocessingML
// packages: a zip archive holding the content types, the package
// relationships, the main document part and its (empty) relationships.
package docx
