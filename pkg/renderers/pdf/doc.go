// Package pdf encodes consent documents as paginated A4 PDFs with gofpdf.
//
// Text is laid out top to bottom with a fixed line height. Before each line
// the cursor is checked against the page-break threshold and a new page is
// started when it is passed, so long forms flow onto as many pages as they
// need. The signature and date lines use the same check.
package pdf
