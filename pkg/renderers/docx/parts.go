package docx

import "encoding/xml"

const (
	namespaceMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	partContentTypes = "[Content_Types].xml"
	partRels         = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
)

// Part names in archive order.
var Parts = []string{partContentTypes, partRels, partDocument, partDocumentRels}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`

// The element names carry the w: prefix literally; the namespace is declared
// once on the root.
type wordDocument struct {
	XMLName xml.Name `xml:"w:document"`
	XMLNSW  string   `xml:"xmlns:w,attr"`
	Body    wordBody `xml:"w:body"`
}

type wordBody struct {
	Paragraphs []paragraph `xml:"w:p"`
}

type paragraph struct {
	Runs []run `xml:"w:r"`
}

type run struct {
	Props *runProps `xml:"w:rPr,omitempty"`
	Text  runText   `xml:"w:t"`
}

type runProps struct {
	Bold *struct{} `xml:"w:b"`
}

type runText struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}
