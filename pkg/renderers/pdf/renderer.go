package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/goliatone/go-consentbuilder/pkg/document"
	"github.com/goliatone/go-consentbuilder/pkg/render"
	"github.com/goliatone/go-consentbuilder/pkg/validation"
)

const (
	// Name is the format name the renderer registers under.
	Name        = "pdf"
	contentType = "application/pdf"

	defaultFamily = "GoSans"

	marginTop      = 20.0
	marginSide     = 20.0
	lineHeight     = 7.0
	signatureSpace = 10.0

	// Lines start on a new page once the cursor passes the page height minus
	// bottomReserve (y > 270 on A4).
	bottomReserve = 27.0

	sizeProjectTitle  = 16.0
	sizeTemplateTitle = 14.0
	sizeHeading       = 12.0
	sizeBody          = 11.0
)

// spacingAfter is the vertical gap added when a section ends.
var spacingAfter = map[document.Section]float64{
	document.SectionProjectTitle:  3,
	document.SectionTemplateTitle: 5,
	document.SectionResearcher:    5,
	document.SectionPurpose:       3,
	document.SectionData:          5,
	document.SectionRights:        5,
	document.SectionConsent:       5,
	document.SectionGDPR:          5,
	document.SectionSignature:     3,
}

// Renderer encodes documents as PDF.
type Renderer struct {
	cfg config
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a PDF renderer. Without options it renders A4 pages with the
// Go fonts, which cover Latin Extended for Polish and French text.
func New(options ...Option) *Renderer {
	cfg := config{
		pageSize:   "A4",
		fontFamily: defaultFamily,
		regular:    goregular.TTF,
		bold:       gobold.TTF,
		creator:    "consentbuilder",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return contentType }
func (r *Renderer) Extension() string   { return "pdf" }

// Render lays out doc and returns the encoded PDF. It fails without output
// when the project title is empty.
func (r *Renderer) Render(ctx context.Context, doc document.Document, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validation.RequireProjectTitle(doc.Meta.ProjectTitle); err != nil {
		return nil, err
	}

	pdf := r.newPDF(doc, options)
	layoutDocument(pdf, r.cfg.fontFamily, doc)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: layout: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: encode: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) newPDF(doc document.Document, options render.RenderOptions) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", r.cfg.pageSize, "")
	pdf.AddUTF8FontFromBytes(r.cfg.fontFamily, "", r.cfg.regular)
	pdf.AddUTF8FontFromBytes(r.cfg.fontFamily, "B", r.cfg.bold)
	pdf.SetMargins(marginSide, marginTop, marginSide)
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetTitle(options.DocumentTitle(doc.Meta.ProjectTitle), true)
	if doc.Meta.Researcher != "" {
		pdf.SetAuthor(doc.Meta.Researcher, true)
	}
	pdf.SetCreator(r.cfg.creator, true)
	pdf.AddPage()
	return pdf
}

// surface is the subset of gofpdf the layout needs.
type surface interface {
	SetFont(family, style string, size float64)
	GetStringWidth(s string) float64
	GetPageSize() (float64, float64)
	Text(x, y float64, txt string)
	AddPage()
	PageNo() int
}

// placedLine records a line drawn by the layout.
type placedLine struct {
	Page int
	Y    float64
	Text string
	Size float64
	Bold bool
}

type cursor struct {
	pdf      surface
	family   string
	y        float64
	maxWidth float64
	breakY   float64
	placed   []placedLine
}

func layoutDocument(pdf surface, family string, doc document.Document) []placedLine {
	width, height := pdf.GetPageSize()
	c := &cursor{
		pdf:      pdf,
		family:   family,
		y:        marginTop,
		maxWidth: width - 2*marginSide,
		breakY:   height - bottomReserve,
	}

	var prev document.Section
	for i, block := range doc.Blocks {
		if i > 0 && block.Section != prev {
			c.y += spacingAfter[prev]
			if block.Section == document.SectionSignature {
				c.y += signatureSpace
			}
		}
		prev = block.Section

		size, bold := styleFor(block)
		c.addText(blockText(block), size, bold)
	}
	return c.placed
}

func styleFor(block document.Block) (float64, bool) {
	switch block.Kind {
	case document.KindProjectTitle:
		return sizeProjectTitle, true
	case document.KindTemplateTitle:
		return sizeTemplateTitle, true
	case document.KindHeading:
		return sizeHeading, true
	default:
		return sizeBody, block.Heading
	}
}

func blockText(block document.Block) string {
	switch block.Kind {
	case document.KindField:
		return block.Label + ": " + block.Text
	case document.KindBullet:
		return document.Bullet + block.Text
	case document.KindSignature:
		return block.Label + ": " + document.SignatureFill
	default:
		return block.Text
	}
}

// addText wraps text to the content width and draws it line by line. Empty
// text still advances the cursor by one line.
func (c *cursor) addText(text string, size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	c.pdf.SetFont(c.family, style, size)

	for _, line := range c.wrap(text) {
		if c.y > c.breakY {
			c.pdf.AddPage()
			c.y = marginTop
		}
		c.pdf.Text(marginSide, c.y, line)
		c.placed = append(c.placed, placedLine{
			Page: c.pdf.PageNo(),
			Y:    c.y,
			Text: line,
			Size: size,
			Bold: bold,
		})
		c.y += lineHeight
	}
}

// wrap breaks text on explicit newlines, then greedily on spaces so that
// every line fits maxWidth with the current font. Words wider than a line are
// split between runes.
func (c *cursor) wrap(text string) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if c.pdf.GetStringWidth(candidate) <= c.maxWidth {
				current = candidate
				continue
			}
			if current != "" {
				lines = append(lines, current)
			}
			current = ""
			for _, piece := range c.splitWord(word) {
				if current != "" {
					lines = append(lines, current)
				}
				current = piece
			}
		}
		lines = append(lines, current)
	}
	return lines
}

func (c *cursor) splitWord(word string) []string {
	if c.pdf.GetStringWidth(word) <= c.maxWidth {
		return []string{word}
	}
	var (
		out     []string
		current []rune
	)
	for _, r := range word {
		next := append(current, r)
		if len(current) > 0 && c.pdf.GetStringWidth(string(next)) > c.maxWidth {
			out = append(out, string(current))
			current = []rune{r}
			continue
		}
		current = next
	}
	if len(current) > 0 {
		out = append(out, string(current))
	}
	return out
}
