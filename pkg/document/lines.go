package document

import "strings"

// Line is one row of the line-oriented layout shared by the text and DOCX
// encoders. An empty Text is a blank separator.
type Line struct {
	Text    string `json:"text"`
	Heading bool   `json:"heading"`
}

// Blank reports whether the line is a separator.
func (l Line) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Lines lays the document out as rows. Sections are separated by a single
// blank line and section headings end with a colon. Fields print as
// "label: value" and bullets as "• value". Text spanning several lines is
// split into rows: only the first row carries the label or bullet.
func (d Document) Lines() []Line {
	var (
		out  []Line
		prev Section
	)
	for i, block := range d.Blocks {
		if i > 0 && block.Section != prev {
			out = append(out, Line{})
		}
		prev = block.Section
		out = append(out, block.lines()...)
	}
	return out
}

func (b Block) lines() []Line {
	switch b.Kind {
	case KindHeading:
		return []Line{{Text: b.Text + ":", Heading: true}}
	case KindField:
		return splitRows(b.Label+": "+b.Text, false)
	case KindBullet:
		return splitRows(Bullet+b.Text, false)
	case KindSignature:
		return []Line{{Text: b.Label + ": " + SignatureFill}}
	default:
		return splitRows(b.Text, b.Heading)
	}
}

func splitRows(text string, heading bool) []Line {
	parts := strings.Split(text, "\n")
	out := make([]Line, 0, len(parts))
	for _, part := range parts {
		out = append(out, Line{Text: part, Heading: heading})
	}
	return out
}

// String joins the layout with newlines.
func (d Document) String() string {
	lines := d.Lines()
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = line.Text
	}
	return strings.Join(parts, "\n")
}
