package richtext

// Alignment is the horizontal alignment of the lines of a paragraph.
type Alignment uint8

// Alignments. AlignNatural follows the writing direction.
const (
	AlignNatural Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustified
)

// LineBreakMode tells a renderer what to do with lines too long for their container.
type LineBreakMode uint8

// Line break modes.
const (
	BreakByWordWrapping LineBreakMode = iota
	BreakByCharWrapping
	BreakByClipping
	BreakByTruncatingHead
	BreakByTruncatingTail
	BreakByTruncatingMiddle
)

// WritingDirection is the base writing direction of a paragraph.
type WritingDirection int8

// Writing directions. DirectionNatural leaves it to the Unicode Bidi Algorithm.
const (
	DirectionNatural WritingDirection = iota
	DirectionLeftToRight
	DirectionRightToLeft
)

func (d WritingDirection) String() string {
	switch d {
	case DirectionLeftToRight:
		return "ltr"
	case DirectionRightToLeft:
		return "rtl"
	}
	return "natural"
}

// ParagraphField identifies a field of a ParagraphStyle.
type ParagraphField uint16

// Fields of a ParagraphStyle.
const (
	FieldLineSpacing ParagraphField = 1 << iota
	FieldMinimumLineHeight
	FieldMaximumLineHeight
	FieldLineHeightMultiple
	FieldAlignment
	FieldLineBreakMode
	FieldFirstLineHeadIndent
	FieldHeadIndent
	FieldTailIndent
	FieldParagraphSpacing
	FieldParagraphSpacingBefore
	FieldBaseDirection
)

// ParagraphStyle holds layout parameters for paragraphs. Paragraph styles are
// created with NewParagraphStyle and carry only the fields a client has set.
// Getters of unset fields return the default, which is the zero value for
// every field. Paragraph styles are comparable with ==.
type ParagraphStyle struct {
	lineSpacing            float64
	minLineHeight          float64
	maxLineHeight          float64
	lineHeightMultiple     float64
	alignment              Alignment
	lineBreak              LineBreakMode
	firstLineHeadIndent    float64
	headIndent             float64
	tailIndent             float64
	paragraphSpacing       float64
	paragraphSpacingBefore float64
	direction              WritingDirection
	set                    ParagraphField
}

// ParagraphOption sets a field of a ParagraphStyle.
type ParagraphOption func(*ParagraphStyle)

// NewParagraphStyle creates a paragraph style from the options given.
func NewParagraphStyle(opts ...ParagraphOption) ParagraphStyle {
	var ps ParagraphStyle
	for _, opt := range opts {
		opt(&ps)
	}
	return ps
}

// IsSet reports whether a field has been set explicitly.
func (ps ParagraphStyle) IsSet(f ParagraphField) bool {
	return ps.set&f != 0
}

// LineSpacing sets the distance between the bottom of one line and the top
// of the next, in points.
func LineSpacing(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.lineSpacing = v; ps.set |= FieldLineSpacing }
}

// MinimumLineHeight sets the minimum height of each line, in points.
func MinimumLineHeight(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.minLineHeight = v; ps.set |= FieldMinimumLineHeight }
}

// MaximumLineHeight sets the maximum height of each line, in points. 0 means no limit.
func MaximumLineHeight(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.maxLineHeight = v; ps.set |= FieldMaximumLineHeight }
}

// LineHeightMultiple sets a factor for the natural line height.
func LineHeightMultiple(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.lineHeightMultiple = v; ps.set |= FieldLineHeightMultiple }
}

// Align sets the alignment of the paragraph.
func Align(a Alignment) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.alignment = a; ps.set |= FieldAlignment }
}

// LineBreak sets the line break mode of the paragraph.
func LineBreak(m LineBreakMode) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.lineBreak = m; ps.set |= FieldLineBreakMode }
}

// FirstLineHeadIndent sets the indentation of the first line, in points.
func FirstLineHeadIndent(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.firstLineHeadIndent = v; ps.set |= FieldFirstLineHeadIndent }
}

// HeadIndent sets the indentation of all lines but the first, in points.
func HeadIndent(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.headIndent = v; ps.set |= FieldHeadIndent }
}

// TailIndent sets the trailing indentation. Positive values are measured from
// the leading margin, negative values from the trailing margin.
func TailIndent(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.tailIndent = v; ps.set |= FieldTailIndent }
}

// ParagraphSpacing sets the space after the paragraph, in points.
func ParagraphSpacing(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.paragraphSpacing = v; ps.set |= FieldParagraphSpacing }
}

// ParagraphSpacingBefore sets the space before the paragraph, in points.
func ParagraphSpacingBefore(v float64) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.paragraphSpacingBefore = v; ps.set |= FieldParagraphSpacingBefore }
}

// BaseDirection sets the base writing direction of the paragraph.
func BaseDirection(d WritingDirection) ParagraphOption {
	return func(ps *ParagraphStyle) { ps.direction = d; ps.set |= FieldBaseDirection }
}

// LineSpacing returns the distance between lines, in points.
func (ps ParagraphStyle) LineSpacing() float64 {
	return ps.lineSpacing
}

// MinimumLineHeight returns the minimum line height, in points.
func (ps ParagraphStyle) MinimumLineHeight() float64 {
	return ps.minLineHeight
}

// MaximumLineHeight returns the maximum line height, in points. 0 means no limit.
func (ps ParagraphStyle) MaximumLineHeight() float64 {
	return ps.maxLineHeight
}

// LineHeightMultiple returns the factor applied to the natural line height.
func (ps ParagraphStyle) LineHeightMultiple() float64 {
	return ps.lineHeightMultiple
}

// Alignment returns the alignment of the paragraph.
func (ps ParagraphStyle) Alignment() Alignment {
	return ps.alignment
}

// LineBreakMode returns the line break mode of the paragraph.
func (ps ParagraphStyle) LineBreakMode() LineBreakMode {
	return ps.lineBreak
}

// FirstLineHeadIndent returns the indentation of the first line, in points.
func (ps ParagraphStyle) FirstLineHeadIndent() float64 {
	return ps.firstLineHeadIndent
}

// HeadIndent returns the indentation of lines but the first, in points.
func (ps ParagraphStyle) HeadIndent() float64 {
	return ps.headIndent
}

// TailIndent returns the trailing indentation, in points.
func (ps ParagraphStyle) TailIndent() float64 {
	return ps.tailIndent
}

// ParagraphSpacing returns the space after the paragraph, in points.
func (ps ParagraphStyle) ParagraphSpacing() float64 {
	return ps.paragraphSpacing
}

// ParagraphSpacingBefore returns the space before the paragraph, in points.
func (ps ParagraphStyle) ParagraphSpacingBefore() float64 {
	return ps.paragraphSpacingBefore
}

// BaseDirection returns the base writing direction of the paragraph.
func (ps ParagraphStyle) BaseDirection() WritingDirection {
	return ps.direction
}
