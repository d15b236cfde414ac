package mdcode

// Block is a fenced code block found in a Markdown document.
type Block struct {
	// Lang is the first word of the info string.
	Lang string
	// Info is the whole info string, trimmed.
	Info string
	Meta Meta
	Code []byte

	StartLine int
	EndLine   int
}

type Blocks []*Block
