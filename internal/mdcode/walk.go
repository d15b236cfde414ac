package mdcode

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`^\s*([^\s{]+)\s*(.*?)\s*$`)

// Walker is a callback invoked for each fenced code block found in a Markdown
// document, in document order. Returning an error stops the walk.
type Walker func(block *Block) error

// Walk parses a Markdown document and calls walker for every fenced code block.
// Headings, paragraphs and every other node kind are skipped.
func Walk(source []byte, walker Walker) error {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source)).OwnerDocument()

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		node = transformCommentedCodeBlock(node, entering, source)

		fcb := asFencedCodeBlock(node, entering)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		if err := walker(extractBlock(fcb, source)); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkContinue, nil
	})
}

func asFencedCodeBlock(node ast.Node, entering bool) *ast.FencedCodeBlock {
	if entering || node.Kind() != ast.KindFencedCodeBlock {
		return nil
	}

	fcb, _ := node.(*ast.FencedCodeBlock)

	return fcb
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte) *Block {
	block := &Block{Code: extractCode(fcb, source)}

	if fcb.Info != nil {
		info := string(fcb.Info.Segment.Value(source))

		lang, meta := parseInfo(info)

		block.Info = strings.TrimSpace(info)
		block.Lang = lang
		block.Meta = meta
	}

	block.StartLine, block.EndLine = extractLines(fcb, source)

	return block
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	lines := fcb.Lines()

	switch {
	case fcb.Info != nil:
		startLine = lineAt(source, fcb.Info.Segment.Start)
	case lines.Len() > 0:
		startLine = lineAt(source, lines.At(0).Start) - 1
	}

	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

// parseInfo splits an info string into the language and its meta. Meta that
// cannot be parsed is dropped; the fence keeps its language.
func parseInfo(info string) (string, Meta) {
	all := reInfo.FindStringSubmatch(info)
	if all == nil {
		return "", nil
	}

	meta, err := parseMeta(all[2])
	if err != nil {
		return all[1], nil
	}

	return all[1], meta
}

var (
	reCommentedCodeBlock = regexp.MustCompile(`^\s*(<!--)?\s*<script\s*type=["']text/markdown["']\s*>\s*$`)
	reFences             = regexp.MustCompile("^\\s*```")
)

// transformCommentedCodeBlock turns a fenced block wrapped in
// <script type="text/markdown"> into a regular fenced code block node.
func transformCommentedCodeBlock(node ast.Node, entering bool, source []byte) ast.Node { //nolint:ireturn
	if entering || node.Kind() != ast.KindHTMLBlock {
		return node
	}

	html, ok := node.(*ast.HTMLBlock)
	if !ok {
		return node
	}

	const minLines = 3

	lines := html.Lines()
	if lines.Len() < minLines {
		return node
	}

	first := lines.At(0)
	if !reCommentedCodeBlock.Match(first.Value(source)) {
		return node
	}

	opening := lines.At(1)
	closing := lines.At(lines.Len() - 1)

	loc := reFences.FindIndex(opening.Value(source))
	if loc == nil || !reFences.Match(closing.Value(source)) {
		return node
	}

	info := ast.NewTextSegment(text.NewSegment(opening.Start+loc[1], opening.Stop-1))
	fcb := ast.NewFencedCodeBlock(info)

	segs := text.NewSegments()
	for i := 2; i < lines.Len()-1; i++ {
		segs.Append(lines.At(i))
	}

	fcb.SetLines(segs)

	return fcb
}
