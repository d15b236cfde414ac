package mdcode

// Unfence parses a Markdown document and returns all fenced code blocks in
// document order.
func Unfence(source []byte) (Blocks, error) {
	var blocks Blocks

	err := Walk(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

// Langs returns the distinct languages of blocks in first-seen order.
func (b Blocks) Langs() []string {
	seen := make(map[string]struct{})

	var langs []string

	for _, block := range b {
		if _, ok := seen[block.Lang]; ok {
			continue
		}

		seen[block.Lang] = struct{}{}
		langs = append(langs, block.Lang)
	}

	return langs
}
