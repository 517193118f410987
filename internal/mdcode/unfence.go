package mdcode

// Unfence parses a Markdown document and returns the fenced code blocks that
// carry metadata, in document order.
func Unfence(source []byte) (Blocks, error) {
	var blocks Blocks

	err := Walk(source, func(block *Block) error {
		if reMeta.Match(block.Meta) {
			blocks = append(blocks, block)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}
