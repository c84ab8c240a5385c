package pipeline

import (
	"context"
	"fmt"
)

// Renderer turns one Markdown document into the HTML fragment served for it.
type Renderer struct {
	pre       MarkdownPreprocessor
	converter HTMLConverter
}

// NewRenderer creates a Renderer using the Goldmark converter.
func NewRenderer(opts ConverterOptions) *Renderer {
	return &Renderer{
		pre:       &Preprocessor{},
		converter: NewGoldmarkConverter(opts),
	}
}

// NewRendererWith creates a Renderer from explicit stages.
func NewRendererWith(pre MarkdownPreprocessor, converter HTMLConverter) *Renderer {
	return &Renderer{pre: pre, converter: converter}
}

// Render runs the document pipeline on source.
func (r *Renderer) Render(ctx context.Context, source []byte) ([]byte, error) {
	body, _, err := StripFrontMatter(source)
	if err != nil {
		return nil, err
	}

	content := r.pre.PreprocessMarkdown(ctx, string(body))

	fragment, err := r.converter.ToHTML(ctx, content)
	if err != nil {
		return nil, err
	}
	fragment = ConvertMarkPlaceholders(fragment)

	fragment, err = RewriteDocLinks(fragment)
	if err != nil {
		return nil, fmt.Errorf("rewriting links: %w", err)
	}
	return []byte(fragment), nil
}
