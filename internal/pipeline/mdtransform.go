package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged (no WithUnsafe needed) and are
// converted to <mark> tags after HTML generation.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	highlightPattern   = regexp.MustCompile(`==([^=\n]+?)==`)
	inlineCode         = regexp.MustCompile("`[^`\n]*`")
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// Preprocessor normalizes Markdown before Goldmark conversion.
type Preprocessor struct{}

// PreprocessMarkdown normalizes line endings, turns ==text== outside code
// into mark placeholders and compresses runs of blank lines.
func (p *Preprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = convertHighlights(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
// Fenced code keeps its blank lines.
func compressBlankLines(content string) string {
	return mapOutsideFences(content, func(chunk string) string {
		return multipleBlankLines.ReplaceAllString(chunk, "\n\n")
	})
}

// convertHighlights transforms ==text== to placeholder markers, leaving
// fenced code blocks and inline code spans untouched.
func convertHighlights(content string) string {
	return mapOutsideFences(content, func(chunk string) string {
		return mapOutsideInlineCode(chunk, func(s string) string {
			return highlightPattern.ReplaceAllString(s, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
		})
	})
}

// mapOutsideFences applies fn to every run of lines outside ``` and ~~~
// fenced blocks. An unterminated fence extends to the end of content.
func mapOutsideFences(content string, fn func(string) string) string {
	lines := strings.SplitAfter(content, "\n")

	var out, chunk strings.Builder
	fence := ""
	flush := func() {
		out.WriteString(fn(chunk.String()))
		chunk.Reset()
	}

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case fence == "" && (strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")):
			flush()
			fence = trimmed[:3]
			out.WriteString(line)
		case fence != "":
			out.WriteString(line)
			if strings.HasPrefix(trimmed, fence) && strings.TrimSpace(strings.TrimLeft(trimmed, fence[:1])) == "" {
				fence = ""
			}
		default:
			chunk.WriteString(line)
		}
	}
	flush()
	return out.String()
}

// mapOutsideInlineCode applies fn to the text between `code` spans.
func mapOutsideInlineCode(s string, fn func(string) string) string {
	spans := inlineCode.FindAllStringIndex(s, -1)
	if len(spans) == 0 {
		return fn(s)
	}

	var out strings.Builder
	last := 0
	for _, sp := range spans {
		out.WriteString(fn(s[last:sp[0]]))
		out.WriteString(s[sp[0]:sp[1]])
		last = sp[1]
	}
	out.WriteString(fn(s[last:]))
	return out.String()
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after Goldmark HTML conversion to finalize highlight markup.
func ConvertMarkPlaceholders(content string) string {
	return strings.NewReplacer(
		MarkStartPlaceholder, "<mark>",
		MarkEndPlaceholder, "</mark>",
	).Replace(content)
}
