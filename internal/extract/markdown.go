package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdown renders CommonMark plus GFM tables, strikethrough, and
// autolinks. Rendering to HTML first lets block structure drive the
// paragraph breaks instead of the source line wrapping.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// blockCloseBreaks maps HTML block boundaries to blank lines before the
// remaining tags are stripped, mirroring the Word paragraph handling.
var blockCloseBreaks = strings.NewReplacer(
	"</p>", "\n\n",
	"</h1>", "\n\n",
	"</h2>", "\n\n",
	"</h3>", "\n\n",
	"</h4>", "\n\n",
	"</h5>", "\n\n",
	"</h6>", "\n\n",
	"</li>", "\n\n",
	"</blockquote>", "\n\n",
	"</pre>", "\n\n",
	"</tr>", "\n\n",
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
)

// htmlEntities restores the characters goldmark escapes in its output.
var htmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
)

// markdownToText converts Markdown to plain paragraphs. Inline markup is
// dropped, headings and list items become their own paragraphs, and code
// blocks keep their text.
func markdownToText(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	text := blockCloseBreaks.Replace(buf.String())
	text = xmlTags.ReplaceAllString(text, "")
	text = htmlEntities.Replace(text)

	text = normalizeWhitespace(text)
	if text == "" {
		return "", ErrNoTextContent
	}
	return text, nil
}
