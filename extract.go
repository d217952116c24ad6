package urlkit

import (
	"fmt"
	"io"

	"github.com/yields/urlkit/internal/selectors"
	"golang.org/x/net/html"
)

// DefaultSelector selects all links of a document.
const DefaultSelector = `a[href]`

// Extract returns all URLs linked from the given HTML document.
//
// The selector picks the nodes whose `href` attribute is parsed,
// when empty DefaultSelector is used. Links that are not valid
// URLs, such as relative links, are skipped.
//
// The method returns an error if the selector is invalid
// or the document cannot be read.
func Extract(r io.Reader, selector string) ([]*URL, error) {
	if selector == "" {
		selector = DefaultSelector
	}

	sel, err := selectors.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("urlkit: compile selector %q - %w", selector, err)
	}

	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("urlkit: parse html - %w", err)
	}

	var hrefs = selectors.Attrs(root, sel, "href")
	var ret = make([]*URL, 0, len(hrefs))

	for _, href := range hrefs {
		if u, err := Parse(href); err == nil {
			ret = append(ret, u)
		}
	}

	return ret, nil
}
