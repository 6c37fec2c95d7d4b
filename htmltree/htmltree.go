// Package htmltree converts an HTML body into the document tree understood by
// the doctree extractors. Markup is sanitized first so that scripts, styles
// and event handlers never reach the analysis.
package htmltree

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/seo-optimizer/contentscore/doctree"
)

var policy = bluemonday.UGCPolicy()

// Parse sanitizes body and returns it as a document tree rooted at a root
// node. An empty body yields an empty root.
func Parse(body string) (*doctree.Node, error) {
	root := &doctree.Node{Type: doctree.TypeRoot}
	if strings.TrimSpace(body) == "" {
		return &doctree.Node{Root: root}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(policy.Sanitize(body)))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	root.Children = convert(doc.Find("body"))
	return &doctree.Node{Root: root}, nil
}

func convert(s *goquery.Selection) []*doctree.Node {
	var nodes []*doctree.Node
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		switch name {
		case "#text":
			if text := c.Text(); strings.TrimSpace(text) != "" {
				nodes = append(nodes, &doctree.Node{Type: doctree.TypeText, Text: text})
			}
		case "h1", "h2", "h3", "h4", "h5", "h6":
			nodes = append(nodes, &doctree.Node{Type: doctree.TypeHeading, Tag: name, Children: convert(c)})
		case "p":
			nodes = append(nodes, &doctree.Node{Type: doctree.TypeParagraph, Children: convert(c)})
		case "blockquote":
			nodes = append(nodes, &doctree.Node{Type: doctree.TypeQuote, Children: convert(c)})
		case "a":
			href, _ := c.Attr("href")
			nodes = append(nodes, &doctree.Node{
				Type:     doctree.TypeLink,
				Fields:   &doctree.Fields{URL: href, NewTab: c.AttrOr("target", "") == "_blank"},
				Children: convert(c),
			})
		case "img":
			nodes = append(nodes, &doctree.Node{
				Type:  doctree.TypeUpload,
				Value: &doctree.Media{URL: c.AttrOr("src", ""), Alt: c.AttrOr("alt", "")},
			})
		case "ul", "ol":
			listType := "bullet"
			if name == "ol" {
				listType = "number"
			}
			nodes = append(nodes, &doctree.Node{Type: doctree.TypeList, ListType: listType, Children: convert(c)})
		case "li":
			nodes = append(nodes, &doctree.Node{Type: doctree.TypeListItem, Children: convert(c)})
		default:
			nodes = append(nodes, convert(c)...)
		}
	})
	return nodes
}
