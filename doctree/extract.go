package doctree

import "strings"

const (
	// DefaultMaxDepth is the depth ceiling used when the caller has no opinion.
	DefaultMaxDepth = 50
	// DefaultMaxNodes bounds the number of nodes a single traversal inspects.
	DefaultMaxNodes = 10000
)

// Limits bounds a traversal. Nodes deeper than MaxDepth, or reached after
// MaxNodes nodes have been inspected, are treated as absent.
type Limits struct {
	MaxDepth int
	MaxNodes int
}

// DefaultLimits returns the limits used by the analyzer unless configured otherwise.
func DefaultLimits() Limits {
	return Limits{MaxDepth: DefaultMaxDepth, MaxNodes: DefaultMaxNodes}
}

type walker struct {
	maxDepth int
	budget   int
}

func newWalker(l Limits) *walker {
	budget := l.MaxNodes
	if budget <= 0 {
		budget = DefaultMaxNodes
	}
	return &walker{maxDepth: l.MaxDepth, budget: budget}
}

// walk visits n and its descendants pre-order. visit returns false to skip the
// descendants of the node it was given. Depth grows by one on every descent,
// including the descent through a root wrapper.
func (w *walker) walk(n *Node, depth int, visit func(n *Node, depth int) bool) {
	if n == nil || depth > w.maxDepth || w.budget <= 0 {
		return
	}
	w.budget--
	if !visit(n, depth) {
		return
	}
	w.descend(n, depth, visit)
}

func (w *walker) descend(n *Node, depth int, visit func(n *Node, depth int) bool) {
	if n.Root != nil {
		w.walk(n.Root, depth+1, visit)
	}
	for _, child := range n.Children {
		w.walk(child, depth+1, visit)
	}
}

// textBelow collects the text leaves under n, which has already been visited.
func (w *walker) textBelow(n *Node, depth int) string {
	var parts []string
	w.descend(n, depth, func(c *Node, _ int) bool {
		if c.Type == TypeText {
			if t := strings.TrimSpace(c.Text); t != "" {
				parts = append(parts, t)
			}
		}
		return true
	})
	return strings.Join(parts, " ")
}

// ExtractText returns the space-joined content of every text leaf of the tree.
func ExtractText(root *Node, maxDepth int) string {
	return Limits{MaxDepth: maxDepth}.Text(root)
}

// ExtractHeadings returns the headings of the tree in document order.
func ExtractHeadings(root *Node, maxDepth int) []Heading {
	return Limits{MaxDepth: maxDepth}.Headings(root)
}

// ExtractLinks returns the links and autolinks of the tree in document order.
func ExtractLinks(root *Node, maxDepth int) []Link {
	return Limits{MaxDepth: maxDepth}.Links(root)
}

// ExtractImages counts the embedded uploads of the tree and their alt texts.
func ExtractImages(root *Node, maxDepth int) ImageStats {
	return Limits{MaxDepth: maxDepth}.Images(root)
}

// ExtractLists returns one entry per list node.
func ExtractLists(root *Node, maxDepth int) []List {
	return Limits{MaxDepth: maxDepth}.Lists(root)
}

// ExtractBlocks returns the paragraphs, headings, images and lists of the tree
// in reading order.
func ExtractBlocks(root *Node, maxDepth int) []Block {
	return Limits{MaxDepth: maxDepth}.Blocks(root)
}

// Text is ExtractText bounded by l.
func (l Limits) Text(root *Node) string {
	var parts []string
	newWalker(l).walk(root, 0, func(n *Node, _ int) bool {
		if n.Type == TypeText {
			if t := strings.TrimSpace(n.Text); t != "" {
				parts = append(parts, t)
			}
		}
		return true
	})
	return strings.Join(parts, " ")
}

// Headings is ExtractHeadings bounded by l.
func (l Limits) Headings(root *Node) []Heading {
	var headings []Heading
	w := newWalker(l)
	w.walk(root, 0, func(n *Node, depth int) bool {
		if n.Type != TypeHeading {
			return true
		}
		h := Heading{Tag: strings.ToLower(n.Tag)}
		if h.Level() == 0 {
			return true
		}
		h.Text = w.textBelow(n, depth)
		headings = append(headings, h)
		return false
	})
	return headings
}

// Links is ExtractLinks bounded by l.
func (l Limits) Links(root *Node) []Link {
	var links []Link
	w := newWalker(l)
	w.walk(root, 0, func(n *Node, depth int) bool {
		if n.Type != TypeLink && n.Type != TypeAutoLink {
			return true
		}
		links = append(links, Link{URL: linkURL(n), Text: w.textBelow(n, depth)})
		return false
	})
	return links
}

func linkURL(n *Node) string {
	if n.Fields != nil {
		if u := strings.TrimSpace(n.Fields.URL); u != "" {
			return u
		}
	}
	return strings.TrimSpace(n.URL)
}

// Images is ExtractImages bounded by l.
func (l Limits) Images(root *Node) ImageStats {
	var stats ImageStats
	newWalker(l).walk(root, 0, func(n *Node, _ int) bool {
		if !isImage(n) {
			return true
		}
		stats.Total++
		if alt := altText(n); alt != "" {
			stats.WithAlt++
			stats.AltTexts = append(stats.AltTexts, alt)
		}
		return false
	})
	return stats
}

func isImage(n *Node) bool {
	return n.Type == TypeUpload || n.Type == TypeImage
}

func altText(n *Node) string {
	if n.Value != nil {
		if alt := strings.TrimSpace(n.Value.Alt); alt != "" {
			return alt
		}
	}
	if n.Fields != nil {
		return strings.TrimSpace(n.Fields.Alt)
	}
	return ""
}

// Lists is ExtractLists bounded by l.
func (l Limits) Lists(root *Node) []List {
	var lists []List
	newWalker(l).walk(root, 0, func(n *Node, _ int) bool {
		if n.Type != TypeList {
			return true
		}
		list := List{ListType: listType(n.ListType)}
		for _, child := range n.Children {
			if child != nil && child.Type == TypeListItem {
				list.ItemCount++
			}
		}
		lists = append(lists, list)
		return true
	})
	return lists
}

func listType(raw string) string {
	switch strings.ToLower(raw) {
	case "number", "numbered", "ordered":
		return "number"
	case "check":
		return "check"
	default:
		return "bullet"
	}
}

// Blocks is ExtractBlocks bounded by l.
func (l Limits) Blocks(root *Node) []Block {
	var blocks []Block
	w := newWalker(l)
	w.walk(root, 0, func(n *Node, depth int) bool {
		switch {
		case n.Type == TypeHeading:
			blocks = append(blocks, Block{Kind: BlockHeading, Tag: strings.ToLower(n.Tag), Text: w.textBelow(n, depth)})
		case n.Type == TypeParagraph || n.Type == TypeQuote:
			if text := w.textBelow(n, depth); text != "" {
				blocks = append(blocks, Block{Kind: BlockParagraph, Text: text})
			}
		case n.Type == TypeList:
			blocks = append(blocks, Block{Kind: BlockList, Text: w.textBelow(n, depth)})
		case isImage(n):
			blocks = append(blocks, Block{Kind: BlockImage, Text: altText(n)})
		default:
			return true
		}
		return false
	})
	return blocks
}
