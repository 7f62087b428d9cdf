package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	xpp "github.com/mmcdole/goxpp"
	"golang.org/x/net/html/charset"
)

// ElementType is the kind of channel element the reader is positioned on
type ElementType int

const (
	// ElementContent is any channel element without a dedicated reader
	ElementContent ElementType = iota
	ElementItem
	ElementLink
	ElementCategory
)

func (t ElementType) String() string {
	switch t {
	case ElementItem:
		return "item"
	case ElementLink:
		return "link"
	case ElementCategory:
		return "category"
	default:
		return "content"
	}
}

// Item is a decoded <item>
type Item struct {
	ID          string
	Title       string
	Description string
	Published   time.Time
}

// Link is a decoded channel <link>
type Link struct {
	URI *url.URL
}

// Category is a decoded channel <category>
type Category struct {
	Name   string
	Domain string
}

// Content is any other channel element reduced to its name and text
type Content struct {
	Name      string
	Namespace string
	Value     string
}

// Reader is a forward-only cursor over the children of an RSS <channel>.
// Each call to Read positions the reader on the next child element; the
// element can then be consumed with the reader matching ElementType, or
// left alone, in which case the next Read skips it.
type Reader struct {
	p        *xpp.XMLPullParser
	rootSeen bool
	pending  bool
	done     bool
}

// NewReader wraps r. Nothing is read until the first call to Read.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		p: xpp.NewXMLPullParser(r, false, charset.NewReaderLabel),
	}
}

// Read advances to the next channel element. It returns false at the end of
// the channel. Before the <rss> root has been seen, an empty or non-XML
// document yields ErrNoFeed; afterwards XML errors yield ErrMalformedFeed.
func (r *Reader) Read() (bool, error) {
	if r.done {
		return false, nil
	}

	if !r.rootSeen {
		if err := r.enterChannel(); err != nil {
			r.done = true
			return false, err
		}
	}

	if r.pending {
		r.pending = false
		if err := r.p.Skip(); err != nil {
			r.done = true
			return false, r.wrap(err)
		}
	}

	for {
		event, err := r.p.Next()
		if err != nil {
			r.done = true
			return false, r.wrap(err)
		}

		switch event {
		case xpp.StartTag:
			r.pending = true
			return true, nil
		case xpp.EndTag:
			// </channel>
			r.done = true
			return false, nil
		case xpp.EndDocument:
			r.done = true
			return false, fmt.Errorf("%w: document ended inside channel", ErrMalformedFeed)
		}
	}
}

// ElementType reports the kind of the current element
func (r *Reader) ElementType() ElementType {
	if r.p.Space != "" {
		return ElementContent
	}
	switch r.p.Name {
	case "item":
		return ElementItem
	case "link":
		return ElementLink
	case "category":
		return ElementCategory
	default:
		return ElementContent
	}
}

// ElementName returns the local name of the current element
func (r *Reader) ElementName() string {
	return r.p.Name
}

type rawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
}

type rawItem struct {
	Children []rawElement `xml:",any"`
}

// ReadItem consumes the current <item>. Only un-namespaced children are
// used, so itunes:title and friends never shadow the RSS fields.
func (r *Reader) ReadItem() (Item, error) {
	if err := r.expect(ElementItem); err != nil {
		return Item{}, err
	}

	var raw rawItem
	if err := r.decode(&raw); err != nil {
		return Item{}, err
	}

	var item Item
	for _, child := range raw.Children {
		if child.XMLName.Space != "" {
			continue
		}
		value := strings.TrimSpace(child.Text)
		switch child.XMLName.Local {
		case "guid":
			item.ID = value
		case "title":
			item.Title = value
		case "description":
			item.Description = value
		case "pubDate":
			published, err := ParseDate(value)
			if err != nil {
				return Item{}, fmt.Errorf("%w: item %q: %v", ErrMalformedFeed, item.ID, err)
			}
			item.Published = published
		}
	}

	return item, nil
}

// ReadLink consumes the current <link>, resolving it against xml:base
func (r *Reader) ReadLink() (Link, error) {
	if err := r.expect(ElementLink); err != nil {
		return Link{}, err
	}

	// xml:base has to be captured while the start tag is still current
	var base *url.URL
	if top := r.p.BaseStack.Top(); top != nil {
		b := *top
		base = &b
	}

	var raw rawElement
	if err := r.decode(&raw); err != nil {
		return Link{}, err
	}

	text := strings.TrimSpace(raw.Text)
	if text == "" {
		return Link{}, nil
	}

	uri, err := url.Parse(text)
	if err != nil {
		return Link{}, fmt.Errorf("%w: link %q: %v", ErrMalformedFeed, text, err)
	}
	if base != nil {
		uri = base.ResolveReference(uri)
	}

	return Link{URI: uri}, nil
}

// ReadCategory consumes the current <category>
func (r *Reader) ReadCategory() (Category, error) {
	if err := r.expect(ElementCategory); err != nil {
		return Category{}, err
	}

	var raw rawElement
	if err := r.decode(&raw); err != nil {
		return Category{}, err
	}

	category := Category{Name: strings.TrimSpace(raw.Text)}
	for _, attr := range raw.Attrs {
		if attr.Name.Local == "domain" {
			category.Domain = attr.Value
		}
	}
	return category, nil
}

// ReadContent consumes the current element as name + text
func (r *Reader) ReadContent() (Content, error) {
	if !r.pending {
		return Content{}, errors.New("reader is not positioned on an element")
	}

	var raw rawElement
	if err := r.decode(&raw); err != nil {
		return Content{}, err
	}

	return Content{
		Name:      raw.XMLName.Local,
		Namespace: raw.XMLName.Space,
		Value:     strings.TrimSpace(raw.Text),
	}, nil
}

// enterChannel finds the <rss> root and its <channel>
func (r *Reader) enterChannel() error {
	event, err := r.nextStart()
	if err != nil {
		return noFeed(err)
	}
	if event == xpp.EndDocument {
		return fmt.Errorf("%w: document has no root element", ErrNoFeed)
	}
	if !strings.EqualFold(r.p.Name, "rss") {
		return fmt.Errorf("%w: unexpected root element <%s>", ErrNoFeed, r.p.Name)
	}
	r.rootSeen = true

	for {
		event, err := r.p.Next()
		if err != nil {
			return r.wrap(err)
		}
		switch event {
		case xpp.StartTag:
			if r.p.Space == "" && r.p.Name == "channel" {
				return nil
			}
			if err := r.p.Skip(); err != nil {
				return r.wrap(err)
			}
		case xpp.EndTag, xpp.EndDocument:
			return fmt.Errorf("%w: rss document has no channel", ErrMalformedFeed)
		}
	}
}

// nextStart advances to the first start tag or the end of the document
func (r *Reader) nextStart() (xpp.XMLEventType, error) {
	for {
		event, err := r.p.Next()
		if err != nil {
			return event, err
		}
		if event == xpp.StartTag || event == xpp.EndDocument {
			return event, nil
		}
	}
}

func (r *Reader) expect(want ElementType) error {
	if !r.pending {
		return errors.New("reader is not positioned on an element")
	}
	if got := r.ElementType(); got != want {
		return fmt.Errorf("reader is positioned on %s, not %s", got, want)
	}
	return nil
}

func (r *Reader) decode(v any) error {
	r.pending = false
	if err := r.p.DecodeElement(v); err != nil {
		r.done = true
		return r.wrap(err)
	}
	return nil
}

// wrap classifies an error raised after the root element was seen
func (r *Reader) wrap(err error) error {
	if isSyntaxError(err) {
		return fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	return err
}

func noFeed(err error) error {
	if isSyntaxError(err) {
		return fmt.Errorf("%w: %v", ErrNoFeed, err)
	}
	return err
}

func isSyntaxError(err error) bool {
	var syntaxErr *xml.SyntaxError
	return errors.As(err, &syntaxErr) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF)
}
