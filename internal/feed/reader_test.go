package feed

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const channelFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
  <channel>
    <title>Channel</title>
    <link>https://example.com/show</link>
    <atom:link href="https://example.com/feed.xml" rel="self"/>
    <category domain="dr">Nyheder</category>
    <itunes:category text="News"/>
    <image><url>https://example.com/a.jpg</url></image>
    <item>
      <guid>ep-1</guid>
      <title>First</title>
      <itunes:title>Ignored</itunes:title>
      <description><![CDATA[<p>Hello</p>]]></description>
      <pubDate>Fri, 07 Feb 2020 14:30:00 +0200</pubDate>
    </item>
  </channel>
</rss>`

type element struct {
	kind ElementType
	name string
}

func readAll(t *testing.T, r *Reader) []element {
	t.Helper()
	var elements []element
	for {
		ok, err := r.Read()
		require.NoError(t, err)
		if !ok {
			return elements
		}
		elements = append(elements, element{kind: r.ElementType(), name: r.ElementName()})
	}
}

func TestReader_ElementTypes(t *testing.T) {
	r := NewReader(strings.NewReader(channelFeed))

	elements := readAll(t, r)

	assert.Equal(t, []element{
		{ElementContent, "title"},
		{ElementLink, "link"},
		{ElementContent, "link"},
		{ElementCategory, "category"},
		{ElementContent, "category"},
		{ElementContent, "image"},
		{ElementItem, "item"},
	}, elements)
}

func TestReader_TypedReaders(t *testing.T) {
	r := NewReader(strings.NewReader(channelFeed))

	var (
		contents   []Content
		links      []Link
		categories []Category
		items      []Item
	)

	for {
		ok, err := r.Read()
		require.NoError(t, err)
		if !ok {
			break
		}
		switch r.ElementType() {
		case ElementItem:
			item, err := r.ReadItem()
			require.NoError(t, err)
			items = append(items, item)
		case ElementLink:
			link, err := r.ReadLink()
			require.NoError(t, err)
			links = append(links, link)
		case ElementCategory:
			category, err := r.ReadCategory()
			require.NoError(t, err)
			categories = append(categories, category)
		default:
			content, err := r.ReadContent()
			require.NoError(t, err)
			contents = append(contents, content)
		}
	}

	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/show", links[0].URI.String())

	require.Len(t, categories, 1)
	assert.Equal(t, Category{Name: "Nyheder", Domain: "dr"}, categories[0])

	require.Len(t, contents, 4)
	assert.Equal(t, "title", contents[0].Name)
	assert.Equal(t, "", contents[0].Namespace)
	assert.Equal(t, "Channel", contents[0].Value)
	assert.Equal(t, "link", contents[1].Name)
	assert.Equal(t, "http://www.w3.org/2005/Atom", contents[1].Namespace)

	require.Len(t, items, 1)
	assert.Equal(t, "ep-1", items[0].ID)
	assert.Equal(t, "First", items[0].Title)
	assert.Equal(t, "<p>Hello</p>", items[0].Description)
	assert.True(t, items[0].Published.Equal(time.Date(2020, 2, 7, 12, 30, 0, 0, time.UTC)))
	_, offset := items[0].Published.Zone()
	assert.Equal(t, 2*60*60, offset)
}

func TestReader_LinkResolvesXMLBase(t *testing.T) {
	doc := `<rss version="2.0"><channel xml:base="https://example.com/shows/"><link>daily</link></channel></rss>`
	r := NewReader(strings.NewReader(doc))

	ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, ElementLink, r.ElementType())

	link, err := r.ReadLink()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/shows/daily", link.URI.String())
}

func TestReader_EmptyLink(t *testing.T) {
	r := NewReader(strings.NewReader(`<rss><channel><link/></channel></rss>`))

	ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)

	link, err := r.ReadLink()
	require.NoError(t, err)
	assert.Nil(t, link.URI)
}

func TestReader_NoFeed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "whitespace body", body: "  \n\t"},
		{name: "declaration only", body: `<?xml version="1.0" encoding="UTF-8"?>`},
		{name: "broken before root", body: `<?xml version="1.0"?><rs`},
		{name: "html error page", body: `<html><body>Not here</body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.body))

			ok, err := r.Read()

			assert.False(t, ok)
			assert.True(t, errors.Is(err, ErrNoFeed), "got %v", err)

			// the reader stays finished
			ok, err = r.Read()
			assert.False(t, ok)
			assert.NoError(t, err)
		})
	}
}

func TestReader_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated channel", body: `<rss><channel><title>x</title><item><guid>1</gu`},
		{name: "ends inside channel", body: `<rss><channel><title>x</title>`},
		{name: "ends inside item text", body: `<rss><channel><item><title>abc`},
		{name: "missing channel", body: `<rss version="2.0"></rss>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.body))

			var err error
			for {
				var ok bool
				ok, err = r.Read()
				if err != nil || !ok {
					break
				}
				_, err = r.ReadContent()
				if err != nil {
					break
				}
			}

			assert.True(t, errors.Is(err, ErrMalformedFeed), "got %v", err)
			assert.False(t, errors.Is(err, ErrNoFeed))
		})
	}
}

func TestReader_StopsAfterSkipError(t *testing.T) {
	r := NewReader(strings.NewReader(`<rss><channel><image><url>a</url>`))

	ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "image", r.ElementName())

	ok, err = r.Read()
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrMalformedFeed), "got %v", err)

	ok, err = r.Read()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestReader_BadPubDate(t *testing.T) {
	doc := `<rss><channel><item><guid>1</guid><pubDate>someday</pubDate></item></channel></rss>`
	r := NewReader(strings.NewReader(doc))

	ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)

	_, err = r.ReadItem()
	assert.True(t, errors.Is(err, ErrMalformedFeed))
}

func TestReader_SkipsUnreadElements(t *testing.T) {
	doc := `<rss><channel><image><url>a</url><title>b</title></image><item><guid>1</guid></item><title>T</title></channel></rss>`
	r := NewReader(strings.NewReader(doc))

	elements := readAll(t, r)

	assert.Equal(t, []element{
		{ElementContent, "image"},
		{ElementItem, "item"},
		{ElementContent, "title"},
	}, elements)
}

func TestReader_WrongTypedReader(t *testing.T) {
	r := NewReader(strings.NewReader(`<rss><channel><title>T</title></channel></rss>`))

	ok, err := r.Read()
	require.NoError(t, err)
	require.True(t, ok)

	_, err = r.ReadItem()
	assert.Error(t, err)

	// still positioned, so the content can be read
	content, err := r.ReadContent()
	require.NoError(t, err)
	assert.Equal(t, "T", content.Value)
}

func TestElementType_String(t *testing.T) {
	assert.Equal(t, "item", ElementItem.String())
	assert.Equal(t, "link", ElementLink.String())
	assert.Equal(t, "category", ElementCategory.String())
	assert.Equal(t, "content", ElementContent.String())
}
