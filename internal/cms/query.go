package cms

// Content type UIDs in the remote source.
const (
	ContentTypeProduct  = "product"
	ContentTypeHomepage = "homepage"
)

// Query describes one entries request against the delivery API: which
// content type, an optional slug equality filter, optional title ordering,
// selective field projection, reference inclusion for nested relations, and
// an optional personalization alias filter.
type Query struct {
	ContentType    string
	SlugEquals     string
	OrderAscBy     string
	Only           []string // top-level field projection; empty means all fields
	Include        []string // reference paths to resolve inline
	VariantAliases string   // comma-joined personalization aliases
}

// NewQuery creates a query for a content type.
func NewQuery(contentType string) Query {
	return Query{ContentType: contentType}
}

// WhereSlug filters entries by slug equality.
func (q Query) WhereSlug(slug string) Query {
	q.SlugEquals = slug
	return q
}

// OrderByTitle sorts entries ascending by title.
func (q Query) OrderByTitle() Query {
	q.OrderAscBy = "title"
	return q
}

// OnlyFields restricts the response to the given top-level fields.
func (q Query) OnlyFields(fields ...string) Query {
	q.Only = append(q.Only, fields...)
	return q
}

// IncludeReferences resolves the given reference paths inline.
func (q Query) IncludeReferences(paths ...string) Query {
	q.Include = append(q.Include, paths...)
	return q
}
