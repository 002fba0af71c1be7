// Package personalize is the boundary to the personalization SDK. The SDK
// runs at the edge and annotates requests with a variant query parameter;
// this package decodes it and turns it into the alias filter the delivery
// API understands. Decoding is never fatal: anything malformed degrades to
// "no variant" and the query runs unfiltered.
package personalize

import (
	"net/url"
	"strings"

	"devhub/portal/internal/cms"

	log "github.com/sirupsen/logrus"
)

// QueryParam is the well-known query-string key the personalization SDK
// emits on personalized requests.
const QueryParam = "cs_personalize_variants"

// aliasPrefix turns an experience_variant token into a query alias.
const aliasPrefix = "cs_personalize_"

// DecodeVariantParam extracts the variant parameter from request query
// values, percent-decoding it. Returns "" when absent or undecodable.
func DecodeVariantParam(values url.Values) string {
	raw := values.Get(QueryParam)
	if raw == "" {
		return ""
	}

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		log.Warnf("Failed to decode variant parameter %q: %v", raw, err)
		return ""
	}
	return decoded
}

// ToAliases converts a decoded variant parameter into the comma-joined alias
// list understood by the delivery API's variant filter. Returns "" when the
// parameter carries no usable tokens.
func ToAliases(variantParam string) string {
	if variantParam == "" {
		return ""
	}

	tokens := strings.Split(variantParam, ",")
	aliases := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		// Tokens are "experienceShortUID_variantShortUID".
		if !strings.Contains(token, "_") {
			log.Warnf("Skipping malformed variant token %q", token)
			continue
		}
		aliases = append(aliases, aliasPrefix+token)
	}

	if len(aliases) == 0 {
		return ""
	}
	return strings.Join(aliases, ",")
}

// ApplyVariants attaches the alias filter to a query when a variant is
// present; otherwise the query is returned unchanged.
func ApplyVariants(q cms.Query, variantParam string) cms.Query {
	aliases := ToAliases(variantParam)
	if aliases == "" {
		return q
	}
	q.VariantAliases = aliases
	return q
}
