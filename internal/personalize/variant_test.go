package personalize

import (
	"net/url"
	"testing"

	"devhub/portal/internal/cms"

	"github.com/stretchr/testify/assert"
)

func TestDecodeVariantParam(t *testing.T) {
	values := url.Values{}
	values.Set(QueryParam, "exp1_var2,exp3_var1")
	assert.Equal(t, "exp1_var2,exp3_var1", DecodeVariantParam(values))

	// Percent-encoded values decode.
	values.Set(QueryParam, "exp1_var2%2Cexp3_var1")
	assert.Equal(t, "exp1_var2,exp3_var1", DecodeVariantParam(values))

	assert.Equal(t, "", DecodeVariantParam(url.Values{}))

	// Undecodable input degrades to no variant, no panic.
	values.Set(QueryParam, "bad%zz")
	assert.Equal(t, "", DecodeVariantParam(values))
}

func TestToAliases(t *testing.T) {
	assert.Equal(t, "cs_personalize_exp1_var2", ToAliases("exp1_var2"))
	assert.Equal(t,
		"cs_personalize_exp1_var2,cs_personalize_exp3_var1",
		ToAliases("exp1_var2,exp3_var1"))

	// Malformed tokens are skipped rather than failing the request.
	assert.Equal(t, "cs_personalize_exp1_var2", ToAliases("exp1_var2,garbage"))
	assert.Equal(t, "", ToAliases("garbage"))
	assert.Equal(t, "", ToAliases(",,,"))
	assert.Equal(t, "", ToAliases(""))
}

func TestApplyVariants(t *testing.T) {
	q := cms.NewQuery(cms.ContentTypeProduct).OrderByTitle()

	filtered := ApplyVariants(q, "exp1_var2")
	assert.Equal(t, "cs_personalize_exp1_var2", filtered.VariantAliases)
	assert.Equal(t, q.ContentType, filtered.ContentType)

	// No variant leaves the query untouched.
	assert.Equal(t, q, ApplyVariants(q, ""))
	assert.Equal(t, q, ApplyVariants(q, "not-a-token"))
}
