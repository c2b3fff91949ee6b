package cmd

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupField(t *testing.T) {
	t.Parallel()

	f, err := lookupField("Content-Disposition")
	require.NoError(t, err)
	assert.Equal(t, "Content-Disposition", f.name)

	_, err = lookupField("X-Unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache-control, content-disposition, content-range, content-type, etag")
}

func TestFields_Describe(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		field, in, canonical, json string
	}{
		{
			"content-disposition",
			`ATTACHMENT; filename*=UTF-8''%E2%82%AC%20rates.pdf; size=10`,
			`attachment; filename="? rates.pdf"; filename*=UTF-8''%E2%82%AC%20rates.pdf; size=10`,
			`{"type":"attachment","filename":"€ rates.pdf","parameters":{"size":"10"}}`,
		},
		{
			"content-type",
			`Text/Plain`,
			`text/plain`,
			`{"mediaType":"text/plain"}`,
		},
		{
			"cache-control",
			`public,max-age=60`,
			`max-age=60, public`,
			`{"max-age":60,"s-maxage":null,"max-stale":null,"max-stale-any":false,"min-fresh":null,"stale-while-revalidate":null,"stale-if-error":null,"no-cache":false,"no-store":false,"no-transform":false,"only-if-cached":false,"must-revalidate":false,"proxy-revalidate":false,"must-understand":false,"private":false,"public":true,"immutable":false}`,
		},
		{
			"content-range",
			`bytes */30`,
			`bytes */30`,
			`{"unit":"bytes","range":null,"size":30}`,
		},
		{
			"etag",
			`W/"abc"`,
			`W/"abc"`,
			`{"weak":true,"opaque":"abc"}`,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.field, func(t *testing.T) {
			t.Parallel()

			f, err := lookupField(tc.field)
			require.NoError(t, err)

			v, err := f.parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.canonical, v.String())

			b, err := json.Marshal(f.describe(v))
			require.NoError(t, err)
			assert.JSONEq(t, tc.json, string(b))
		})
	}
}
