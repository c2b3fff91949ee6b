package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fduseless/fast-header/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	mt, err := param.Parse("text/html")
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt.MediaType())
	assert.Equal(t, "text", mt.Type())
	assert.Equal(t, "html", mt.Subtype())
	assert.Equal(t, map[string]string{}, mt.Parameters())

	mt, err = param.Parse(" text/html ")
	require.NoError(t, err)
	assert.Equal(t, "text/html", mt.MediaType())

	mt, err = param.Parse("IMAGE/SVG+XML")
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", mt.MediaType())

	mt, err = param.Parse("text/html; charset=utf-8; foo=bar")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"charset": "utf-8", "foo": "bar"}, mt.Parameters())
	assert.Equal(t, "utf-8", mt.Charset())

	mt, err = param.Parse("text/html ; charset=utf-8 ; foo=bar")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"charset": "utf-8", "foo": "bar"}, mt.Parameters())

	mt, err = param.Parse("text/html; Charset=UTF-8")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"charset": "UTF-8"}, mt.Parameters())

	mt, err = param.Parse(`text/html; charset="UTF-8"`)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", mt.Charset())

	mt, err = param.Parse(`text/html; charset = "UT\F-\\\"8\""`)
	require.NoError(t, err)
	assert.Equal(t, `UTF-\"8"`, mt.Charset())

	mt, err = param.Parse(`text/html; param="charset=\"utf-8\"; foo=bar"; bar=foo`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"param": `charset="utf-8"; foo=bar`,
		"bar":   "foo",
	}, mt.Parameters())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	invalid := []string{
		" ",
		"null",
		"undefined",
		"/",
		"text / plain",
		"text/;plain",
		`text/"plain"`,
		"text/p£ain",
		"text/(plain)",
		"text/@plain",
		"text/plain,wrong",
		`text/plain; foo="bar`,
		"text/plain; profile=http://localhost; foo=bar",
		"text/plain; profile=http://localhost",
	}

	for _, v := range invalid {
		_, err := param.Parse(v)
		assert.ErrorIs(t, err, param.ErrInvalidGrammar, v)
	}

	_, err := param.Parse("text/plain; charset=utf-8; CHARSET=latin1")
	assert.ErrorIs(t, err, param.ErrDuplicateParameter)
}

func TestNew(t *testing.T) {
	t.Parallel()

	mt := param.New("text/json", map[string]string{
		"charset": "trash",
	})

	assert.Equal(t, "text/json", mt.MediaType())
	assert.Equal(t, "text", mt.Type())
	assert.Equal(t, "json", mt.Subtype())
	assert.Equal(t, map[string]string{"charset": "trash"}, mt.Parameters())
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text/html", param.New("text/html").String())
	assert.Equal(t, "image/svg+xml", param.New("image/svg+xml").String())
	assert.Equal(t, "text/html; charset=utf-8",
		param.New("text/html", map[string]string{"charset": "utf-8"}).String())
	assert.Equal(t, `text/html; foo="bar or \"baz\""`,
		param.New("text/html", map[string]string{"foo": `bar or "baz"`}).String())
	assert.Equal(t, `text/html; foo=""`,
		param.New("text/html", map[string]string{"foo": ""}).String())
	assert.Equal(t, "text/html; bar=baz; charset=utf-8; foo=bar",
		param.New("text/html", map[string]string{"charset": "utf-8", "foo": "bar", "bar": "baz"}).String())
	assert.Equal(t, "multipart/byteranges; boundary=abc123", param.Multipart("abc123").String())
}

func TestModify(t *testing.T) {
	t.Parallel()

	mt := param.New("text/json")
	assert.Equal(t, "text/json", mt.String())

	nmt := param.Modify(mt,
		param.Set(param.Boundary, "abc123"),
		param.Change("application/json"),
	)
	assert.Equal(t, "application/json; boundary=abc123", nmt.String())
	assert.Equal(t, "text/json", mt.String())

	nmt = param.Modify(nmt,
		param.Change("text/x-json"),
		param.Set(param.Charset, "utf-8"),
		param.Delete(param.Boundary),
	)
	assert.Equal(t, "text/x-json; charset=utf-8", nmt.String())
	assert.Equal(t, []byte("text/x-json; charset=utf-8"), nmt.Bytes())
}

func TestValue_Parameter(t *testing.T) {
	t.Parallel()

	mt := param.New("text/plain", map[string]string{
		"boundary": "abc123",
		"charset":  "latin1",
		"blah":     "BLOOP",
	})

	assert.Equal(t, "abc123", mt.Parameter(param.Boundary))
	assert.Equal(t, "abc123", mt.Boundary())
	assert.Equal(t, "latin1", mt.Charset())
	assert.Equal(t, "BLOOP", mt.Parameter("BLAH"))
	assert.Equal(t, "", mt.Parameter("missing"))
}

func TestParams(t *testing.T) {
	t.Parallel()

	var ps param.Params
	require.NoError(t, ps.Add("Zed", "1"))
	require.NoError(t, ps.Add("alpha", "2"))
	assert.ErrorIs(t, ps.Add("ZED", "3"), param.ErrDuplicateParameter)

	assert.Equal(t, 2, ps.Len())
	assert.Equal(t, []string{"zed", "alpha"}, ps.Names())
	assert.Equal(t, []string{"alpha", "zed"}, ps.SortedNames())

	ps.Set("zed", "4")
	v, ok := ps.Get("Zed")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	c := ps.Clone()
	ps.Delete("zed")
	assert.False(t, ps.Has("zed"))
	assert.True(t, c.Has("zed"))
	assert.Equal(t, []string{"alpha"}, ps.Names())
}
