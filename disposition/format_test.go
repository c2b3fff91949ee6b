package disposition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fduseless/fast-header/disposition"
	"github.com/fduseless/fast-header/param"
)

func TestNew(t *testing.T) {
	t.Parallel()

	v, err := disposition.New()
	require.NoError(t, err)
	assert.Equal(t, "attachment", v.Type())
	assert.Equal(t, "", v.Filename())
	assert.Equal(t, disposition.Fallback{Mode: disposition.FallbackAuto}, v.Fallback())
	assert.Equal(t, map[string]string{}, v.Parameters())
	assert.Equal(t, "attachment", v.String())

	v, err = disposition.New(disposition.WithType("INLINE"))
	require.NoError(t, err)
	assert.Equal(t, "inline", v.String())
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		opts []disposition.Option
		want string
	}{
		{
			name: "filename",
			opts: []disposition.Option{disposition.WithFilename("plans.pdf")},
			want: `attachment; filename="plans.pdf"`,
		},
		{
			name: "basename",
			opts: []disposition.Option{disposition.WithFilename("/path/to/plans.pdf")},
			want: `attachment; filename="plans.pdf"`,
		},
		{
			name: "quote",
			opts: []disposition.Option{disposition.WithFilename(`the "plans".pdf`)},
			want: `attachment; filename="the \"plans\".pdf"`,
		},
		{
			name: "iso-8859-1",
			opts: []disposition.Option{disposition.WithFilename("«plans».pdf")},
			want: `attachment; filename="«plans».pdf"`,
		},
		{
			name: "escape",
			opts: []disposition.Option{disposition.WithFilename(`the "plans" (1µ).pdf`)},
			want: `attachment; filename="the \"plans\" (1µ).pdf"`,
		},
		{
			name: "unicode",
			opts: []disposition.Option{disposition.WithFilename("планы.pdf")},
			want: `attachment; filename="?????.pdf"; filename*=UTF-8''%D0%BF%D0%BB%D0%B0%D0%BD%D1%8B.pdf`,
		},
		{
			name: "auto fallback",
			opts: []disposition.Option{disposition.WithFilename("£ and € rates.pdf")},
			want: `attachment; filename="£ and ? rates.pdf"; filename*=UTF-8''%C2%A3%20and%20%E2%82%AC%20rates.pdf`,
		},
		{
			name: "auto fallback euro",
			opts: []disposition.Option{disposition.WithFilename("€ rates.pdf")},
			want: `attachment; filename="? rates.pdf"; filename*=UTF-8''%E2%82%AC%20rates.pdf`,
		},
		{
			name: "special characters",
			opts: []disposition.Option{disposition.WithFilename("€'*%().pdf")},
			want: `attachment; filename="?'*%().pdf"; filename*=UTF-8''%E2%82%AC%27%2A%25%28%29.pdf`,
		},
		{
			name: "hex escape",
			opts: []disposition.Option{disposition.WithFilename("the%20plans.pdf")},
			want: `attachment; filename="the%20plans.pdf"; filename*=UTF-8''the%2520plans.pdf`,
		},
		{
			name: "unicode and hex escape",
			opts: []disposition.Option{disposition.WithFilename("€%20£.pdf")},
			want: `attachment; filename="?%20£.pdf"; filename*=UTF-8''%E2%82%AC%2520%C2%A3.pdf`,
		},
		{
			name: "no fallback",
			opts: []disposition.Option{
				disposition.WithFilename("£ and € rates.pdf"),
				disposition.WithoutFallback(),
			},
			want: `attachment; filename*=UTF-8''%C2%A3%20and%20%E2%82%AC%20rates.pdf`,
		},
		{
			name: "no fallback iso-8859-1",
			opts: []disposition.Option{
				disposition.WithFilename("£ rates.pdf"),
				disposition.WithoutFallback(),
			},
			want: `attachment; filename="£ rates.pdf"`,
		},
		{
			name: "auto fallback restored",
			opts: []disposition.Option{
				disposition.WithFilename("£ and € rates.pdf"),
				disposition.WithoutFallback(),
				disposition.WithAutoFallback(),
			},
			want: `attachment; filename="£ and ? rates.pdf"; filename*=UTF-8''%C2%A3%20and%20%E2%82%AC%20rates.pdf`,
		},
		{
			name: "auto fallback iso-8859-1",
			opts: []disposition.Option{
				disposition.WithFilename("£ rates.pdf"),
				disposition.WithAutoFallback(),
			},
			want: `attachment; filename="£ rates.pdf"`,
		},
		{
			name: "explicit fallback",
			opts: []disposition.Option{
				disposition.WithFilename("£ and € rates.pdf"),
				disposition.WithFallback("£ and EURO rates.pdf"),
			},
			want: `attachment; filename="£ and EURO rates.pdf"; filename*=UTF-8''%C2%A3%20and%20%E2%82%AC%20rates.pdf`,
		},
		{
			name: "explicit fallback iso-8859-1",
			opts: []disposition.Option{
				disposition.WithFilename(`"£ rates".pdf`),
				disposition.WithFallback("£ rates.pdf"),
			},
			want: `attachment; filename="£ rates.pdf"; filename*=UTF-8''%22%C2%A3%20rates%22.pdf`,
		},
		{
			name: "explicit fallback equal",
			opts: []disposition.Option{
				disposition.WithFilename("plans.pdf"),
				disposition.WithFallback("plans.pdf"),
			},
			want: `attachment; filename="plans.pdf"`,
		},
		{
			name: "explicit fallback basename",
			opts: []disposition.Option{
				disposition.WithFilename("€ rates.pdf"),
				disposition.WithFallback("/path/to/EURO rates.pdf"),
			},
			want: `attachment; filename="EURO rates.pdf"; filename*=UTF-8''%E2%82%AC%20rates.pdf`,
		},
		{
			name: "fallback without filename",
			opts: []disposition.Option{disposition.WithFallback("plans.pdf")},
			want: `attachment`,
		},
		{
			name: "control character",
			opts: []disposition.Option{
				disposition.WithFilename("tab\there.txt"),
				disposition.WithoutFallback(),
			},
			want: `attachment; filename*=UTF-8''tab%09here.txt`,
		},
		{
			name: "type",
			opts: []disposition.Option{disposition.WithType(disposition.Inline)},
			want: `inline`,
		},
		{
			name: "extra parameters",
			opts: []disposition.Option{
				disposition.WithType(disposition.FormData),
				disposition.WithParam("Name", "upload"),
				disposition.WithParam("size", "1024"),
				disposition.WithFilename("plans.pdf"),
				disposition.WithParam("note", "a b"),
				disposition.WithParam("title*", "планы"),
			},
			want: `form-data; filename="plans.pdf"; name=upload; note="a b"; size=1024; title*=UTF-8''%D0%BF%D0%BB%D0%B0%D0%BD%D1%8B`,
		},
		{
			name: "filename parameter",
			opts: []disposition.Option{disposition.WithParam("filename*", "/tmp/планы.pdf")},
			want: `attachment; filename="?????.pdf"; filename*=UTF-8''%D0%BF%D0%BB%D0%B0%D0%BD%D1%8B.pdf`,
		},
		{
			name: "continuation parameter",
			opts: []disposition.Option{disposition.WithParam("filename*0", "foo.")},
			want: `attachment; filename*0=foo.`,
		},
		{
			name: "removed parameter",
			opts: []disposition.Option{
				disposition.WithParam("foo", "bar"),
				disposition.WithParam("baz", "qux"),
				disposition.WithoutParam("FOO"),
			},
			want: `attachment; baz=qux`,
		},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v, err := disposition.New(tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.String())
			assert.Equal(t, []byte(tc.want), v.Bytes())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		opt  disposition.Option
		want error
	}{
		{"quoted type", disposition.WithType(`"attachment"`), param.ErrInvalidGrammar},
		{"empty type", disposition.WithType(""), param.ErrInvalidGrammar},
		{"non-latin1 fallback", disposition.WithFallback("€ rates.pdf"), param.ErrInvalidFallback},
		{"control fallback", disposition.WithFallback("a\nb"), param.ErrInvalidFallback},
		{"binary filename", disposition.WithFilename("\xff\xfe"), param.ErrNonTextParameter},
		{"bad name", disposition.WithParam("foo bar", "x"), param.ErrInvalidGrammar},
		{"empty name", disposition.WithParam("", "x"), param.ErrInvalidGrammar},
		{"binary value", disposition.WithParam("foo", "\xff"), param.ErrNonTextParameter},
		{"unquotable continuation", disposition.WithParam("foo*0", "планы"), param.ErrNonTextParameter},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v, err := disposition.New(tc.opt)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, v)
		})
	}
}

func TestModify(t *testing.T) {
	t.Parallel()

	v, err := disposition.New(disposition.WithFilename("plans.pdf"), disposition.WithParam("foo", "bar"))
	require.NoError(t, err)

	nv, err := disposition.Modify(v,
		disposition.WithType(disposition.Inline),
		disposition.WithFilename("планы.pdf"),
		disposition.WithoutParam("foo"),
	)
	require.NoError(t, err)

	assert.Equal(t, `attachment; filename="plans.pdf"; foo=bar`, v.String())
	assert.Equal(t, `inline; filename="?????.pdf"; filename*=UTF-8''%D0%BF%D0%BB%D0%B0%D0%BD%D1%8B.pdf`, nv.String())

	nv, err = disposition.Modify(v, disposition.WithFallback("€"))
	assert.ErrorIs(t, err, param.ErrInvalidFallback)
	assert.Nil(t, nv)
	assert.Equal(t, `attachment; filename="plans.pdf"; foo=bar`, v.String())
}
