package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fduseless/fast-header/byterange"
	"github.com/fduseless/fast-header/cachecontrol"
	"github.com/fduseless/fast-header/disposition"
	"github.com/fduseless/fast-header/etag"
	"github.com/fduseless/fast-header/header"
	"github.com/fduseless/fast-header/param"
)

// parsed is a header value read by one of the field codecs.
type parsed interface {
	fmt.Stringer
}

// field knows how to read a header field and how to describe the result.
type field struct {
	name     string
	parse    func(string) (parsed, error)
	describe func(parsed) any
}

type dispositionView struct {
	Type       string            `json:"type"`
	Filename   string            `json:"filename,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

type contentTypeView struct {
	MediaType  string            `json:"mediaType"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// fields maps the lower-cased field name to its codec.
var fields = map[string]field{
	"content-disposition": {
		name: header.ContentDisposition,
		parse: func(s string) (parsed, error) {
			return disposition.Parse(s)
		},
		describe: func(p parsed) any {
			v := p.(*disposition.Value)
			ps := v.Params()
			if len(ps) == 0 {
				ps = nil
			}
			return dispositionView{Type: v.Type(), Filename: v.Filename(), Parameters: ps}
		},
	},
	"content-type": {
		name: header.ContentType,
		parse: func(s string) (parsed, error) {
			return param.Parse(s)
		},
		describe: func(p parsed) any {
			v := p.(*param.Value)
			ps := v.Parameters()
			if len(ps) == 0 {
				ps = nil
			}
			return contentTypeView{MediaType: v.MediaType(), Parameters: ps}
		},
	},
	"cache-control": {
		name: header.CacheControl,
		parse: func(s string) (parsed, error) {
			return cachecontrol.Parse(s), nil
		},
		describe: func(p parsed) any { return p },
	},
	"content-range": {
		name: header.ContentRange,
		parse: func(s string) (parsed, error) {
			return byterange.ParseContentRange(s)
		},
		describe: func(p parsed) any { return p },
	},
	"etag": {
		name: header.ETag,
		parse: func(s string) (parsed, error) {
			return etag.Parse(s), nil
		},
		describe: func(p parsed) any { return p },
	},
}

func lookupField(name string) (field, error) {
	f, ok := fields[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(fields))
		for n := range fields {
			names = append(names, n)
		}
		sort.Strings(names)
		return field{}, fmt.Errorf("unknown header field %q, expected one of: %s", name, strings.Join(names, ", "))
	}
	return f, nil
}
