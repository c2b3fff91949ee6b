package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fduseless/fast-header/disposition"
)

var (
	dispositionCmd = &cobra.Command{
		Use:   "disposition",
		Short: "Build a Content-Disposition header value",
		Args:  cobra.NoArgs,
		Run:   RunDisposition,
	}

	dispType   string
	filename   string
	fallback   string
	noFallback bool
	params     []string
)

func init() {
	dispositionCmd.Flags().StringVarP(&dispType, "type", "t", disposition.Attachment, "the disposition type")
	dispositionCmd.Flags().StringVarP(&filename, "filename", "f", "", "the filename to suggest")
	dispositionCmd.Flags().StringVar(&fallback, "fallback", "", "an ISO-8859-1 filename for clients without filename* support")
	dispositionCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "never write a fallback filename")
	dispositionCmd.Flags().StringArrayVarP(&params, "param", "p", nil, "an extra parameter as name=value (repeatable)")
	dispositionCmd.MarkFlagsMutuallyExclusive("fallback", "no-fallback")
}

func RunDisposition(_ *cobra.Command, _ []string) {
	opts := []disposition.Option{
		disposition.WithType(dispType),
		disposition.WithFilename(filename),
	}

	switch {
	case noFallback:
		opts = append(opts, disposition.WithoutFallback())
	case fallback != "":
		opts = append(opts, disposition.WithFallback(fallback))
	}

	for _, p := range params {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			fail(fmt.Errorf("parameter %q is not in name=value form", p))
		}
		opts = append(opts, disposition.WithParam(name, value))
	}

	v, err := disposition.New(opts...)
	if err != nil {
		fail(err)
	}

	fmt.Println(v)
}
