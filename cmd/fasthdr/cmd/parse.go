package cmd

import (
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/fduseless/fast-header/disposition"
	"github.com/fduseless/fast-header/param"
)

var (
	parseCmd = &cobra.Command{
		Use:   "parse field value",
		Short: "Parse a header value and describe it",
		Args:  cobra.ExactArgs(2),
		Run:   RunParse,
	}

	asJSON bool
)

func init() {
	parseCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "describe the parsed value as JSON")
}

func RunParse(_ *cobra.Command, args []string) {
	f, err := lookupField(args[0])
	if err != nil {
		fail(err)
	}

	v, err := f.parse(args[1])
	if err != nil {
		fail(fmt.Errorf("%s: %w", f.name, err))
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(f.describe(v)); err != nil {
			fail(err)
		}
		return
	}

	fmt.Printf("%s: %s\n", f.name, v)
	switch pv := v.(type) {
	case *disposition.Value:
		fmt.Printf("  type = %s\n", pv.Type())
		if fn := pv.Filename(); fn != "" {
			fmt.Printf("  filename = %q\n", fn)
		}
		printParams(pv.Params())
	case *param.Value:
		fmt.Printf("  media type = %s\n", pv.MediaType())
		printParams(pv.Parameters())
	}
}

func printParams(ps map[string]string) {
	names := make([]string, 0, len(ps))
	for n := range ps {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Printf("  %s = %q\n", n, ps[n])
	}
}
