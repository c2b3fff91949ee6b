package cmd

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip field value",
	Short: "Shows the diff between a header value and its canonical form",
	Args:  cobra.ExactArgs(2),
	Run:   RunRoundtrip,
}

func RunRoundtrip(_ *cobra.Command, args []string) {
	f, err := lookupField(args[0])
	if err != nil {
		fail(err)
	}

	in := args[1]
	v, err := f.parse(in)
	if err != nil {
		fail(fmt.Errorf("%s: %w", f.name, err))
	}
	out := v.String()

	fmt.Printf("in  = %s\n", in)
	fmt.Printf("out = %s\n", out)

	if in == out {
		fmt.Println("canonical")
		return
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(in, out, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
