package cmd

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"
)

// Version is the release of this tool. It may be replaced at link time with
// -ldflags "-X github.com/fduseless/fast-header/cmd/fasthdr/cmd.Version=...".
// A leading "v", as in a git tag, is allowed.
var Version = "0.3.0"

// version is Version parsed. A malformed Version stops the tool at start up.
var version *semver.Version

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of fasthdr",
	Args:  cobra.NoArgs,
	Run:   RunVersion,
}

func init() {
	v, err := parseVersion(Version)
	cobra.CheckErr(err)
	version = v
}

func parseVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return nil, fmt.Errorf("bad version %q: %w", s, err)
	}
	return v, nil
}

// describeVersion formats v for display, naming the pre-release and build
// metadata on their own lines when present.
func describeVersion(v *semver.Version) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "fasthdr v%d.%d.%d\n", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		fmt.Fprintf(b, "pre-release: %s\n", v.PreRelease)
	}
	if v.Metadata != "" {
		fmt.Fprintf(b, "build: %s\n", v.Metadata)
	}
	return b.String()
}

func RunVersion(_ *cobra.Command, _ []string) {
	fmt.Print(describeVersion(version))
}
