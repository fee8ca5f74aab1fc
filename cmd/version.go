package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/killallgit/nzwalks-api/api/types"
	"github.com/killallgit/nzwalks-api/api/version"
	"github.com/spf13/cobra"
)

// Build variables, set at link time with -ldflags "-X ..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
	OS        = runtime.GOOS
	Arch      = runtime.GOARCH
)

// versionReport uses the field names of the GET / body, plus the toolchain
// and platform
type versionReport struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build metadata",
	Long: `Print the release, commit and build time of this binary together with
the Go toolchain and platform it was built for.

Use --output json for the same fields the root endpoint reports.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().StringP("output", "o", "text", "output format (text or json)")
}

// buildInfo reports the ldflags build variables to the HTTP layer
func buildInfo() types.BuildInfo {
	return types.BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintf(out, "v%s\n", Version)
		return nil
	}

	report := versionReport{
		Name:      version.Name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		Platform:  OS + "/" + Arch,
	}

	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		fmt.Fprintf(out, "%s v%s\n", report.Name, report.Version)
		fmt.Fprintf(out, "  commit    %s\n", report.GitCommit)
		fmt.Fprintf(out, "  built     %s\n", report.BuildTime)
		fmt.Fprintf(out, "  runtime   %s %s\n", report.GoVersion, report.Platform)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}
