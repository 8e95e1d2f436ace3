package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list [locator]",
	Short:   "List the commits of a remote",
	Long:    `List the commits of a remote, most recent first, with their timestamp and tags.`,
	Aliases: []string{"ls"},
	Example: `% s3web list s3web://demo.titan-data.io/hello-world/postgres --tag env=demo
0f53a6a4-90ff-4f8c-843a-a6cce36f4f4f	2019-09-20T13:45:37Z	env=demo`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := parseRemote(args)
		if err != nil {
			wrapFatalln("parse locator", err)
			return
		}
		tags, err := parseTags(s3webFlags.remote.tags)
		if err != nil {
			wrapFatalln("parse tags", err)
			return
		}

		ctx, cancel := config.context()
		defer cancel()

		commits, err := newServer().ListCommits(ctx, r, remote.Parameters{}, tags)
		if err != nil {
			wrapFatalln("list commits", err)
			return
		}
		w := cmd.OutOrStdout()
		for _, commit := range commits {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
				commit.ID,
				color.HiBlackString(commit.Properties.Timestamp()),
				color.CyanString(formatTags(commit.Properties.Tags())),
			)
		}
	},
}

func init() {
	addPropertyFlag(listCmd)
	addTagFlag(listCmd)
	rootCmd.AddCommand(listCmd)
}
