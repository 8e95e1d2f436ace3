package cmd

import (
	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var getCmd = &cobra.Command{
	Use:   "get <commit>",
	Short: "Print the properties of a commit",
	Long: `Print the properties of a commit of the remote, as YAML.

Exits with status 1 when the remote has no such commit.`,
	Example: `% s3web get --remote s3web://demo.titan-data.io/hello-world/postgres 0f53a6a4-90ff-4f8c-843a-a6cce36f4f4f
timestamp: "2019-09-20T13:45:37Z"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := parseRemote(nil)
		if err != nil {
			wrapFatalln("parse locator", err)
			return
		}

		ctx, cancel := config.context()
		defer cancel()

		props, found, err := newServer().GetCommit(ctx, r, remote.Parameters{}, args[0])
		if err != nil {
			wrapFatalln("get commit", err)
			return
		}
		if !found {
			wrapFatalWithCodef(1, "commit %s not found", args[0])
			return
		}
		b, err := yaml.Marshal(map[string]interface{}(props))
		if err != nil {
			wrapFatalln("marshal properties", err)
			return
		}
		_, _ = cmd.OutOrStdout().Write(b)
	},
}

func init() {
	addPropertyFlag(getCmd)
	rootCmd.AddCommand(getCmd)
}
