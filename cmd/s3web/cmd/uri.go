package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uriCmd = &cobra.Command{
	Use:   "uri",
	Short: "Print the locator of a remote",
	Long:  `Print the locator designating a remote, given its url property.`,
	Example: `% s3web uri --url http://demo.titan-data.io/hello-world/postgres
s3web://demo.titan-data.io/hello-world/postgres`,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := newServer().ValidateRemote(map[string]interface{}{"url": s3webFlags.remote.url})
		if err != nil {
			wrapFatalln("invalid remote", err)
			return
		}
		loc, _ := client.ToLocator(r)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), loc)
	},
}

func init() {
	requireFlags(uriCmd, addURLFlag(uriCmd))
	rootCmd.AddCommand(uriCmd)
}
