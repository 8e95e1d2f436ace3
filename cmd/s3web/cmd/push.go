package cmd

import (
	"fmt"
	"time"

	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:   "push <commit>",
	Short: "Push a commit (not supported)",
	Long:  `Web remotes are read-only: pushing always fails.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := parseRemote(nil)
		if err != nil {
			wrapFatalln("parse locator", err)
			return
		}

		ctx, cancel := config.context()
		defer cancel()

		op := remote.NewOperation(remote.Push, r, fmt.Sprintf("push-%d", time.Now().UnixNano()), args[0])
		if err = newServer().StartOperation(ctx, op); err != nil {
			wrapFatalln("push commit "+args[0], err)
			return
		}
	},
}

func init() {
	addPropertyFlag(pushCmd)
	rootCmd.AddCommand(pushCmd)
}
