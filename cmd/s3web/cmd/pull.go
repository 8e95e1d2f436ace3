package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oneconcern/s3web/pkg/remote"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull <commit>",
	Short: "Download the volume archives of a commit",
	Long: `Download the archives of some volumes of a commit into a local directory.

Each volume is written as <destination>/<volume>.tar.gz. Volumes are pulled concurrently
within a single pull operation, which fails as soon as one volume fails.`,
	Example: `% s3web pull --remote s3web://demo.titan-data.io/hello-world/postgres 0f53a6a4 --volume v0 --destination /tmp`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := parseRemote(nil)
		if err != nil {
			wrapFatalln("parse locator", err)
			return
		}
		if err = os.MkdirAll(s3webFlags.pull.destination, 0700); err != nil {
			wrapFatalln("create destination", err)
			return
		}

		ctx, cancel := config.context()
		defer cancel()

		server := newServer()
		commitID := args[0]
		if _, found, erg := server.GetCommit(ctx, r, remote.Parameters{}, commitID); erg != nil || !found {
			if erg == nil {
				wrapFatalWithCodef(1, "commit %s not found", commitID)
				return
			}
			wrapFatalln("get commit", erg)
			return
		}

		op := remote.NewOperation(remote.Pull, r, fmt.Sprintf("pull-%d", time.Now().UnixNano()), commitID)
		if err = server.StartOperation(ctx, op); err != nil {
			wrapFatalln("start pull", err)
			return
		}

		volumes := s3webFlags.pull.volumes
		archives := make([]string, len(volumes))
		p := pool.New().WithMaxGoroutines(config.Concurrency).WithContext(ctx).WithCancelOnError()
		for i, volume := range volumes {
			archives[i] = filepath.Join(s3webFlags.pull.destination, volume+".tar.gz")
			archive := archives[i]
			p.Go(func(ctx context.Context) error {
				if erp := server.PullArchive(ctx, op, volume, archive); erp != nil {
					return fmt.Errorf("pull volume %s: %w", volume, erp)
				}
				return nil
			})
		}
		err = p.Wait()

		if ere := server.EndOperation(ctx, op, err == nil); ere != nil && err == nil {
			err = ere
		}
		if err != nil {
			wrapFatalln("pull commit "+commitID, err)
			return
		}
		for _, archive := range archives {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), archive)
		}
	},
}

func init() {
	requireFlags(pullCmd, addVolumeFlag(pullCmd))
	addDestinationFlag(pullCmd)
	addConcurrencyFlag(pullCmd)
	addPropertyFlag(pullCmd)
	rootCmd.AddCommand(pullCmd)
}
