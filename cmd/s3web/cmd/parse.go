package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var parseCmd = &cobra.Command{
	Use:   "parse [locator]",
	Short: "Resolve a locator into remote properties",
	Long: `Resolve a locator into the properties of the remote it designates, printed as YAML.

Locators carry no credentials and accept no additional property.`,
	Example: `% s3web parse s3web://demo.titan-data.io/hello-world/postgres
url: http://demo.titan-data.io/hello-world/postgres`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := parseRemote(args)
		if err != nil {
			wrapFatalln("parse locator", err)
			return
		}
		b, err := yaml.Marshal(r.Map())
		if err != nil {
			wrapFatalln("marshal properties", err)
			return
		}
		_, _ = cmd.OutOrStdout().Write(b)
	},
}

func init() {
	addPropertyFlag(parseCmd)
	rootCmd.AddCommand(parseCmd)
}
