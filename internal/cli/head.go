package cli

import (
	"github.com/spf13/cobra"

	http "github.com/wesleyorama2/riposte/http"
)

var headCmd = &cobra.Command{
	Use:   "head URL",
	Short: "Make a HEAD request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodHead, args[0])
	},
}

func init() {
	addRequestFlags(headCmd, false)
}
