package cli

import (
	"github.com/spf13/cobra"

	http "github.com/wesleyorama2/riposte/http"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRequest(cmd, http.MethodPost, args[0])
	},
}

func init() {
	addRequestFlags(postCmd, true)
}
