package app

import (
	"os"

	"github.com/blackwell-systems/mindweather/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server",
	Long: `Start a Model Context Protocol stdio server so an assistant can read
and compute mind weather. The server exposes four tools:

  compute_mind_weather   Score entries passed in the call (nothing stored)
  get_mind_weather       Latest stored score, or a fresh one from the window
  get_behavior_patterns  Trigger and response sentences from recent entries
  get_score_history      Last N stored scores

Example MCP client configuration:
  {"mcpServers":{"mindweather":{"command":"mindweather","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.close()

	db, err := e.openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	srv := mcp.NewServer(mcp.Deps{
		Calculator:  e.calc,
		Entries:     db,
		Scores:      db,
		DefaultUser: e.user(),
		Lookback:    e.cfg.Lookback(),
		Version:     appVersion,
		Logger:      e.log,
	})
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
