package main

import (
	"github.com/spf13/cobra"

	"github.com/chatnex/chatnex/chat"
	clichat "github.com/chatnex/chatnex/cli/chat"
	"github.com/chatnex/chatnex/internal/configuration"
	"github.com/chatnex/chatnex/server"
)

const configFilepath = "~/.chatnex/config.json"

var rootCmd = &cobra.Command{
	Use:   "chatnex",
	Short: "A minimal LLM chat client and proxy",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(clichat.NewCmd(config))
	rootCmd.AddCommand(chat.NewListCmd(config))
	rootCmd.AddCommand(chat.NewDeleteCmd(config))
	rootCmd.AddCommand(server.NewCmd(config))
	rootCmd.Execute()
}
