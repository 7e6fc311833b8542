package chat

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chatnex/chatnex/internal/cli"
	"github.com/chatnex/chatnex/internal/configuration"
	"github.com/chatnex/chatnex/store"
)

// NewDeleteCmd instantiates and returns the chat delete command.
func NewDeleteCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <chat-id>",
		Short: "Delete a chat",
		Long:  "Delete a chat",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cli.QueryUser("Are you sure you want to delete this chat?") {
				return
			}

			s, err := store.New(filepath.Join(config.Chat.Directory, "chats.db"))
			cobra.CheckErr(err)
			defer s.Close()

			manager, err := NewManager(s)
			cobra.CheckErr(err)
			cobra.CheckErr(manager.DeleteChat(args[0]))
			cli.UserInput("Deleted chat %s\n", args[0])
		},
	}
}
