package chat

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chatnex/chatnex/internal/cli"
	"github.com/chatnex/chatnex/internal/configuration"
	"github.com/chatnex/chatnex/store"
)

// NewListCmd instantiates and returns the chat list command.
func NewListCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all chats",
		Long:  "List all chats",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			s, err := store.New(filepath.Join(config.Chat.Directory, "chats.db"))
			cobra.CheckErr(err)
			defer s.Close()

			chats, err := s.LoadChats()
			cobra.CheckErr(err)
			currentChatID, err := s.CurrentChatID()
			cobra.CheckErr(err)

			cli.Title("CHATNEX CHATS")
			if len(chats) == 0 {
				cli.BotOutput("No chat history yet\n")
				return
			}
			for _, chat := range chats {
				if chat.ID == currentChatID {
					cli.ActiveMarker("* ")
				} else {
					cli.UserInput("  ")
				}
				cli.UserInput("%s (%s)\n", chat.Title, chat.ID)
				cli.Timestamp("    %s · %d messages\n", chat.UpdatedAt.Format("1/2/2006 3:04 PM"), len(chat.Messages))
			}
		},
	}
}
