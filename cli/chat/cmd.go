package chat

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	chatstate "github.com/chatnex/chatnex/chat"
	"github.com/chatnex/chatnex/client"
	"github.com/chatnex/chatnex/internal/configuration"
	"github.com/chatnex/chatnex/store"
)

// NewCmd instantiates and returns the chat command.
func NewCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat interface",
		Long:  "Open the interactive chat interface",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.New(filepath.Join(config.Chat.Directory, "chats.db"))
			if err != nil {
				return errors.Wrap(err, "opening store")
			}
			defer s.Close()

			manager, err := chatstate.NewManager(s)
			if err != nil {
				return errors.Wrap(err, "loading chats")
			}
			sender := client.New(config.BackendURL, time.Duration(config.RequestTimeout)*time.Second)

			model := NewModel(config, manager, sender)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return errors.Wrap(err, "running chat interface")
		},
	}
}
