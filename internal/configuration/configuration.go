package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/chatnex/chatnex/internal/file"
)

// Environment variables honored on top of the config file. These names predate
// this tool and are kept for compatibility with existing deployments.
const (
	apiKeyEnv = "GROQ_API_KEY"
	apiURLEnv = "GROK_API_URL"
	modelEnv  = "GROK_MODEL"
)

var defaultConfig = Config{
	GroqAPIURL:     "https://api.groq.com/openai/v1/chat/completions",
	Model:          "llama-3.1-8b-instant",
	BackendURL:     "http://localhost:5000/chat",
	RequestTimeout: 20,

	Chat: &ChatConfig{
		Directory: "~/.chatnex/chat",
	},
}

// Config holds configuration for the chatnex tool.
type Config struct {
	// Credential for the upstream completion API. Required by `serve`.
	GroqAPIKey string `json:"groq_api_key"`
	// Upstream completion endpoint.
	GroqAPIURL string `json:"groq_api_url"`
	// Model identifier sent upstream.
	Model string `json:"model"`
	// URL the chat client sends messages to.
	BackendURL string `json:"backend_url"`
	// Client-side send timeout, in seconds.
	RequestTimeout int `json:"request_timeout"`

	Chat *ChatConfig `json:"chat"`
}

// ChatConfig holds configuration for local chat storage.
type ChatConfig struct {
	// The directory where we store chats.
	Directory string `json:"directory"`
}

// Parse a configuration file.
func Parse(path string) (*Config, error) {
	path, err := file.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(err, "expanding path")
	}

	if err := initializeIfNotPresent(path); err != nil {
		return nil, errors.Wrap(err, "initializing configuration")
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	config := &Config{}
	if err = json.Unmarshal(bytes, config); err != nil {
		return nil, errors.Wrap(err, "unmarshaling into config")
	}
	if config.Chat == nil {
		config.Chat = defaultConfig.Chat
	}

	// Environment overrides the file.
	if v := os.Getenv(apiKeyEnv); v != "" {
		config.GroqAPIKey = v
	}
	if v := os.Getenv(apiURLEnv); v != "" {
		config.GroqAPIURL = v
	}
	if v := os.Getenv(modelEnv); v != "" {
		config.Model = v
	}

	expandedChatDirectoryPath, err := file.ExpandPath(config.Chat.Directory)
	if err != nil {
		return nil, errors.Wrap(err, "expanding chat directory path")
	}
	config.Chat.Directory = expandedChatDirectoryPath
	return config, nil
}

// save a configuration file.
func (c *Config) save(path string) error {
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return errors.Wrap(err, "writing file")
	}

	return nil
}

// initializeIfNotPresent initializes a config if it does not exist.
func initializeIfNotPresent(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil
	}

	// Create the directories.
	dir, _ := filepath.Split(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating folders")
	}

	if err := defaultConfig.save(path); err != nil {
		return errors.Wrap(err, "saving default config")
	}
	return nil
}
