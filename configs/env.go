package configs

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"weather-api/pkg/msg"
	"weather-api/pkg/resource"
)

//go:embed application.yml
var applicationYML []byte

//go:embed messages.yml
var messagesYML []byte

func init() {
	if err := Load(); err != nil {
		panic(err)
	}
}

// Load reads .env (when present) into the environment, then loads properties and messages.
// PROPERTIES_FILE_PATH and MESSAGES_FILE_PATH replace the embedded files.
func Load() error {
	_ = godotenv.Load()

	if path := os.Getenv("PROPERTIES_FILE_PATH"); path != "" {
		if err := resource.Init(path); err != nil {
			return err
		}
	} else if err := resource.Load(applicationYML); err != nil {
		return fmt.Errorf("embedded properties: %w", err)
	}

	if err := msg.Load(messagesYML); err != nil {
		return fmt.Errorf("embedded messages: %w", err)
	}
	if path := os.Getenv("MESSAGES_FILE_PATH"); path != "" {
		return msg.Init(path)
	}
	return nil
}
