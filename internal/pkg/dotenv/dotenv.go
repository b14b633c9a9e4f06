// Package dotenv seeds the process environment from a local .env file and
// applies command line overrides on top of it.
package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "HTTP port (overrides PORT from the environment)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("override PORT: %w", err)
		}
	}

	return nil
}
