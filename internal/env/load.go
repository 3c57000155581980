package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Load exports the variables of each env file, ".env" when none is given. Missing files
// are skipped and variables already set in the process win over file values.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error loading env file %s: %w", file, err)
		}
	}
	return nil
}
