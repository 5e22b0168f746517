package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env, если он есть, и применяет флаг -port поверх PORT.
// Отсутствие файла не ошибка: в контейнере переменные приходят из окружения.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	if flag.Lookup("port") == nil {
		flag.String("port", "", "Server port (overrides PORT environment variable)")
	}
	if !flag.Parsed() {
		flag.Parse()
	}

	if portFlag := flag.Lookup("port").Value.String(); portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
