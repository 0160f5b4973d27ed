package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/YaCodeDev/GoYaTgMock/yaerrors"
)

// LoadDotEnv exports KEY=VALUE lines from path into the process environment.
// Variables already set win over the file. A missing file is not an error.
// Blank lines and lines starting with # are skipped; values may be quoted.
func LoadDotEnv(path string) yaerrors.Error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return yaerrors.FromError(http.StatusInternalServerError, err, "open "+path)
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(strings.TrimPrefix(line, "export "), "=", DotEnvKVParts)
		if len(parts) != DotEnvKVParts || strings.TrimSpace(parts[0]) == "" {
			return yaerrors.FromError(
				http.StatusBadRequest,
				ErrInvalidDotEnvFileFormat,
				fmt.Sprintf("%s:%d", path, lineNo),
			)
		}

		key := strings.TrimSpace(parts[0])
		value := unquote(strings.TrimSpace(parts[1]))

		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, value); err != nil {
			return yaerrors.FromError(http.StatusInternalServerError, err, "set "+key)
		}
	}

	if err := scanner.Err(); err != nil {
		return yaerrors.FromError(http.StatusInternalServerError, err, "read "+path)
	}

	return nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}

	return value
}
