package phrases

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads one phrase per line. Blank lines and lines starting with '#' are skipped.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only phrase file.
			_ = cerr
		}
	}()

	var out []string
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = Normalize(line)
		if err := Validate(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("phrase file is empty")
	}
	return out, nil
}
