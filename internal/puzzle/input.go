package puzzle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/marble-mania/internal/apperror"
)

var inputPattern = regexp.MustCompile(`^(\d+) players; last marble is worth (\d+) points$`)

// Input is a parsed puzzle line.
type Input struct {
	Players    int
	LastMarble int
}

// Parse - parses a line of the form "<n> players; last marble is worth <n> points".
func Parse(line string) (Input, error) {
	text := strings.TrimSpace(line)

	match := inputPattern.FindStringSubmatch(text)
	if match == nil {
		return Input{}, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, text)
	}

	players, err := strconv.Atoi(match[1])
	if err != nil {
		return Input{}, fmt.Errorf("%w: player count %q: %w", apperror.ErrInvalidInput, match[1], err)
	}

	if players == 0 {
		return Input{}, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, apperror.ErrInvalidPlayerCount)
	}

	lastMarble, err := strconv.Atoi(match[2])
	if err != nil {
		return Input{}, fmt.Errorf("%w: last marble %q: %w", apperror.ErrInvalidInput, match[2], err)
	}

	return Input{Players: players, LastMarble: lastMarble}, nil
}

// ReadFile - loads and parses a puzzle input file.
func ReadFile(path string) (Input, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read input file: %w", err)
	}

	return Parse(string(content))
}
