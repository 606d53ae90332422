package config

import (
	"bufio"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/ukaji3/prodfilter-go/pkg/prodfilter/models"
)

// LoadBlacklist reads a newline-delimited blacklist file.
func LoadBlacklist(path string) (*models.Blacklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open blacklist %s", path)
	}
	defer f.Close()

	return ParseBlacklist(f)
}

// ParseBlacklist reads one pattern per line. Lines are trimmed and blank
// lines are ignored.
func ParseBlacklist(r io.Reader) (*models.Blacklist, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrap(err, "failed to read blacklist")
	}
	return models.NewBlacklist(words), nil
}
