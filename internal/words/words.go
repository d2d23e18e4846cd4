// internal/words/words.go
//
// Provides dictionary management for the game engine.
//
// Responsibilities:
//   - Load the word list for one word length from "<dir>/word<N>".
//   - Keep a set for exact-match lookups.
//   - Supply RandomWord, Validate, and IsValid.
//
// File format:
//   - One word per line; lines are trimmed and lowercased.
//   - Blank lines and lines starting with "#" are ignored.
//   - Words of the wrong length or with letters outside a–z are skipped.
//
// A missing or unreadable file, or one with no usable words, is an error;
// there is no fallback list.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

var (
	ErrWrongLength     = errors.New("wrong length")
	ErrNotInDictionary = errors.New("not in dictionary")
	ErrEmpty           = errors.New("word list is empty")
)

// Dictionary is the word list for a single word length.
type Dictionary struct {
	length int
	path   string
	list   []string
	set    map[string]struct{}
}

// Path returns the word list file for length inside dir.
func Path(dir string, length int) string {
	return filepath.Join(dir, fmt.Sprintf("word%d", length))
}

// Load reads the word list for length from dir.
func Load(dir string, length int) (*Dictionary, error) {
	path := Path(dir, length)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	d, err := Read(f, length)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d.path = path
	log.Debug().Str("path", path).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// Read builds a dictionary of length-letter words from r.
func Read(r io.Reader, length int) (*Dictionary, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid word length %d", length)
	}
	d := &Dictionary{length: length, set: make(map[string]struct{})}
	skipped := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != length || !isAlpha(w) {
			skipped++
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("length", length).Msg("ignored lines in word list")
	}
	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Length is the word length this dictionary holds.
func (d *Dictionary) Length() int { return d.length }

// Source is the file the dictionary was loaded from, if any.
func (d *Dictionary) Source() string { return d.path }

// Len is the number of distinct words.
func (d *Dictionary) Len() int { return len(d.list) }

// RandomWord returns a uniformly random word from the list.
func (d *Dictionary) RandomWord() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	if err != nil {
		return "", fmt.Errorf("pick word: %w", err)
	}
	return d.list[n.Int64()], nil
}

// Contains reports whether w is in the list, exactly.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[w]
	return ok
}

// Validate checks candidate against the dictionary. The returned error
// wraps ErrWrongLength or ErrNotInDictionary. Length is counted in
// letters, not bytes.
func (d *Dictionary) Validate(candidate string) error {
	if utf8.RuneCountInString(candidate) != d.length {
		return fmt.Errorf("%q: %w", candidate, ErrWrongLength)
	}
	if !d.Contains(candidate) {
		return fmt.Errorf("%q: %w", candidate, ErrNotInDictionary)
	}
	return nil
}

// IsValid reports whether candidate is a playable guess, writing a
// diagnostic line to w when it is not.
func (d *Dictionary) IsValid(candidate string, w io.Writer) bool {
	switch err := d.Validate(candidate); {
	case err == nil:
		return true
	case errors.Is(err, ErrWrongLength):
		fmt.Fprintf(w, "%s is not a %d-letter word. Try again.\n", candidate, d.length)
	default:
		fmt.Fprintf(w, "%s is not in the dictionary. Try again.\n", candidate)
	}
	return false
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
