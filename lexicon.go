package readmetrics

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrEncoding is returned when a text source is neither valid UTF-8 nor
	// decodable with the fallback encoding.
	ErrEncoding = errors.New("undecodable text")

	// ErrLexiconSource is returned when a lexicon source is missing or
	// cannot be read.
	ErrLexiconSource = errors.New("lexicon source unavailable")
)

// StopSet reports whether a word is a stop word.
type StopSet interface {
	Contains(word string) bool
}

// Lexicon is an immutable set of lowercase words.
type Lexicon struct {
	words map[string]struct{}
}

// NewLexicon builds a lexicon from words, lowercasing each one and skipping
// blanks.
func NewLexicon(words ...string) *Lexicon {
	l := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		l.add(w)
	}
	return l
}

func (l *Lexicon) add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		l.words[word] = struct{}{}
	}
}

// Contains reports whether word is in the lexicon, ignoring case.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// A LineParser extracts the term from one line of a lexicon source. An empty
// result means the line holds no term.
type LineParser func(line string) string

// StopTerm parses stop word lines of the form "TERM | comment".
func StopTerm(line string) string {
	term, _, _ := strings.Cut(line, "|")
	return strings.TrimSpace(term)
}

// WordTerm parses one-word-per-line sentiment lists. Lines starting with ';'
// are comments.
func WordTerm(line string) string {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ";") {
		return ""
	}
	return line
}

// DecodeText converts raw bytes to a string. Valid UTF-8 is used as is (minus
// any byte order mark); anything else is decoded once with fallback.
func DecodeText(b []byte, fallback encoding.Encoding) (string, error) {
	b = bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))
	if utf8.Valid(b) {
		return string(b), nil
	}
	if fallback == nil {
		return "", ErrEncoding
	}
	out, err := fallback.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return string(out), nil
}

// LexiconPaths lists the sources of each lexicon.
type LexiconPaths struct {
	Positive []string
	Negative []string
	Stop     []string
}

// Lexicons are the word sets used for the whole run.
type Lexicons struct {
	Positive *Lexicon
	Negative *Lexicon
	Stop     *Lexicon
}

// Loader reads lexicon sources from disk.
type Loader struct {
	fsys     fs.FS
	fallback encoding.Encoding
	logger   *slog.Logger
}

// LoaderOpt configures a Loader.
type LoaderOpt func(*Loader)

// WithLoaderLogger sets the logger for degraded sources.
func WithLoaderLogger(logger *slog.Logger) LoaderOpt {
	return func(ld *Loader) {
		ld.logger = logger
	}
}

// WithFallbackEncoding sets the encoding tried when a source is not UTF-8.
func WithFallbackEncoding(enc encoding.Encoding) LoaderOpt {
	return func(ld *Loader) {
		ld.fallback = enc
	}
}

// WithFS reads sources from fsys instead of the working directory.
func WithFS(fsys fs.FS) LoaderOpt {
	return func(ld *Loader) {
		ld.fsys = fsys
	}
}

// NewLoader returns a Loader reading from the OS filesystem with Latin-1 as
// the fallback encoding.
func NewLoader(opts ...LoaderOpt) *Loader {
	ld := &Loader{
		fallback: charmap.ISO8859_1,
		logger:   slog.Default(),
	}
	for _, applyOpt := range opts {
		applyOpt(ld)
	}
	return ld
}

// LoadSource reads a single source. The error wraps ErrLexiconSource or
// ErrEncoding.
func (ld *Loader) LoadSource(path string, parse LineParser) (*Lexicon, error) {
	var (
		data []byte
		err  error
	)
	if ld.fsys != nil {
		data, err = fs.ReadFile(ld.fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLexiconSource, path, err)
	}

	text, err := DecodeText(data, ld.fallback)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	lex := NewLexicon()
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lex.add(parse(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLexiconSource, path, err)
	}
	return lex, nil
}

// Load merges every source into one lexicon. A source that cannot be loaded
// is logged and treated as empty.
func (ld *Loader) Load(paths []string, parse LineParser) *Lexicon {
	merged := NewLexicon()
	for _, path := range paths {
		lex, err := ld.LoadSource(path, parse)
		if err != nil {
			ld.logger.Warn("lexicon source skipped", "path", path, "error", err)
			continue
		}
		for w := range lex.words {
			merged.words[w] = struct{}{}
		}
		ld.logger.Debug("lexicon source loaded", "path", path, "words", lex.Len())
	}
	return merged
}

// LoadAll loads the positive, negative and stop lexicons.
func (ld *Loader) LoadAll(paths LexiconPaths) Lexicons {
	return Lexicons{
		Positive: ld.Load(paths.Positive, WordTerm),
		Negative: ld.Load(paths.Negative, WordTerm),
		Stop:     ld.Load(paths.Stop, StopTerm),
	}
}

// DefaultStopwordFiles are the seven stop word categories.
var DefaultStopwordFiles = []string{
	"StopWords_Names.txt",
	"StopWords_Geographic.txt",
	"StopWords_GenericLong.txt",
	"StopWords_Generic.txt",
	"StopWords_DatesandNumbers.txt",
	"StopWords_Currencies.txt",
	"StopWords_Auditor.txt",
}
