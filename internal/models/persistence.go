package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const DefaultSaveFile = "savegame.txt"

// Sentinels written in place of empty collections.
const (
	EmptyInventory = "BRAK"
	EmptyHistory   = "BRAK_HISTORII"
	EmptyLastEvent = "BRAK_OSTATNIEGO"

	saveLines    = 7
	inventorySep = " ,"
	historySep   = ";"
)

var (
	ErrNoSave      = errors.New("no saved game")
	ErrCorruptSave = errors.New("corrupt saved game")
)

// Encode writes p as seven newline-terminated lines.
func Encode(w io.Writer, p *PlayerState) error {
	inventory := EmptyInventory
	if p.Inventory.Len() > 0 {
		inventory = strings.Join(p.Inventory.Items(), inventorySep)
	}

	history := EmptyHistory
	if len(p.PlayedEventsHistory) > 0 {
		flat := make([]string, len(p.PlayedEventsHistory))
		for i, desc := range p.PlayedEventsHistory {
			flat[i] = flattenLine(desc)
		}
		history = strings.Join(flat, historySep)
	}

	last := EmptyLastEvent
	if p.LastEventDescription != "" {
		last = flattenLine(p.LastEventDescription)
	}

	lines := []string{
		strconv.Itoa(p.Day),
		formatBudget(p.Budget),
		strconv.Itoa(p.Happiness),
		strconv.Itoa(p.Comfort),
		inventory,
		history,
		last,
	}
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads the seven-line format positionally. Missing trailing lines keep
// their fresh-game defaults; a malformed number rejects the whole file.
// Anything after the seventh line is ignored.
func Decode(r io.Reader) (*PlayerState, error) {
	lines, err := readLines(bufio.NewReader(r), saveLines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if len(lines) == 0 {
		return nil, ErrNoSave
	}
	line := func(i int) (string, bool) {
		if i < len(lines) {
			return lines[i], true
		}
		return "", false
	}

	p := NewPlayerState()
	var err error
	if s, ok := line(0); ok {
		if p.Day, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%w: day: %v", ErrCorruptSave, err)
		}
	}
	if s, ok := line(1); ok {
		if p.Budget, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("%w: budget: %v", ErrCorruptSave, err)
		}
	}
	if s, ok := line(2); ok {
		if p.Happiness, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%w: happiness: %v", ErrCorruptSave, err)
		}
	}
	if s, ok := line(3); ok {
		if p.Comfort, err = strconv.Atoi(s); err != nil {
			return nil, fmt.Errorf("%w: comfort: %v", ErrCorruptSave, err)
		}
	}

	if s, ok := line(4); ok && s != EmptyInventory && s != "" {
		p.Inventory = NewInventory(strings.Split(s, inventorySep)...)
	}
	if s, ok := line(5); ok && s != EmptyHistory && s != "" {
		for _, desc := range strings.Split(s, historySep) {
			if desc != "" {
				p.PlayedEventsHistory = append(p.PlayedEventsHistory, desc)
			}
		}
	}
	if s, ok := line(6); ok && s != EmptyLastEvent {
		p.LastEventDescription = s
	}
	return p, nil
}

// readLines returns at most n lines without their "\n" or "\r\n"
// terminators. Lines have no length limit.
func readLines(br *bufio.Reader, n int) ([]string, error) {
	var lines []string
	for len(lines) < n {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		lines = append(lines, strings.TrimSuffix(line, "\r"))
		if err != nil {
			break
		}
	}
	return lines, nil
}

// FileStore keeps a single save file at Path.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultSaveFile
	}
	return &FileStore{Path: path}
}

// Save replaces the save file. The new content is written to a sibling temp
// file first so a failed write never truncates the previous save.
func (s *FileStore) Save(p *PlayerState) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".savegame-*")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, p); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Load returns ErrNoSave when there is no file and ErrCorruptSave when the
// file cannot be parsed.
func (s *FileStore) Load() (*PlayerState, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("open save: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func flattenLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// formatBudget always keeps a decimal point, e.g. 2000 -> "2000.0".
func formatBudget(b float64) string {
	s := strconv.FormatFloat(b, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
