package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoTable is returned when no table has ever been written for a region.
// Distinct from an existing table with zero rows.
var ErrNoTable = errors.New("store: no table for region")

// Headers is the fixed column order of a region table.
var Headers = []string{
	"Название",
	"Ссылка",
	"Зарплата",
	"Локация",
	"Требования",
	"Профессия",
	"Опыт работы",
}

// Store keeps one CSV file per region id under dir. A snapshot write replaces
// the whole table; an append adds one row. Each region has its own RWMutex so
// a read never observes a half-written snapshot; distinct regions do not
// contend.
type Store struct {
	dir string

	mu    sync.Mutex // guards locks
	locks map[int]*sync.RWMutex
}

// New creates a Store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}
	return &Store{dir: dir, locks: make(map[int]*sync.RWMutex)}, nil
}

func (s *Store) path(regionID int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d_vacancies.csv", regionID))
}

func (s *Store) lock(regionID int) *sync.RWMutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[regionID]
	if !ok {
		l = &sync.RWMutex{}
		s.locks[regionID] = l
	}
	return l
}

// WriteSnapshot replaces the region table with records. No deduplication
// happens here or anywhere: overlapping fetch cycles produce duplicate rows
// and that is accepted behavior.
func (s *Store) WriteSnapshot(regionID int, records []Record) error {
	l := s.lock(regionID)
	l.Lock()
	defer l.Unlock()

	f, err := os.Create(s.path(regionID))
	if err != nil {
		return fmt.Errorf("store: snapshot region %d: %w", regionID, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Headers); err != nil {
		f.Close()
		return fmt.Errorf("store: snapshot region %d: %w", regionID, err)
	}
	for _, rec := range records {
		if err := w.Write(row(rec)); err != nil {
			f.Close()
			return fmt.Errorf("store: snapshot region %d: %w", regionID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("store: snapshot region %d: %w", regionID, err)
	}
	return f.Close()
}

// Append adds one row to an existing region table without touching prior
// rows. Appending to a region that was never snapshotted is a caller error
// and returns ErrNoTable.
func (s *Store) Append(regionID int, rec Record) error {
	l := s.lock(regionID)
	l.Lock()
	defer l.Unlock()

	path := s.path(regionID)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNoTable
		}
		return fmt.Errorf("store: append region %d: %w", regionID, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("store: append region %d: %w", regionID, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(row(rec)); err != nil {
		f.Close()
		return fmt.Errorf("store: append region %d: %w", regionID, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("store: append region %d: %w", regionID, err)
	}
	return f.Close()
}

// Read loads all records of a region table. Columns are resolved by header
// name, not position. Returns ErrNoTable when the table was never written.
func (s *Store) Read(regionID int) ([]Record, error) {
	l := s.lock(regionID)
	l.RLock()
	defer l.RUnlock()

	f, err := os.Open(s.path(regionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoTable
		}
		return nil, fmt.Errorf("store: read region %d: %w", regionID, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTable
		}
		return nil, fmt.Errorf("store: read region %d: %w", regionID, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(line []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(line) {
			return ""
		}
		return line[i]
	}

	var records []Record
	for {
		line, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("store: read region %d: %w", regionID, err)
		}
		records = append(records, Record{
			Title:        field(line, "Название"),
			Link:         field(line, "Ссылка"),
			Salary:       ParseSalary(field(line, "Зарплата")),
			Location:     field(line, "Локация"),
			Requirements: field(line, "Требования"),
			Profession:   field(line, "Профессия"),
			Experience:   field(line, "Опыт работы"),
		})
	}
	return records, nil
}

func row(rec Record) []string {
	return []string{
		rec.Title,
		rec.Link,
		FormatSalary(rec.Salary),
		rec.Location,
		rec.Requirements,
		rec.Profession,
		rec.Experience,
	}
}
