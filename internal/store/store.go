package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/dynarray/internal/script"
)

// Store keeps saved runs under baseDir, one directory per run holding
// trace.json and steps.csv.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Save(name string, trace *script.Trace) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, s.now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := ExportJSON(filepath.Join(runDir, "trace.json"), name, trace); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"seq", "op", "pos", "result", "error", "count", "cap", "items"}); err != nil {
		return "", err
	}
	for _, step := range trace.Steps {
		errText := ""
		if step.Err != nil {
			errText = step.Err.Error()
		}
		row := []string{
			strconv.Itoa(step.Seq),
			step.Line,
			strconv.Itoa(step.Pos),
			step.Result,
			errText,
			strconv.Itoa(step.After.Count),
			strconv.Itoa(step.After.Cap),
			strings.Join(step.After.Items, " "),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*ExportData, error) {
	return ImportJSON(filepath.Join(s.baseDir, runID, "trace.json"))
}

func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			runs = append(runs, e.Name())
		}
	}
	sort.Strings(runs)
	return runs, nil
}
