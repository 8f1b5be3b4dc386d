package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/dynarray/internal/script"
)

type ExportStep struct {
	Seq    int             `json:"seq"`
	Op     string          `json:"op"`
	Pos    int             `json:"pos"`
	Result string          `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Before script.Snapshot `json:"before"`
	After  script.Snapshot `json:"after"`
}

type ExportData struct {
	Name    string             `json:"name"`
	Element string             `json:"element"`
	Initial script.Snapshot    `json:"initial"`
	Steps   []ExportStep       `json:"steps"`
	Final   script.Snapshot    `json:"final"`
	Failed  int                `json:"failed"`
	Metrics map[string]float64 `json:"metrics"`
}

func NewExportData(name string, trace *script.Trace) *ExportData {
	data := &ExportData{
		Name:    name,
		Element: trace.Element,
		Initial: trace.Initial,
		Steps:   make([]ExportStep, len(trace.Steps)),
		Final:   trace.Final,
		Failed:  trace.Failed,
		Metrics: trace.Metrics,
	}
	for i, s := range trace.Steps {
		data.Steps[i] = ExportStep{
			Seq:    s.Seq,
			Op:     s.Line,
			Pos:    s.Pos,
			Result: s.Result,
			Before: s.Before,
			After:  s.After,
		}
		if s.Err != nil {
			data.Steps[i].Error = s.Err.Error()
		}
	}
	return data
}

func ExportJSON(path, name string, trace *script.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, name, trace)
}

func WriteJSON(w io.Writer, name string, trace *script.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(name, trace))
}

func ImportJSON(path string) (*ExportData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data ExportData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Trace rebuilds a script.Trace from exported data. Step errors come back
// as plain messages.
func (d *ExportData) Trace() *script.Trace {
	trace := &script.Trace{
		Element: d.Element,
		Initial: d.Initial,
		Steps:   make([]script.Step, len(d.Steps)),
		Final:   d.Final,
		Failed:  d.Failed,
		Metrics: d.Metrics,
	}
	for i, s := range d.Steps {
		op, _ := script.ParseOp(s.Op)
		trace.Steps[i] = script.Step{
			Seq:    s.Seq,
			Op:     op,
			Line:   s.Op,
			Pos:    s.Pos,
			Result: s.Result,
			Before: s.Before,
			After:  s.After,
		}
		if s.Error != "" {
			trace.Steps[i].Err = stepError(s.Error)
		}
	}
	return trace
}

type stepError string

func (e stepError) Error() string { return string(e) }
