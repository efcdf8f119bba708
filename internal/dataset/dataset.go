// Package dataset loads the shell-sample table and derives the seawater
// temperature column. Tables are read once and never mutated; every filter
// returns a new view over the same records.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Species identifies the Tridacna species of a specimen. Samples that could
// not be assigned a species carry the undetermined sentinel; they take part
// in layer-level aggregates but never in species-comparative analyses.
type Species string

const (
	SpeciesSquamosina   Species = "squamosina"
	SpeciesSquamosa     Species = "squamosa"
	SpeciesMaxima       Species = "maxima"
	SpeciesUndetermined Species = "undetermined"
)

// Label returns the display form, e.g. "T. maxima".
func (s Species) Label() string {
	if s == SpeciesUndetermined {
		return "undetermined"
	}
	return "T. " + string(s)
}

// KnownSpecies lists the determined species in declared order. This order
// fixes summary rows and boxplot categories.
var KnownSpeciesOrder = []Species{SpeciesSquamosina, SpeciesSquamosa, SpeciesMaxima}

// Layer is the structural shell region a sample was drilled from.
type Layer string

const (
	LayerInner Layer = "inner"
	LayerOuter Layer = "outer"
)

// Variable selects one of the measured or derived per-record values.
type Variable string

const (
	VarD13C        Variable = "d13C"
	VarD18O        Variable = "d18O"
	VarTemperature Variable = "temperature"
)

// Variables lists the analyzed variables in declared order.
var Variables = []Variable{VarD13C, VarD18O, VarTemperature}

// Record is one specimen-layer observation. Descriptive fields are carried
// through from the input file but not analyzed. Temperature is NaN until
// DeriveTemperature has run.
type Record struct {
	SpecimenID  string
	Species     Species
	Layer       Layer
	Location    string
	AgeClass    string
	LengthMM    float64
	WidthMM     float64
	D13C        float64
	D18O        float64
	Temperature float64
}

// Value returns the selected variable of the record.
func (r Record) Value(v Variable) float64 {
	switch v {
	case VarD13C:
		return r.D13C
	case VarD18O:
		return r.D18O
	case VarTemperature:
		return r.Temperature
	}
	return math.NaN()
}

// Table is an immutable ordered sequence of records.
type Table struct {
	records []Record
}

// NewTable wraps records in a table. The slice is copied so later changes to
// the argument cannot leak into the table.
func NewTable(records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

// Len reports the number of records.
func (t *Table) Len() int { return len(t.records) }

// Records returns the underlying record sequence. Callers must treat it as
// read-only.
func (t *Table) Records() []Record { return t.records }

func (t *Table) filter(keep func(Record) bool) *Table {
	out := make([]Record, 0, len(t.records))
	for _, r := range t.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Table{records: out}
}

// Layer returns the view of records from the given shell layer.
func (t *Table) Layer(l Layer) *Table {
	return t.filter(func(r Record) bool { return r.Layer == l })
}

// Species returns the view of records of one species.
func (t *Table) Species(s Species) *Table {
	return t.filter(func(r Record) bool { return r.Species == s })
}

// KnownSpecies drops records with undetermined species.
func (t *Table) KnownSpecies() *Table {
	return t.filter(func(r Record) bool { return r.Species != SpeciesUndetermined })
}

// Values extracts one variable across all records, preserving record order.
func (t *Table) Values(v Variable) []float64 {
	out := make([]float64, len(t.records))
	for i, r := range t.records {
		out[i] = r.Value(v)
	}
	return out
}

// Required input columns, bound by name.
const (
	colSpecies = "species"
	colLayer   = "layer"
	colD13C    = "d13c"
	colD18O    = "d18o"
)

// ReadCSV loads a comma-separated sample table. The header row binds fields
// by column name (case-insensitive); column position is irrelevant. A missing
// required column, an unknown layer value, or a non-numeric isotope cell is a
// *FormatError.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return readCSV(f, path)
}

func readCSV(f io.Reader, path string) (*Table, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &FormatError{Path: path, Err: errors.New("empty file")}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, req := range []string{colSpecies, colLayer, colD13C, colD18O} {
		if _, ok := idx[req]; !ok {
			return nil, &FormatError{Path: path, Column: req, Err: errors.New("required column missing")}
		}
	}

	cell := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var records []Record
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		sp, err := parseSpecies(cell(rec, colSpecies))
		if err != nil {
			return nil, &FormatError{Path: path, Row: row, Column: colSpecies, Err: err}
		}
		layer, err := parseLayer(cell(rec, colLayer))
		if err != nil {
			return nil, &FormatError{Path: path, Row: row, Column: colLayer, Err: err}
		}
		d13c, err := strconv.ParseFloat(cell(rec, colD13C), 64)
		if err != nil {
			return nil, &FormatError{Path: path, Row: row, Column: colD13C, Err: err}
		}
		d18o, err := strconv.ParseFloat(cell(rec, colD18O), 64)
		if err != nil {
			return nil, &FormatError{Path: path, Row: row, Column: colD18O, Err: err}
		}

		records = append(records, Record{
			SpecimenID:  cell(rec, "specimen_id"),
			Species:     sp,
			Layer:       layer,
			Location:    cell(rec, "location"),
			AgeClass:    cell(rec, "age_class"),
			LengthMM:    optionalFloat(cell(rec, "shell_length_mm")),
			WidthMM:     optionalFloat(cell(rec, "shell_width_mm")),
			D13C:        d13c,
			D18O:        d18o,
			Temperature: math.NaN(),
		})
	}
	return &Table{records: records}, nil
}

func parseSpecies(s string) (Species, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "tridacna ")
	v = strings.TrimPrefix(v, "t. ")
	if v == "" {
		return "", errors.New("empty species")
	}
	return Species(v), nil
}

func parseLayer(s string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inner":
		return LayerInner, nil
	case "outer":
		return LayerOuter, nil
	}
	return "", fmt.Errorf("unknown layer %q (want inner or outer)", s)
}

// optionalFloat parses descriptive numeric columns, NaN when blank or
// unparseable. These fields are carried through, never analyzed.
func optionalFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
