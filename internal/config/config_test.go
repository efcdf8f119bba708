package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Point at a path that does not exist so only defaults apply.
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.OutputDir != "isoshell-out" {
		t.Errorf("OutputDir = %q", c.OutputDir)
	}
	if c.FigureWidthIn != 7.0 || c.FigureHeightIn != 9.0 {
		t.Errorf("figure size = %gx%g", c.FigureWidthIn, c.FigureHeightIn)
	}
	if c.FigureDPI != 300 {
		t.Errorf("FigureDPI = %d", c.FigureDPI)
	}
	if !c.WriteXLSX {
		t.Error("WriteXLSX default should be true")
	}
	if c.TukeyConfidence != 0.95 {
		t.Errorf("TukeyConfidence = %g", c.TukeyConfidence)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Global{
		InputCSV:        "/data/shells.csv",
		OutputDir:       "out",
		FigureWidthIn:   6.5,
		FigureHeightIn:  8.0,
		FigureDPI:       150,
		WriteXLSX:       false,
		TukeyConfidence: 0.99,
	}
	if err := Save(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.InputCSV != in.InputCSV {
		t.Errorf("InputCSV = %q", got.InputCSV)
	}
	if got.OutputDir != in.OutputDir {
		t.Errorf("OutputDir = %q", got.OutputDir)
	}
	if got.FigureWidthIn != in.FigureWidthIn || got.FigureHeightIn != in.FigureHeightIn {
		t.Errorf("figure size = %gx%g", got.FigureWidthIn, got.FigureHeightIn)
	}
	if got.FigureDPI != in.FigureDPI {
		t.Errorf("FigureDPI = %d", got.FigureDPI)
	}
	if got.WriteXLSX != in.WriteXLSX {
		t.Errorf("WriteXLSX = %v", got.WriteXLSX)
	}
	if got.TukeyConfidence != in.TukeyConfidence {
		t.Errorf("TukeyConfidence = %g", got.TukeyConfidence)
	}
}
