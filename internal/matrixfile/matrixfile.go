// SPDX-License-Identifier: MIT

// Package matrixfile reads a matrix and its render precision from a YAML
// document. JSON is accepted too, being a subset of YAML:
//
//	rows:
//	  - [4, 3]
//	  - [6, 3]
//	precision: 4
package matrixfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/denselu/matrix"
)

var (
	// ErrNoRows is returned when the document has no "rows" key.
	ErrNoRows = errors.New("matrixfile: missing rows")

	// ErrBadPrecision is returned for a negative precision.
	ErrBadPrecision = errors.New("matrixfile: precision must be >= 0")
)

// File is a decoded matrix document.
type File struct {
	Matrix    *matrix.Dense
	Precision int
}

// document mirrors the on-disk layout.
type document struct {
	Rows      *[][]float64 `yaml:"rows"`
	Precision *int         `yaml:"precision"`
}

// Load opens path and decodes it with Decode.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Decode reads one document from r. An explicitly empty rows list yields a
// 0×0 matrix; ragged rows surface matrix.ErrRaggedInput.
func Decode(r io.Reader) (*File, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRows
		}
		return nil, fmt.Errorf("matrixfile: decode: %w", err)
	}
	if doc.Rows == nil {
		return nil, ErrNoRows
	}

	m, err := matrix.New(*doc.Rows)
	if err != nil {
		return nil, err
	}

	prec := matrix.DefaultPrecision
	if doc.Precision != nil {
		if *doc.Precision < 0 {
			return nil, ErrBadPrecision
		}
		prec = *doc.Precision
	}

	return &File{Matrix: m, Precision: prec}, nil
}
