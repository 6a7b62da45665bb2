package reports

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

var ErrUnknownFormat = errors.New("unknown report format")

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborEncMode = em
}

// FormatOf picks the format by file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

func (f Format) Marshal(report Report) ([]byte, error) {
	switch f {

	case FormatJSON:
		return json.MarshalIndent(report, "", "  ")

	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatCBOR:
		return cborEncMode.Marshal(report)

	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}

func (f Format) Unmarshal(data []byte) (report Report, err error) {
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, &report)
	case FormatYAML:
		err = yaml.NewDecoder(bytes.NewReader(data)).Decode(&report)
	case FormatCBOR:
		err = cbor.Unmarshal(data, &report)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	return
}

// Write writes the report to path, replacing any existing file atomically
func Write(path string, report Report) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := format.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
