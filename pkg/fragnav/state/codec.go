package state

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/fragnav/pkg/fragnav/constants"
)

// Codec turns a Snapshot into bytes and back.
type Codec interface {
	Name() string
	Marshal(snap Snapshot) ([]byte, error)
	Unmarshal(data []byte) (Snapshot, error)
}

var (
	JSON Codec = jsonCodec{}
	TOML Codec = tomlCodec{}
	YAML Codec = yamlCodec{}
)

// CodecByName returns the codec for a constants.StateFormat name.
// An empty name selects JSON.
func CodecByName(name string) (Codec, error) {
	switch constants.StateFormat(name) {
	case constants.StateFormatJSON, "":
		return JSON, nil
	case constants.StateFormatTOML:
		return TOML, nil
	case constants.StateFormatYAML, "yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("unknown state format %q", name)
	}
}

func decode(data []byte, unmarshal func([]byte, *Snapshot) error) (Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Snapshot{}, fmt.Errorf("%w: empty state", ErrMalformed)
	}
	var snap Snapshot
	if err := unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := snap.validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return string(constants.StateFormatJSON) }

func (jsonCodec) Marshal(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

func (jsonCodec) Unmarshal(data []byte) (Snapshot, error) {
	return decode(data, func(b []byte, s *Snapshot) error { return json.Unmarshal(b, s) })
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return string(constants.StateFormatTOML) }

func (tomlCodec) Marshal(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (tomlCodec) Unmarshal(data []byte) (Snapshot, error) {
	return decode(data, func(b []byte, s *Snapshot) error { return toml.Unmarshal(b, s) })
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return string(constants.StateFormatYAML) }

func (yamlCodec) Marshal(snap Snapshot) ([]byte, error) {
	return yaml.Marshal(snap)
}

func (yamlCodec) Unmarshal(data []byte) (Snapshot, error) {
	return decode(data, func(b []byte, s *Snapshot) error { return yaml.Unmarshal(b, s) })
}
