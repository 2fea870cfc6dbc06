package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Crypto struct {
		Iterations int `json:"iterations"`
	} `json:"crypto,omitempty"`

	Generator struct {
		MinimumLength    int   `json:"minimum_length"`
		MaximumLength    int   `json:"maximum_length"`
		AllowNumbers     *bool `json:"allow_numbers"`
		AllowPunctuation *bool `json:"allow_punctuation"`
	} `json:"generator,omitempty"`

	Dictionary struct {
		Dir string `json:"dir"`
	} `json:"dictionary,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			SafeDir string `json:"safe_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Safe struct {
		Name string `json:"name"`
	} `json:"safe,omitempty"`

	Clipboard struct {
		ClearAfter Duration `json:"clear_after"`
	} `json:"clipboard,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Crypto: Crypto{Iterations: jsonCfg.Crypto.Iterations},
		Generator: Generator{
			MinimumLength:    jsonCfg.Generator.MinimumLength,
			MaximumLength:    jsonCfg.Generator.MaximumLength,
			AllowNumbers:     jsonCfg.Generator.AllowNumbers,
			AllowPunctuation: jsonCfg.Generator.AllowPunctuation,
		},
		Dictionary: Dictionary{Dir: jsonCfg.Dictionary.Dir},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				SafeDir: jsonCfg.Storage.Files.SafeDir,
			},
		},
		Safe:         Safe{Name: jsonCfg.Safe.Name},
		Clipboard:    Clipboard{ClearAfter: time.Duration(jsonCfg.Clipboard.ClearAfter)},
		Log:          Log{File: jsonCfg.Log.File},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
