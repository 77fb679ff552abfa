package taxonomy

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadOverrides reads extra table entries from a YAML, JSON or TOML file. The
// format is picked from the file extension.
func LoadOverrides(path string) (Source, error) {
	var src Source

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return src, fmt.Errorf("reading taxonomy overrides %q: %w", path, err)
	}

	if err := v.Unmarshal(&src); err != nil {
		return src, fmt.Errorf("decoding taxonomy overrides %q: %w", path, err)
	}

	if err := validator.New().Struct(src); err != nil {
		return src, fmt.Errorf("validating taxonomy overrides %q: %w", path, err)
	}

	return src, nil
}

// Load returns the default tables, extended with the overrides file when path
// is set.
func Load(path string) (*Tables, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	extra, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}

	return New(Merge(DefaultSource(), extra)), nil
}
