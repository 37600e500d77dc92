package config

import (
    "fmt"
    "os"
    "path/filepath"

    "github.com/go-playground/validator/v10"
    "gopkg.in/yaml.v3"
)

// LineSource names the three text sources of one train line.  Relative
// paths are resolved against the directory of the catalogue file.
type LineSource struct {
    Name     string `yaml:"name" validate:"required,alphanum"`
    Stations string `yaml:"stations" validate:"required"`
    Seats    string `yaml:"seats" validate:"required"`
    Tickets  string `yaml:"tickets" validate:"omitempty"`
}

// LineCatalog is the YAML document listing every line served.
type LineCatalog struct {
    Default string       `yaml:"default"`
    Lines   []LineSource `yaml:"lines" validate:"required,min=1,dive"`
}

// LoadLineCatalog reads and validates the catalogue at path.  When
// Default is empty the first line is used.
func LoadLineCatalog(path string) (LineCatalog, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return LineCatalog{}, err
    }
    cat, err := ParseLineCatalog(data)
    if err != nil {
        return LineCatalog{}, fmt.Errorf("%s: %w", path, err)
    }
    base := filepath.Dir(path)
    for i := range cat.Lines {
        l := &cat.Lines[i]
        l.Stations = resolve(base, l.Stations)
        l.Seats = resolve(base, l.Seats)
        if l.Tickets != "" {
            l.Tickets = resolve(base, l.Tickets)
        }
    }
    return cat, nil
}

// ParseLineCatalog decodes and validates a catalogue document.
func ParseLineCatalog(data []byte) (LineCatalog, error) {
    var cat LineCatalog
    if err := yaml.Unmarshal(data, &cat); err != nil {
        return LineCatalog{}, err
    }
    if err := validator.New().Struct(cat); err != nil {
        return LineCatalog{}, err
    }
    seen := make(map[string]bool, len(cat.Lines))
    for _, l := range cat.Lines {
        if seen[l.Name] {
            return LineCatalog{}, fmt.Errorf("duplicate line %q", l.Name)
        }
        seen[l.Name] = true
    }
    if cat.Default == "" {
        cat.Default = cat.Lines[0].Name
    } else if !seen[cat.Default] {
        return LineCatalog{}, fmt.Errorf("default line %q is not declared", cat.Default)
    }
    return cat, nil
}

func resolve(base, p string) string {
    if filepath.IsAbs(p) {
        return p
    }
    return filepath.Join(base, p)
}
