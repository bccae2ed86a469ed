package conformance

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a suite from a .yaml, .yml or .cue file
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var suite *Suite
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		suite, err = parseYAML(data)
	case ".cue":
		suite, err = parseCUE(data, path)
	default:
		return nil, fmt.Errorf("%s: unsupported suite format (want .yaml, .yml or .cue)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := suite.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suite, nil
}

// LoadDir loads every suite file in dir, sorted by file name
func LoadDir(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml", ".cue":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var suites []*Suite
	for _, name := range names {
		suite, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

func parseYAML(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

func parseCUE(data []byte, filename string) (*Suite, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(cueSchema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, err
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}

	// Value.Decode reports math.MinInt64 as rounded for *int64 fields, while
	// the JSON rendering keeps every integer exact
	data, err := unified.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var suite Suite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

func (s *Suite) validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite %q has no cases", s.Name)
	}
	for i, c := range s.Cases {
		if c.Expect != nil && c.Error != "" {
			return fmt.Errorf("case %d (%s): expect and error are mutually exclusive", i, c.Title())
		}
		if c.Expect == nil && c.Error == "" && c.Skip == "" {
			return fmt.Errorf("case %d (%s): needs expect or error", i, c.Title())
		}
		if c.Error != "" {
			if _, ok := parseKind(c.Error); !ok {
				return fmt.Errorf("case %d (%s): unknown error kind %q", i, c.Title(), c.Error)
			}
		}
	}
	return nil
}
