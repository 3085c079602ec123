package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
	uikiterrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads and validates the config at path. An empty path yields Default().
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, uikiterrors.NewParseError(uikiterrors.Position{Path: path}, err)
	}

	return Parse(path, data)
}

// Parse decodes data as a config document; path is only used in errors.
// Validation errors carry the line and column of the offending value.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, uikiterrors.NewParseError(uikiterrors.Position{Path: path, Line: extractLine(err)}, err)
	}
	if len(doc.Content) > 0 {
		if err := doc.Decode(cfg); err != nil {
			return nil, uikiterrors.NewParseError(uikiterrors.Position{Path: path, Line: extractLine(err)}, err)
		}
	}

	if err := Validate(cfg); err != nil {
		var validationErr *uikiterrors.ValidationError
		if errors.As(err, &validationErr) {
			line, column := locate(&doc, yamlKeys(reflect.TypeOf(Config{}), validationErr.Field))
			validationErr.Position = uikiterrors.Position{Path: path, Line: line, Column: column}
		}
		return nil, err
	}

	return cfg, nil
}

// Validate checks cfg against its field constraints and reports the first failure.
func Validate(cfg *Config) error {
	err := components.Validator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return uikiterrors.NewValidationError(fieldPath(fe.Namespace()), describe(fe), err)
	}
	return uikiterrors.NewValidationError("", err.Error(), err)
}

// fieldPath turns "Config.Pagination.PageSize" into "Pagination.PageSize".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	case "theme_mode":
		return fmt.Sprintf("unknown theme %q (want light, dark or system)", fe.Value())
	case "bcp47_language_tag":
		return fmt.Sprintf("%q is not a BCP 47 language tag", fe.Value())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// yamlKeys maps a Go field path such as "Pagination.PageSize" onto the yaml
// keys that spell it in a document.
func yamlKeys(t reflect.Type, field string) []string {
	if field == "" {
		return nil
	}

	var keys []string
	for _, name := range strings.Split(field, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil
		}
		sf, ok := t.FieldByName(name)
		if !ok {
			return nil
		}
		key, _, _ := strings.Cut(sf.Tag.Get("yaml"), ",")
		if key == "" {
			key = strings.ToLower(sf.Name)
		}
		keys = append(keys, key)
		t = sf.Type
	}
	return keys
}

// locate walks mapping keys from the document root and returns the position of
// the value they lead to, or zeros when the document does not spell it.
func locate(doc *yaml.Node, keys []string) (line, column int) {
	if len(keys) == 0 {
		return 0, 0
	}

	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	for _, key := range keys {
		if node.Kind != yaml.MappingNode {
			return 0, 0
		}
		var next *yaml.Node
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				next = node.Content[i+1]
				break
			}
		}
		if next == nil {
			return 0, 0
		}
		node = next
	}
	return node.Line, node.Column
}
