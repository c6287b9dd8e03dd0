package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	vacuum "github.com/daveshanley/vacuum/model"
	"github.com/daveshanley/vacuum/motor"
	"github.com/daveshanley/vacuum/rulesets"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi31"
	"github.com/tailbits/browserkit"
)

type Reflector struct {
	*openapi31.Reflector
	allDefs map[string]jsonschema.Schema
	allTags map[string]bool
}

// LintError lists the schema violations vacuum found in a document.
type LintError struct {
	Violations []string
}

func (e *LintError) Error() string {
	return fmt.Sprintf("lint: %d violations: %s", len(e.Violations), strings.Join(e.Violations, "; "))
}

// DefinitionConflictError reports two different schemas registered
// under one name. Diff is a readable diff of the two.
type DefinitionConflictError struct {
	Name string
	Diff string
}

func (e *DefinitionConflictError) Error() string {
	return fmt.Sprintf("schema %s is defined twice with different content:\n%s", e.Name, e.Diff)
}

func (r *Reflector) ingest(records []Record) error {
	for _, record := range records {
		oc, err := r.NewOperationContext(record.Method, record.Path)
		if err != nil {
			return fmt.Errorf("%s %s: %w", record.Method, record.Path, err)
		}

		c := newOpContext(oc, r)
		if err := c.from(record); err != nil {
			return fmt.Errorf("operation %s: %w", record.ID, err)
		}
		if err := c.commit(); err != nil {
			return fmt.Errorf("operation %s: %w", record.ID, err)
		}
	}
	return nil
}

func (r *Reflector) document() ([]byte, error) {
	return r.Spec.MarshalJSON()
}

// lint runs vacuum's recommended OpenAPI rules over doc. Only the
// "schemas" category fails the document.
func lint(doc []byte) error {
	rs := rulesets.BuildDefaultRuleSets().GenerateOpenAPIRecommendedRuleSet()
	res := motor.ApplyRulesToRuleSet(&motor.RuleSetExecution{RuleSet: rs, Spec: doc})

	set := vacuum.NewRuleResultSet(res.Results)
	set.SortResultsByLineNumber()

	var violations []string
	for _, rr := range set.GetRuleResultsForCategory("schemas").RuleResults {
		for _, v := range rr.Results {
			violations = append(violations, fmt.Sprintf("[%d:%d] %s", v.StartNode.Line, v.StartNode.Column, v.Message))
		}
	}
	if len(violations) > 0 {
		return &LintError{Violations: violations}
	}
	return nil
}

// collectDefinitions moves every schema gathered from the operations
// into components. Names that only differ in case are rejected.
func (r *Reflector) collectDefinitions() error {
	names := slices.Sorted(maps.Keys(r.allDefs))
	for i := 1; i < len(names); i++ {
		if strings.EqualFold(names[i-1], names[i]) {
			return fmt.Errorf("conflicting definitions: %q and %q", names[i-1], names[i])
		}
	}

	if r.Spec.Components == nil {
		r.Spec.Components = &openapi31.Components{}
	}
	for _, name := range names {
		def := r.allDefs[name]
		def.Definitions = nil
		sm, err := def.ToSchemaOrBool().ToSimpleMap()
		if err != nil {
			return fmt.Errorf("definition %s: %w", name, err)
		}
		r.Spec.Components.WithSchemasItem(name, sm)
	}
	return nil
}

func (r *Reflector) collectTags(tags []string) {
	r.Spec.Tags = make([]openapi31.Tag, 0, len(tags))
	for _, tag := range tags {
		r.Spec.Tags = append(r.Spec.Tags, openapi31.Tag{Name: tag})
	}
}

func (r *Reflector) addModel(m browserkit.Model) error {
	if m.IsNil() {
		return nil
	}

	schema, err := m.JSONSchema()
	if err != nil {
		return err
	}
	return r.addDefinition(m.DefName, schema)
}

// addDefinition stores schema under name, along with the definitions it
// carries. A name seen before must come with the same schema, examples
// aside.
func (r *Reflector) addDefinition(name string, schema jsonschema.Schema) error {
	if name == "" {
		return fmt.Errorf("definition name cannot be empty")
	}

	if prev, ok := r.allDefs[name]; ok {
		if diff, same := compareSchemas(prev, schema); !same {
			return &DefinitionConflictError{Name: name, Diff: diff}
		}
		if len(prev.Examples) > 0 && len(schema.Examples) == 0 {
			return nil
		}
	}
	r.allDefs[name] = schema

	for nested, def := range schema.Definitions {
		if def.TypeObject == nil {
			continue
		}
		if err := r.addDefinition(nested, *def.TypeObject); err != nil {
			return err
		}
	}
	return nil
}

// compareSchemas ignores examples. The diff is empty when the schemas
// are identical.
func compareSchemas(a, b jsonschema.Schema) (string, bool) {
	a.Examples = nil
	b.Examples = nil

	aa, _ := a.MarshalJSON()
	bb, _ := b.MarshalJSON()
	if bytes.Equal(aa, bb) {
		return "", true
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(indent(aa), indent(bb), false))
	return dmp.DiffPrettyText(diffs), false
}

func indent(doc []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", "  "); err != nil {
		return string(doc)
	}
	return buf.String()
}
