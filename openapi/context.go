package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi31"
)

// opContext is one operation under construction. Models go through the
// reflector first so that conflicting definitions are caught.
type opContext struct {
	openapi.OperationContext
	op        *openapi31.Operation
	reflector *Reflector
}

func newOpContext(oc openapi.OperationContext, r *Reflector) *opContext {
	c := &opContext{OperationContext: oc, reflector: r}
	if exp, ok := oc.(openapi31.OperationExposer); ok {
		c.op = exp.Operation()
	}
	return c
}

func (c *opContext) commit() error {
	return c.reflector.AddOperation(c.OperationContext)
}

func (c *opContext) from(record Record) error {
	status := record.SuccessStatus
	if status == 0 {
		status = http.StatusOK
	}

	if record.Output.IsNil() {
		c.AddRespStructure(nil, openapi.WithHTTPStatus(status))
	} else {
		if err := c.reflector.addModel(record.Output); err != nil {
			return fmt.Errorf("response %s: %w", record.Output.Name(), err)
		}
		c.AddRespStructure(record.Output, openapi.WithHTTPStatus(status))
	}

	if in := record.Input; in != nil && !in.IsNil() {
		if err := c.reflector.addModel(*in); err != nil {
			return fmt.Errorf("request %s: %w", in.Name(), err)
		}
		c.AddReqStructure(*in)
	}

	params, err := parameters(record)
	if err != nil {
		return err
	}
	c.SetDescription(record.Description)
	if record.Summary != "" {
		c.SetSummary(record.Summary)
	}
	for _, tag := range record.Tags {
		c.reflector.allTags[tag] = true
	}

	if c.op != nil {
		c.op.WithID(record.ID)
		c.op.WithTags(record.Tags...)
		c.op.WithParameters(params...)
		if record.Extensions != nil {
			c.op.WithMapOfAnything(record.Extensions)
		}
	}

	c.describePath(record)
	return nil
}

func (c *opContext) describePath(record Record) {
	if record.PathSummary == "" && record.PathDescription == "" {
		return
	}

	paths := c.reflector.Spec.PathsEns()
	pattern := c.PathPattern()
	item := paths.MapOfPathItemValues[pattern]
	if record.PathSummary != "" {
		item.WithSummary(record.PathSummary)
	}
	if record.PathDescription != "" {
		item.WithDescription(record.PathDescription)
	}
	paths.WithMapOfPathItemValuesItem(pattern, item)
}

// parameters lists the path parameters of record, all required, then
// the declared properties of its query model in declaration order.
func parameters(record Record) ([]openapi31.ParameterOrReference, error) {
	var out []openapi31.ParameterOrReference

	_, _, pathParams, _ := openapi.SanitizeMethodPath(record.Method, record.Path)
	for _, name := range pathParams {
		p, err := parameter(name, openapi31.ParameterInPath, true, (&jsonschema.Schema{}).WithType(jsonschema.String.Type()))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	q := record.QueryParams
	if q == nil {
		return out, nil
	}

	var sch jsonschema.Schema
	if err := json.Unmarshal(q.Schema(), &sch); err != nil {
		return nil, fmt.Errorf("query schema of %s: %w", q.Name(), err)
	}
	for _, field := range q.Shape().Fields {
		var prop *jsonschema.Schema
		if p, ok := sch.Properties[field.Key]; ok {
			prop = p.TypeObject
		}
		p, err := parameter(field.Key, openapi31.ParameterInQuery, false, prop)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// parameter moves the description of prop onto the parameter itself.
func parameter(name string, in openapi31.ParameterIn, required bool, prop *jsonschema.Schema) (openapi31.ParameterOrReference, error) {
	var sch jsonschema.Schema
	if prop != nil {
		sch = *prop
	}
	desc := sch.Description
	sch.Description = nil

	sm, err := sch.ToSchemaOrBool().ToSimpleMap()
	if err != nil {
		return openapi31.ParameterOrReference{}, fmt.Errorf("parameter %s: %w", name, err)
	}

	p := &openapi31.Parameter{Name: name, In: in, Required: &required, Schema: sm}
	if desc != nil {
		p.WithDescription(*desc)
	}
	return openapi31.ParameterOrReference{Parameter: p}, nil
}
