package treefile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/gotsg/pkg/tsg"
)

type hclFile struct {
	Trees []*hclTree `hcl:"tree,block"`
}

type hclTree struct {
	Name     string         `hcl:"name,label"`
	Labels   []string       `hcl:"labels,optional"`
	Elements hcl.Expression `hcl:"elements,attr"`
}

func decodeHCL(data []byte, filename string) ([]*Tree, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ectx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg hclFile
	diags = gohcl.DecodeBody(file.Body, ectx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	trees := make([]*Tree, 0, len(cfg.Trees))
	for _, t := range cfg.Trees {
		if t.Name == "" {
			return nil, errors.Errorf("%s: %w", t.Elements.Range(), ErrTreeName)
		}

		val, diags := t.Elements.Value(ectx)
		if diags.HasErrors() {
			return nil, errors.Errorf("evaluating tree %q: %s", t.Name, diags.Error())
		}

		elts, err := elementsFromCty(val, "tree "+t.Name)
		if err != nil {
			return nil, err
		}

		trees = append(trees, &Tree{Name: t.Name, Root: tsg.Labeled(t.Labels, elts...)})
	}

	return trees, nil
}

func elementsFromCty(list cty.Value, at string) ([]tsg.Element, error) {
	if list.IsNull() || !list.IsKnown() {
		return nil, errors.Errorf("%s: elements are not set: %w", at, ErrElement)
	}

	ty := list.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, errors.Errorf("%s: elements must be a list, got %s: %w", at, ty.FriendlyName(), ErrElement)
	}

	var out []tsg.Element
	for i, v := range list.AsValueSlice() {
		here := fmt.Sprintf("%s[%d]", at, i)

		switch {
		case v.IsNull():
			return nil, errors.Errorf("%s: null: %w", here, ErrElement)
		case v.Type().IsPrimitiveType():
			s, err := convert.Convert(v, cty.String)
			if err != nil {
				return nil, errors.Errorf("%s: %w", here, err)
			}
			out = append(out, tsg.Token(s.AsString()))
		case v.Type().IsObjectType():
			n, err := groupFromCty(v, here)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		default:
			return nil, errors.Errorf("%s: %s: %w", here, v.Type().FriendlyName(), ErrElement)
		}
	}

	return out, nil
}

func groupFromCty(obj cty.Value, at string) (*tsg.Node, error) {
	ty := obj.Type()

	for name := range ty.AttributeTypes() {
		if name != "labels" && name != "elements" {
			return nil, errors.Errorf("%s: unknown attribute %q: %w", at, name, ErrElement)
		}
	}

	if !ty.HasAttribute("elements") {
		return nil, errors.Errorf("%s: group without elements: %w", at, ErrElement)
	}

	var labels []string
	if ty.HasAttribute("labels") {
		lv := obj.GetAttr("labels")
		if !lv.Type().IsTupleType() && !lv.Type().IsListType() {
			return nil, errors.Errorf("%s: labels must be a list: %w", at, ErrElement)
		}
		for _, l := range lv.AsValueSlice() {
			if l.IsNull() || !l.Type().Equals(cty.String) {
				return nil, errors.Errorf("%s: labels must be strings: %w", at, ErrElement)
			}
			labels = append(labels, l.AsString())
		}
	}

	elts, err := elementsFromCty(obj.GetAttr("elements"), at)
	if err != nil {
		return nil, err
	}

	return tsg.Labeled(labels, elts...), nil
}
