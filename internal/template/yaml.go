package template

import (
	"fmt"
	"os"
	"regexp"

	"github.com/goccy/go-yaml"
)

// yamlSet mirrors TemplateSet for file-based overrides. Keeping thresholds in
// a file lets them be tuned per issuer without a rebuild.
type yamlSet struct {
	Issuer string      `yaml:"issuer"`
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Field        string   `yaml:"field"`
	Strategy     string   `yaml:"strategy"`
	Anchors      []string `yaml:"anchors"`
	MaxYDistance float64  `yaml:"max_y_distance"`
	MaxXMisalign float64  `yaml:"max_x_misalign"`
	ValuePattern string   `yaml:"value_pattern"`
	Postprocess  string   `yaml:"postprocess"`
}

type yamlFile struct {
	Sets []yamlSet `yaml:"sets"`
}

// LoadFile reads template sets from a YAML file. Returned sets are validated
// by NewRegistry, not here.
func LoadFile(path string) ([]TemplateSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates file: %w", err)
	}
	var f yamlFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse templates file: %w", err)
	}

	sets := make([]TemplateSet, 0, len(f.Sets))
	for _, ys := range f.Sets {
		set := TemplateSet{IssuerID: ys.Issuer}
		for _, yf := range ys.Fields {
			ft := FieldTemplate{
				FieldID:      yf.Field,
				Strategy:     Strategy(yf.Strategy),
				AnchorLabels: yf.Anchors,
				MaxYDistance: yf.MaxYDistance,
				MaxXMisalign: yf.MaxXMisalign,
				Postprocess:  Postprocess(yf.Postprocess),
			}
			if yf.Postprocess == "" {
				ft.Postprocess = PostprocessRaw
			}
			if yf.ValuePattern != "" {
				re, err := regexp.Compile(yf.ValuePattern)
				if err != nil {
					return nil, fmt.Errorf("field %q: compile value pattern: %w", yf.Field, err)
				}
				ft.ValuePattern = re
			}
			set.Fields = append(set.Fields, ft)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// MergeOverrides layers override sets onto the base per issuer and field id:
// an override field replaces the base field with the same id, new field ids
// are appended, and untouched base fields stay as shipped. Override sets for
// issuers absent from the base become new sets.
func MergeOverrides(base, overrides []TemplateSet) []TemplateSet {
	pending := make(map[string]TemplateSet, len(overrides))
	for _, o := range overrides {
		pending[o.IssuerID] = o
	}
	out := make([]TemplateSet, 0, len(base)+len(overrides))
	for _, b := range base {
		if o, ok := pending[b.IssuerID]; ok {
			out = append(out, mergeSet(b, o))
			delete(pending, b.IssuerID)
			continue
		}
		out = append(out, b)
	}
	for _, o := range overrides {
		if _, stillNew := pending[o.IssuerID]; stillNew {
			out = append(out, o)
		}
	}
	return out
}

func mergeSet(base, override TemplateSet) TemplateSet {
	replacements := make(map[string]FieldTemplate, len(override.Fields))
	for _, f := range override.Fields {
		replacements[f.FieldID] = f
	}
	merged := TemplateSet{IssuerID: base.IssuerID, Fields: make([]FieldTemplate, 0, len(base.Fields)+len(override.Fields))}
	for _, f := range base.Fields {
		if r, ok := replacements[f.FieldID]; ok {
			merged.Fields = append(merged.Fields, r)
			delete(replacements, f.FieldID)
			continue
		}
		merged.Fields = append(merged.Fields, f)
	}
	for _, f := range override.Fields {
		if _, added := replacements[f.FieldID]; added {
			merged.Fields = append(merged.Fields, f)
		}
	}
	return merged
}
