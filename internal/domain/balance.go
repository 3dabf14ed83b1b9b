package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PlaceholderOriginID is the template value left in unfilled config entries.
// Records still carrying it are skipped by the redistribution pass.
const PlaceholderOriginID = "idHere"

// ErrInvalidRelativeWeight is returned when a relative weight is neither a number nor an object.
var ErrInvalidRelativeWeight = errors.New("relative weight must be a number or an object of numbers")

// RelativeWeight is the value stored under the origin key. It is either a
// single number, the weight of the record's own item, or an object mapping
// variant ids to weights.
type RelativeWeight struct {
	Scalar   *float64
	Variants map[string]float64
}

// Weights resolves the value into variant weights for the record keyed by recordID.
func (w RelativeWeight) Weights(recordID string) map[string]float64 {
	if w.Scalar != nil {
		return map[string]float64{recordID: *w.Scalar}
	}
	out := make(map[string]float64, len(w.Variants))
	for id, v := range w.Variants {
		out[id] = v
	}
	return out
}

// UnmarshalJSON accepts a number or an object of numbers.
func (w *RelativeWeight) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		w.Scalar, w.Variants = &n, nil
		return nil
	}
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRelativeWeight, string(data))
	}
	w.Scalar, w.Variants = nil, m
	return nil
}

// MarshalJSON writes the value back in the shape it was read in.
func (w RelativeWeight) MarshalJSON() ([]byte, error) {
	if w.Scalar != nil {
		return json.Marshal(*w.Scalar)
	}
	return json.Marshal(w.Variants)
}

// UnmarshalYAML accepts a scalar or a mapping node.
func (w *RelativeWeight) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n float64
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("%w: line %d", ErrInvalidRelativeWeight, node.Line)
		}
		w.Scalar, w.Variants = &n, nil
	case yaml.MappingNode:
		var m map[string]float64
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("%w: line %d", ErrInvalidRelativeWeight, node.Line)
		}
		w.Scalar, w.Variants = nil, m
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidRelativeWeight, node.Line)
	}
	return nil
}

// SpawnRelativeProbability maps an origin id to a relative weight.
// A well-formed value has exactly one origin key.
type SpawnRelativeProbability map[string]RelativeWeight

// Origin returns the single origin id and its raw value.
// ok is false when the map does not hold exactly one origin.
func (s SpawnRelativeProbability) Origin() (originID string, weight RelativeWeight, ok bool) {
	if len(s) != 1 {
		return "", RelativeWeight{}, false
	}
	for id, w := range s {
		return id, w, true
	}
	return "", RelativeWeight{}, false
}

// ConfigRecord is the balancing configuration for one item. Every field is
// optional; nil means "leave the catalog untouched".
type ConfigRecord struct {
	SpawnRelativeProbability SpawnRelativeProbability `json:"spawnRelativeProbability,omitempty" yaml:"spawnRelativeProbability,omitempty"`
	CanRequireOnRagfair      *bool                    `json:"CanRequireOnRagfair,omitempty" yaml:"CanRequireOnRagfair,omitempty"`
	CanSellOnRagfair         *bool                    `json:"CanSellOnRagfair,omitempty" yaml:"CanSellOnRagfair,omitempty"`
	RemoveFromTraders        []string                 `json:"RemoveFromTraders,omitempty" yaml:"RemoveFromTraders,omitempty" validate:"omitempty,dive,required"`
	ChangeTraderPrice        map[string]int           `json:"ChangeTraderPrice,omitempty" yaml:"ChangeTraderPrice,omitempty" validate:"omitempty,dive,keys,required,endkeys,gte=0"`
	HandbookPrice            *int                     `json:"handbookPrice,omitempty" yaml:"handbookPrice,omitempty" validate:"omitempty,gte=0"`
	FleaPrice                *int                     `json:"fleaPrice,omitempty" yaml:"fleaPrice,omitempty" validate:"omitempty,gte=0"`
}

// NamedRecord pairs a record with the item id it is keyed by.
type NamedRecord struct {
	ID     string
	Record ConfigRecord
}
