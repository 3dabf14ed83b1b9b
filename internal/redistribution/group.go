package redistribution

import "sort"

// VariantGroup is one origin and the raw weights of every entry sharing its
// loot presence. The origin itself is always present in Weights.
type VariantGroup struct {
	OriginID string
	Weights  map[string]float64
	order    []string
}

// Variants returns the variant ids in the order they were added. The origin
// comes first.
func (g *VariantGroup) Variants() []string {
	return append([]string(nil), g.order...)
}

func (g *VariantGroup) set(id string, weight float64) {
	if _, ok := g.Weights[id]; !ok {
		g.order = append(g.order, id)
	}
	g.Weights[id] = weight
}

// GroupBuilder collects variant groups from config records, keeping the order
// in which origins first appear.
type GroupBuilder struct {
	groups map[string]*VariantGroup
	order  []string
}

// NewGroupBuilder returns an empty builder.
func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{groups: make(map[string]*VariantGroup)}
}

// Add merges weights into the group of originID, creating it with the origin
// at OriginSelfWeight on first use. Later weights overwrite earlier ones,
// including the origin's own.
func (b *GroupBuilder) Add(originID string, weights map[string]float64) {
	g, ok := b.groups[originID]
	if !ok {
		g = &VariantGroup{OriginID: originID, Weights: make(map[string]float64)}
		g.set(originID, OriginSelfWeight)
		b.groups[originID] = g
		b.order = append(b.order, originID)
	}

	ids := make([]string, 0, len(weights))
	for id := range weights {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		g.set(id, weights[id])
	}
}

// Groups returns the built groups in first-appearance order.
func (b *GroupBuilder) Groups() []*VariantGroup {
	out := make([]*VariantGroup, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.groups[id])
	}
	return out
}

// Share is the propagation fraction of one variant.
type Share struct {
	VariantID string
	Fraction  float64
}

// Normalize turns raw weights into fractions: weight/sum + MinimumShare.
// ok is false when the weights sum to zero; the group must then be left alone.
// Fractions do not sum to 1 and may exceed 1.
func Normalize(g *VariantGroup) (shares []Share, ok bool) {
	var sum float64
	for _, id := range g.order {
		sum += g.Weights[id]
	}
	if sum == 0 {
		return nil, false
	}

	shares = make([]Share, 0, len(g.order))
	for _, id := range g.order {
		shares = append(shares, Share{
			VariantID: id,
			Fraction:  g.Weights[id]/sum + MinimumShare,
		})
	}
	return shares, true
}
