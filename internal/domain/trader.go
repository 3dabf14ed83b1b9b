package domain

// AssortItem is one item offered in a trader assortment.
type AssortItem struct {
	ID       string `json:"_id"`
	Tpl      string `json:"_tpl"`
	ParentID string `json:"parentId,omitempty"`
	SlotID   string `json:"slotId,omitempty"`

	raw rawObject
}

// BarterComponent is one requirement of a barter.
type BarterComponent struct {
	Count float64 `json:"count"`
	Tpl   string  `json:"_tpl"`

	raw rawObject
}

// Assort is a trader's assortment. BarterScheme is keyed by assort item id.
type Assort struct {
	Items        []AssortItem                   `json:"items"`
	BarterScheme map[string][][]BarterComponent `json:"barter_scheme"`

	raw rawObject
}

// Trader is a vendor and its assortment.
type Trader struct {
	Assort *Assort `json:"assort,omitempty"`

	raw rawObject
}

// IndexOf returns the position of the first assort item with the given template, or -1.
func (a *Assort) IndexOf(tpl string) int {
	for i := range a.Items {
		if a.Items[i].Tpl == tpl {
			return i
		}
	}
	return -1
}

type (
	assortItemFields      AssortItem
	barterComponentFields BarterComponent
	assortFields          Assort
	traderFields          Trader
)

func (a *AssortItem) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*assortItemFields)(a), &a.raw)
}

func (a AssortItem) MarshalJSON() ([]byte, error) {
	return encodeObject(assortItemFields(a), a.raw)
}

func (b *BarterComponent) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*barterComponentFields)(b), &b.raw)
}

func (b BarterComponent) MarshalJSON() ([]byte, error) {
	return encodeObject(barterComponentFields(b), b.raw)
}

func (a *Assort) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*assortFields)(a), &a.raw)
}

func (a Assort) MarshalJSON() ([]byte, error) {
	return encodeObject(assortFields(a), a.raw)
}

func (t *Trader) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*traderFields)(t), &t.raw)
}

func (t Trader) MarshalJSON() ([]byte, error) {
	return encodeObject(traderFields(t), t.raw)
}
