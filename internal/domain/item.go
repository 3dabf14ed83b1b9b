package domain

// ItemTemplate is one entry of the host's item metadata table.
type ItemTemplate struct {
	ID     string    `json:"_id"`
	Name   string    `json:"_name,omitempty"`
	Parent string    `json:"_parent,omitempty"`
	Props  ItemProps `json:"_props"`

	raw rawObject
}

// ItemProps holds the template properties the balancing pass reads or edits.
// Caliber groups ammunition into static ammo pools.
type ItemProps struct {
	Caliber             string `json:"Caliber,omitempty"`
	StackMaxSize        int    `json:"StackMaxSize,omitempty"`
	CanSellOnRagfair    bool   `json:"CanSellOnRagfair"`
	CanRequireOnRagfair bool   `json:"CanRequireOnRagfair"`

	raw rawObject
}

// HandbookItem is one priced entry of the handbook.
type HandbookItem struct {
	ID       string `json:"Id"`
	ParentID string `json:"ParentId,omitempty"`
	Price    int    `json:"Price"`

	raw rawObject
}

// Handbook lists reference prices for items.
type Handbook struct {
	Items []HandbookItem `json:"Items,omitempty"`

	raw rawObject
}

// Find returns the handbook entry for id, or nil.
func (h *Handbook) Find(id string) *HandbookItem {
	for i := range h.Items {
		if h.Items[i].ID == id {
			return &h.Items[i]
		}
	}
	return nil
}

type (
	itemTemplateFields ItemTemplate
	itemPropsFields    ItemProps
	handbookItemFields HandbookItem
	handbookFields     Handbook
)

func (t *ItemTemplate) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*itemTemplateFields)(t), &t.raw)
}

func (t ItemTemplate) MarshalJSON() ([]byte, error) {
	return encodeObject(itemTemplateFields(t), t.raw)
}

func (p *ItemProps) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*itemPropsFields)(p), &p.raw)
}

func (p ItemProps) MarshalJSON() ([]byte, error) {
	return encodeObject(itemPropsFields(p), p.raw)
}

func (h *HandbookItem) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*handbookItemFields)(h), &h.raw)
}

func (h HandbookItem) MarshalJSON() ([]byte, error) {
	return encodeObject(handbookItemFields(h), h.raw)
}

func (h *Handbook) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*handbookFields)(h), &h.raw)
}

func (h Handbook) MarshalJSON() ([]byte, error) {
	return encodeObject(handbookFields(h), h.raw)
}
