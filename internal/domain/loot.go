package domain

// WeightedEntry is one element of a flat weighted pool.
type WeightedEntry struct {
	Tpl                 string `json:"tpl"`
	RelativeProbability int    `json:"relativeProbability"`
}

// WeightedPool is a flat list of weighted entries. Keys are unique within a pool.
type WeightedPool []WeightedEntry

// IndexOf returns the position of tpl in the pool, or -1.
func (p WeightedPool) IndexOf(tpl string) int {
	for i := range p {
		if p[i].Tpl == tpl {
			return i
		}
	}
	return -1
}

// ContainerLoot is the static loot definition of one container.
type ContainerLoot struct {
	ItemDistribution WeightedPool `json:"itemDistribution"`

	raw rawObject
}

// ItemUpd carries mutable per-instance state.
type ItemUpd struct {
	StackObjectsCount int `json:"StackObjectsCount"`

	raw rawObject
}

// ItemInstance is a concrete item placed at a spawn point.
type ItemInstance struct {
	ID  string   `json:"_id"`
	Tpl string   `json:"_tpl"`
	Upd *ItemUpd `json:"upd,omitempty"`

	raw rawObject
}

// StackCount returns the stack size, or 0 when the instance carries no upd.
func (i ItemInstance) StackCount() int {
	if i.Upd == nil {
		return 0
	}
	return i.Upd.StackObjectsCount
}

// ComposedKey identifies the instance a distribution entry refers to.
type ComposedKey struct {
	Key string `json:"key"`
}

// DistributionEntry is a spawn probability for one instance of a spawn point.
type DistributionEntry struct {
	ComposedKey         ComposedKey `json:"composedKey"`
	RelativeProbability int         `json:"relativeProbability"`
}

// SpawnPointTemplate holds the candidate item instances of a spawn point.
type SpawnPointTemplate struct {
	ID    string         `json:"Id,omitempty"`
	Items []ItemInstance `json:"Items"`

	raw rawObject
}

// SpawnPoint is a loose loot location on a map.
type SpawnPoint struct {
	LocationID       string              `json:"locationId,omitempty"`
	Probability      float64             `json:"probability,omitempty"`
	Template         SpawnPointTemplate  `json:"template"`
	ItemDistribution []DistributionEntry `json:"itemDistribution"`

	raw rawObject
}

// HasInstance reports whether an item instance with the given id exists.
func (s *SpawnPoint) HasInstance(id string) bool {
	for _, itm := range s.Template.Items {
		if itm.ID == id {
			return true
		}
	}
	return false
}

// LooseLoot is the loose loot table of a map.
type LooseLoot struct {
	Spawnpoints []SpawnPoint `json:"spawnpoints"`

	raw rawObject
}

// Location is one map region.
type Location struct {
	LooseLoot LooseLoot `json:"looseLoot"`

	raw rawObject
}

type (
	containerLootFields      ContainerLoot
	itemUpdFields            ItemUpd
	itemInstanceFields       ItemInstance
	spawnPointTemplateFields SpawnPointTemplate
	spawnPointFields         SpawnPoint
	looseLootFields          LooseLoot
	locationFields           Location
)

func (c *ContainerLoot) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*containerLootFields)(c), &c.raw)
}

func (c ContainerLoot) MarshalJSON() ([]byte, error) {
	return encodeObject(containerLootFields(c), c.raw)
}

func (u *ItemUpd) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*itemUpdFields)(u), &u.raw)
}

func (u ItemUpd) MarshalJSON() ([]byte, error) {
	return encodeObject(itemUpdFields(u), u.raw)
}

func (i *ItemInstance) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*itemInstanceFields)(i), &i.raw)
}

func (i ItemInstance) MarshalJSON() ([]byte, error) {
	return encodeObject(itemInstanceFields(i), i.raw)
}

func (t *SpawnPointTemplate) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*spawnPointTemplateFields)(t), &t.raw)
}

func (t SpawnPointTemplate) MarshalJSON() ([]byte, error) {
	return encodeObject(spawnPointTemplateFields(t), t.raw)
}

func (s *SpawnPoint) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*spawnPointFields)(s), &s.raw)
}

func (s SpawnPoint) MarshalJSON() ([]byte, error) {
	return encodeObject(spawnPointFields(s), s.raw)
}

func (l *LooseLoot) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*looseLootFields)(l), &l.raw)
}

func (l LooseLoot) MarshalJSON() ([]byte, error) {
	return encodeObject(looseLootFields(l), l.raw)
}

func (l *Location) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*locationFields)(l), &l.raw)
}

func (l Location) MarshalJSON() ([]byte, error) {
	return encodeObject(locationFields(l), l.raw)
}
