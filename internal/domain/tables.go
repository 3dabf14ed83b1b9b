package domain

// Tables is the host catalog the balancing pass mutates in place.
type Tables struct {
	Items      map[string]*ItemTemplate  `json:"items"`
	Handbook   Handbook                  `json:"handbook"`
	Prices     map[string]int            `json:"prices"`
	Traders    map[string]*Trader        `json:"traders"`
	StaticAmmo map[string]WeightedPool   `json:"staticAmmo"`
	StaticLoot map[string]*ContainerLoot `json:"staticLoot"`
	Locations  map[string]*Location      `json:"locations"`

	raw rawObject
}

// Reporter receives progress and problems from the balancing pass.
// Arguments after the message are slog-style key/value pairs.
type Reporter interface {
	Info(msg string, args ...any)
	Success(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type (
	tablesFields Tables
)

func (t *Tables) UnmarshalJSON(data []byte) error {
	return decodeObject(data, (*tablesFields)(t), &t.raw)
}

func (t Tables) MarshalJSON() ([]byte, error) {
	return encodeObject(tablesFields(t), t.raw)
}
