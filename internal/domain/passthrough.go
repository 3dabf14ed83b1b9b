package domain

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// rawObject keeps every key of a decoded JSON object. On encode, keys the
// modeled fields did not write are appended with their original value, so
// host fields the pass never reads survive a load/save cycle.
type rawObject map[string]json.RawMessage

// decodeObject decodes data into v and records the raw object into raw.
func decodeObject[T any](data []byte, v *T, raw *rawObject) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if len(obj) == 0 {
		*raw = nil
		return nil
	}
	*raw = obj
	return nil
}

// encodeObject marshals v and appends the keys of raw that v did not write.
// Key matching is case-insensitive, as in encoding/json decoding.
func encodeObject[T any](v T, raw rawObject) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(raw) == 0 {
		return data, err
	}

	var written map[string]json.RawMessage
	if err := json.Unmarshal(data, &written); err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(written))
	for k := range written {
		seen[strings.ToLower(k)] = struct{}{}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if _, ok := seen[strings.ToLower(k)]; !ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return data, nil
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(bytes.TrimSuffix(bytes.TrimSpace(data), []byte("}")))
	needComma := len(written) > 0
	for _, k := range keys {
		if needComma {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(raw[k])
		needComma = true
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
