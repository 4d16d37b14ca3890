package shopping

import (
	"bytes"
	"encoding/json"
)

// Item is a single shopping list line as supplied by the caller. Amount and
// the three price fields are loosely typed; any of them may be missing.
type Item struct {
	Name           string `json:"name"`
	Category       string `json:"category,omitempty"`
	Amount         Value  `json:"amount,omitempty"`
	Price          Value  `json:"price,omitempty"`
	UnitPrice      Value  `json:"unitPrice,omitempty"`
	EstimatedPrice Value  `json:"estimatedPrice,omitempty"`
}

type categoryGroup struct {
	category string
	items    []Item
}

// List accepts the three shopping list shapes producers send: a bare item
// array, an object with an items array, or an object whose items field maps
// category names to item arrays. Grouped input keeps the categories in their
// declaration order so downstream rollups are deterministic.
type List struct {
	flat    []Item
	grouped []categoryGroup
}

// NewList wraps a flat item slice.
func NewList(items []Item) *List {
	return &List{flat: items}
}

func (l *List) UnmarshalJSON(data []byte) error {
	*l = List{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '[' {
		return json.Unmarshal(data, &l.flat)
	}
	if data[0] != '{' {
		return nil
	}

	var wrapper struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	items := bytes.TrimSpace(wrapper.Items)
	if len(items) == 0 || string(items) == "null" {
		return nil
	}
	if items[0] == '[' {
		return json.Unmarshal(items, &l.flat)
	}
	if items[0] != '{' {
		return nil
	}

	// Walk the object tokens by hand: a generic map decode would lose the
	// category declaration order.
	dec := json.NewDecoder(bytes.NewReader(items))
	if _, err := dec.Token(); err != nil { // opening brace
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '[' {
			// Non-array category values are ignored.
			continue
		}
		var categoryItems []Item
		if err := json.Unmarshal(raw, &categoryItems); err != nil {
			return err
		}
		l.grouped = append(l.grouped, categoryGroup{category: category, items: categoryItems})
	}
	return nil
}

func (l *List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Items []Item `json:"items"`
	}{Items: l.normalized()})
}

// normalized flattens the list into one ordered item sequence. Grouped items
// get their category back-filled from the group key when they carry none.
func (l *List) normalized() []Item {
	if l == nil {
		return nil
	}
	if l.grouped == nil {
		return l.flat
	}

	var items []Item
	for _, group := range l.grouped {
		for _, item := range group.items {
			if item.Category == "" {
				item.Category = group.category
			}
			items = append(items, item)
		}
	}
	return items
}
