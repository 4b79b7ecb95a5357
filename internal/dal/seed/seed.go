package seed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/corray333/grubdash/internal/service/models/dish"
	"github.com/corray333/grubdash/internal/service/models/order"
)

//go:embed data.json
var defaultData []byte

var ErrDuplicateID = errors.New("duplicate id in seed data")

// Data is the content both collections start with.
type Data struct {
	Dishes []dish.Dish   `json:"dishes"`
	Orders []order.Order `json:"orders"`
}

// IDs returns every id in d, dishes first.
func (d Data) IDs() []string {
	ids := make([]string, 0, len(d.Dishes)+len(d.Orders))
	for _, x := range d.Dishes {
		ids = append(ids, x.ID)
	}
	for _, x := range d.Orders {
		ids = append(ids, x.ID)
	}

	return ids
}

// Default returns the bundled seed data.
func Default() (Data, error) {
	return Parse(defaultData)
}

// Load reads seed data from path, or the bundled data when path is empty.
func Load(path string) (Data, error) {
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	return Parse(raw)
}

// Parse decodes seed data and rejects ids that appear twice in a collection.
func Parse(raw []byte) (Data, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("failed to decode seed data: %w", err)
	}

	dishIDs := make(map[string]struct{}, len(d.Dishes))
	for _, x := range d.Dishes {
		if _, ok := dishIDs[x.ID]; ok {
			return Data{}, fmt.Errorf("%w: dish %s", ErrDuplicateID, x.ID)
		}
		dishIDs[x.ID] = struct{}{}
	}

	orderIDs := make(map[string]struct{}, len(d.Orders))
	for _, x := range d.Orders {
		if _, ok := orderIDs[x.ID]; ok {
			return Data{}, fmt.Errorf("%w: order %s", ErrDuplicateID, x.ID)
		}
		orderIDs[x.ID] = struct{}{}
	}

	return d, nil
}
