package liststore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/idilsaglam/shoplist/internal/model"
)

// ProductListKey is the single key the list is stored under.
const ProductListKey = "product_list"

// ErrCorrupt is wrapped by KV implementations whose backing data can no
// longer be parsed at all. Load treats it like an undecodable value.
var ErrCorrupt = errors.New("stored data is corrupt")

// KV is the string key-value store the list is persisted to.
type KV interface {
	GetString(key string) (value string, ok bool, err error)
	PutString(key, value string) error
}

// DecodeError means the stored value could not be decoded.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store owns the in-memory list. Callers only ever see copies.
// Not safe for concurrent use.
type Store struct {
	kv    KV
	items []model.Item
	newID func() string
}

type Option func(*Store)

// WithIDFunc replaces the random id generator.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the in-memory list with the stored one.
// A missing key yields an empty list. An undecodable value also yields an
// empty list, together with a *DecodeError for the caller to report.
func (s *Store) Load() ([]model.Item, error) {
	raw, ok, err := s.kv.GetString(ProductListKey)
	if errors.Is(err, ErrCorrupt) {
		s.items = nil
		return []model.Item{}, &DecodeError{Key: ProductListKey, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", ProductListKey, err)
	}
	if !ok {
		s.items = nil
		return []model.Item{}, nil
	}
	items, err := Decode(raw)
	if err != nil {
		s.items = nil
		return []model.Item{}, &DecodeError{Key: ProductListKey, Err: err}
	}
	s.items = items
	return s.Items(), nil
}

// Add appends a new unpurchased item and returns it.
func (s *Store) Add(name, quantityText string) model.Item {
	it := model.Item{
		ID:       s.newID(),
		Name:     name,
		Quantity: model.QuantityOrDefault(quantityText),
	}
	s.items = append(s.items, it)
	return it
}

// Toggle flips Purchased on the item with the given id, if any.
func (s *Store) Toggle(id string) {
	if i := s.index(id); i >= 0 {
		s.items[i].Purchased = !s.items[i].Purchased
	}
}

// Delete removes the item with the given id, if any.
func (s *Store) Delete(id string) {
	if i := s.index(id); i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
}

// Persist overwrites the stored list with items.
func (s *Store) Persist(items []model.Item) error {
	raw, err := Encode(items)
	if err != nil {
		return err
	}
	if err := s.kv.PutString(ProductListKey, raw); err != nil {
		return fmt.Errorf("write %q: %w", ProductListKey, err)
	}
	return nil
}

// Save persists the current list.
func (s *Store) Save() error { return s.Persist(s.items) }

// Items returns a snapshot of the list.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Find(id string) (model.Item, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Encode renders items in the stored format. A nil list encodes as [].
func Encode(items []model.Item) (string, error) {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	return string(b), nil
}

// Decode parses the stored format. JSON null decodes to an empty list.
func Decode(raw string) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
