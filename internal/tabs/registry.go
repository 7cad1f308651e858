// Package tabs holds the live, unsettled tabs for the venue: one fixed tab
// per court plus any number of walk-up tabs opened at the counter. Tabs are
// process-local state; they only reach the database when they settle.
package tabs

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes fixed court tabs from walk-up tabs
type Kind string

const (
	KindCourt Kind = "court"
	KindOpen  Kind = "open"
)

// Line is one cart row. Price and cost are snapshotted from the catalog at
// add time, in cents.
type Line struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	UnitCost  int64     `json:"unit_cost"`
	Quantity  int       `json:"quantity"`
}

// CustomerRef is the slice of customer data a tab needs while open
type CustomerRef struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DiscountPercent int       `json:"discount_percent"`
}

// Tab is a named cart. Court tabs survive settlement (cleared, never
// removed); open tabs are discarded once settled.
type Tab struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Kind      Kind         `json:"kind"`
	Lines     []Line       `json:"lines"`
	Customer  *CustomerRef `json:"customer,omitempty"`
	Parked    bool         `json:"parked"`
	CreatedAt time.Time    `json:"created_at"`
}

// Total returns the cart total in cents, zero for an empty cart.
func (t *Tab) Total() int64 {
	var total int64
	for _, l := range t.Lines {
		total += l.UnitPrice * int64(l.Quantity)
	}
	return total
}

// ItemCount returns the number of units across all lines.
func (t *Tab) ItemCount() int {
	var n int
	for _, l := range t.Lines {
		n += l.Quantity
	}
	return n
}

// ErrTabNotFound is returned when an operation names a tab the registry
// does not hold.
var ErrTabNotFound = fmt.Errorf("tab not found")

// Registry owns every live tab. All access goes through the mutex; callers
// only ever see copies.
type Registry struct {
	mu      sync.RWMutex
	tabs    map[uuid.UUID]*Tab
	courts  []uuid.UUID // court display order
	openSeq int
}

// NewRegistry creates a registry with one fixed tab per court name.
func NewRegistry(courtNames []string) *Registry {
	r := &Registry{
		tabs: make(map[uuid.UUID]*Tab),
	}
	for _, name := range courtNames {
		t := &Tab{
			ID:        uuid.New(),
			Name:      name,
			Kind:      KindCourt,
			Lines:     []Line{},
			CreatedAt: time.Now(),
		}
		r.tabs[t.ID] = t
		r.courts = append(r.courts, t.ID)
	}
	return r
}

// Courts returns the court tabs in display order.
func (r *Registry) Courts() []Tab {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tab, 0, len(r.courts))
	for _, id := range r.courts {
		out = append(out, r.tabs[id].clone())
	}
	return out
}

// OpenTabs returns the active walk-up tabs, oldest first, excluding parked
// ones.
func (r *Registry) OpenTabs() []Tab {
	return r.openTabs(false)
}

// ParkedTabs returns the walk-up tabs saved for later.
func (r *Registry) ParkedTabs() []Tab {
	return r.openTabs(true)
}

func (r *Registry) openTabs(parked bool) []Tab {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Tab
	for _, t := range r.tabs {
		if t.Kind == KindOpen && t.Parked == parked {
			out = append(out, t.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Get returns a copy of the tab.
func (r *Registry) Get(id uuid.UUID) (Tab, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tabs[id]
	if !ok {
		return Tab{}, ErrTabNotFound
	}
	return t.clone(), nil
}

// CreateOpenTab opens a walk-up tab. An empty name gets a sequential one.
func (r *Registry) CreateOpenTab(name string) Tab {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.openSeq++
	if name == "" {
		name = fmt.Sprintf("Tab #%d", r.openSeq)
	}
	t := &Tab{
		ID:        uuid.New(),
		Name:      name,
		Kind:      KindOpen,
		Lines:     []Line{},
		CreatedAt: time.Now(),
	}
	r.tabs[t.ID] = t
	return t.clone()
}

// Remove discards a walk-up tab and whatever is on it. Court tabs cannot be
// removed.
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tabs[id]
	if !ok {
		return ErrTabNotFound
	}
	if t.Kind == KindCourt {
		return fmt.Errorf("court tab %q cannot be removed", t.Name)
	}
	delete(r.tabs, id)
	return nil
}

// Park shelves a walk-up tab so it stops showing on the active list.
func (r *Registry) Park(id uuid.UUID) error {
	return r.setParked(id, true)
}

// Resume brings a parked tab back to the active list.
func (r *Registry) Resume(id uuid.UUID) error {
	return r.setParked(id, false)
}

func (r *Registry) setParked(id uuid.UUID, parked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tabs[id]
	if !ok {
		return ErrTabNotFound
	}
	if t.Kind != KindOpen {
		return fmt.Errorf("only walk-up tabs can be parked")
	}
	t.Parked = parked
	return nil
}

// LinkCustomer attaches a customer to the tab; a nil ref detaches.
func (r *Registry) LinkCustomer(id uuid.UUID, ref *CustomerRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tabs[id]
	if !ok {
		return ErrTabNotFound
	}
	t.Customer = ref
	return nil
}

// AddLine puts quantity units of a product on the tab. If the product is
// already on the cart the quantities merge; the stored price snapshot wins.
func (r *Registry) AddLine(id uuid.UUID, line Line) (Tab, error) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tabs[id]
	if !ok {
		return Tab{}, ErrTabNotFound
	}
	for i := range t.Lines {
		if t.Lines[i].ProductID == line.ProductID {
			t.Lines[i].Quantity += line.Quantity
			return t.clone(), nil
		}
	}
	t.Lines = append(t.Lines, line)
	return t.clone(), nil
}

// ChangeQuantity adds delta to a line's quantity. The line is dropped when
// the result reaches zero or below. Unknown products are a no-op.
func (r *Registry) ChangeQuantity(id, productID uuid.UUID, delta int) (Tab, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tabs[id]
	if !ok {
		return Tab{}, ErrTabNotFound
	}
	for i := range t.Lines {
		if t.Lines[i].ProductID != productID {
			continue
		}
		t.Lines[i].Quantity += delta
		if t.Lines[i].Quantity <= 0 {
			t.Lines = append(t.Lines[:i], t.Lines[i+1:]...)
		}
		break
	}
	return t.clone(), nil
}

// Finalize wraps up a settled tab: court tabs are wiped clean for the next
// group, walk-up tabs disappear. Called only after the settlement has been
// persisted.
func (r *Registry) Finalize(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tabs[id]
	if !ok {
		return ErrTabNotFound
	}
	if t.Kind == KindCourt {
		t.Lines = []Line{}
		t.Customer = nil
		return nil
	}
	delete(r.tabs, id)
	return nil
}

func (t *Tab) clone() Tab {
	c := *t
	c.Lines = make([]Line, len(t.Lines))
	copy(c.Lines, t.Lines)
	if t.Customer != nil {
		ref := *t.Customer
		c.Customer = &ref
	}
	return c
}
