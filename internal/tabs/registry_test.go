package tabs

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_CreatesCourtTabs(t *testing.T) {
	r := NewRegistry([]string{"Cancha 1", "Cancha 2", "Cancha 3"})

	courts := r.Courts()
	require.Len(t, courts, 3)
	assert.Equal(t, "Cancha 1", courts[0].Name)
	assert.Equal(t, "Cancha 3", courts[2].Name)
	for _, c := range courts {
		assert.Equal(t, KindCourt, c.Kind)
		assert.Empty(t, c.Lines)
	}
}

func TestCreateOpenTab_SequentialNames(t *testing.T) {
	r := NewRegistry(nil)

	first := r.CreateOpenTab("")
	second := r.CreateOpenTab("")
	named := r.CreateOpenTab("Juan")

	assert.Equal(t, "Tab #1", first.Name)
	assert.Equal(t, "Tab #2", second.Name)
	assert.Equal(t, "Juan", named.Name)
	assert.Equal(t, KindOpen, named.Kind)
}

func TestAddLine_MergesSameProduct(t *testing.T) {
	r := NewRegistry(nil)
	tab := r.CreateOpenTab("")
	productID := uuid.New()

	_, err := r.AddLine(tab.ID, Line{ProductID: productID, Name: "Soda", UnitPrice: 1000, Quantity: 2})
	require.NoError(t, err)
	got, err := r.AddLine(tab.ID, Line{ProductID: productID, Name: "Soda", UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)

	require.Len(t, got.Lines, 1)
	assert.Equal(t, 3, got.Lines[0].Quantity)
	assert.Equal(t, int64(3000), got.Total())
	assert.Equal(t, 3, got.ItemCount())
}

func TestAddLine_DefaultsQuantityToOne(t *testing.T) {
	r := NewRegistry(nil)
	tab := r.CreateOpenTab("")

	got, err := r.AddLine(tab.ID, Line{ProductID: uuid.New(), Name: "Burger", UnitPrice: 2500})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Lines[0].Quantity)
}

func TestChangeQuantity_DropsLineAtZero(t *testing.T) {
	r := NewRegistry(nil)
	tab := r.CreateOpenTab("")
	productID := uuid.New()
	_, err := r.AddLine(tab.ID, Line{ProductID: productID, Name: "Soda", UnitPrice: 1000, Quantity: 2})
	require.NoError(t, err)

	got, err := r.ChangeQuantity(tab.ID, productID, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Lines[0].Quantity)

	got, err = r.ChangeQuantity(tab.ID, productID, -1)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
}

func TestChangeQuantity_UnknownProductIsNoop(t *testing.T) {
	r := NewRegistry(nil)
	tab := r.CreateOpenTab("")
	_, err := r.AddLine(tab.ID, Line{ProductID: uuid.New(), Name: "Soda", UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)

	got, err := r.ChangeQuantity(tab.ID, uuid.New(), -5)
	require.NoError(t, err)
	assert.Len(t, got.Lines, 1)
}

func TestParkAndResume(t *testing.T) {
	r := NewRegistry(nil)
	tab := r.CreateOpenTab("Mesa 4")

	require.NoError(t, r.Park(tab.ID))
	assert.Empty(t, r.OpenTabs())
	require.Len(t, r.ParkedTabs(), 1)

	require.NoError(t, r.Resume(tab.ID))
	require.Len(t, r.OpenTabs(), 1)
	assert.Empty(t, r.ParkedTabs())
}

func TestPark_CourtTabRejected(t *testing.T) {
	r := NewRegistry([]string{"Cancha 1"})
	court := r.Courts()[0]

	assert.Error(t, r.Park(court.ID))
}

func TestRemove_CourtTabRejected(t *testing.T) {
	r := NewRegistry([]string{"Cancha 1"})
	court := r.Courts()[0]

	assert.Error(t, r.Remove(court.ID))
	_, err := r.Get(court.ID)
	assert.NoError(t, err)
}

func TestRemove_OpenTabDiscarded(t *testing.T) {
	r := NewRegistry(nil)
	tab := r.CreateOpenTab("")

	require.NoError(t, r.Remove(tab.ID))
	_, err := r.Get(tab.ID)
	assert.ErrorIs(t, err, ErrTabNotFound)
}

func TestLinkCustomer(t *testing.T) {
	r := NewRegistry([]string{"Cancha 1"})
	court := r.Courts()[0]
	ref := &CustomerRef{ID: uuid.New(), Name: "Maria", DiscountPercent: 10}

	require.NoError(t, r.LinkCustomer(court.ID, ref))
	got, err := r.Get(court.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Customer)
	assert.Equal(t, "Maria", got.Customer.Name)

	require.NoError(t, r.LinkCustomer(court.ID, nil))
	got, _ = r.Get(court.ID)
	assert.Nil(t, got.Customer)
}

func TestFinalize_CourtClearedOpenRemoved(t *testing.T) {
	r := NewRegistry([]string{"Cancha 1"})
	court := r.Courts()[0]
	open := r.CreateOpenTab("")

	_, err := r.AddLine(court.ID, Line{ProductID: uuid.New(), Name: "Soda", UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, r.LinkCustomer(court.ID, &CustomerRef{ID: uuid.New(), Name: "Maria"}))
	_, err = r.AddLine(open.ID, Line{ProductID: uuid.New(), Name: "Soda", UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, r.Finalize(court.ID))
	got, err := r.Get(court.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Lines)
	assert.Nil(t, got.Customer)

	require.NoError(t, r.Finalize(open.ID))
	_, err = r.Get(open.ID)
	assert.ErrorIs(t, err, ErrTabNotFound)
}

func TestGet_CallerSeesCopy(t *testing.T) {
	r := NewRegistry([]string{"Cancha 1"})
	court := r.Courts()[0]
	_, err := r.AddLine(court.ID, Line{ProductID: uuid.New(), Name: "Soda", UnitPrice: 1000, Quantity: 1})
	require.NoError(t, err)

	got, err := r.Get(court.ID)
	require.NoError(t, err)
	got.Lines[0].Quantity = 99

	again, _ := r.Get(court.ID)
	assert.Equal(t, 1, again.Lines[0].Quantity)
}
