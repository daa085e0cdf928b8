package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(b Batch) []uint {
	out := make([]uint, 0, len(b.Components))
	for _, c := range b.Components {
		out = append(out, c.ID)
	}
	return out
}

func TestFanOutDedupByNameSerialAcrossShips(t *testing.T) {
	// U follows types A(1) and B(2). X and Z share name+serial on different ships.
	x := ExpiringComponent{ID: 1, Name: "Pump", SerialNumber: strPtr("P-1"), ComponentTypeID: 1, ShipName: strPtr("Sedov")}
	y := ExpiringComponent{ID: 2, Name: "Radar", SerialNumber: strPtr("R-7"), ComponentTypeID: 2, ShipName: strPtr("Sedov")}
	z := ExpiringComponent{ID: 3, Name: "Pump", SerialNumber: strPtr("P-1"), ComponentTypeID: 1, ShipName: strPtr("Kruzenshtern")}
	subs := []Subscriber{{TelegramID: 100, TypeIDs: []uint{1, 2}}}

	batches := FanOut([]ExpiringComponent{x, y, z}, subs, ByNameSerial)
	require.Len(t, batches, 1)
	assert.Equal(t, int64(100), batches[0].TelegramID)
	assert.Equal(t, []uint{1, 2}, ids(batches[0]))

	// Keyed by id both pumps are distinct components and both are reported.
	batches = FanOut([]ExpiringComponent{x, y, z}, subs, ByComponentID)
	require.Len(t, batches, 1)
	assert.Equal(t, []uint{1, 3, 2}, ids(batches[0]))
}

func TestFanOutNoSubscriptions(t *testing.T) {
	components := []ExpiringComponent{{ID: 1, ComponentTypeID: 1}}

	assert.Empty(t, FanOut(components, nil, ByComponentID))
	assert.Empty(t, FanOut(nil, []Subscriber{{TelegramID: 1, TypeIDs: []uint{1}}}, ByComponentID))
}

func TestFanOutSkipsSubscribersWithoutMatches(t *testing.T) {
	components := []ExpiringComponent{{ID: 1, ComponentTypeID: 1}, {ID: 2, ComponentTypeID: 2}}
	subs := []Subscriber{
		{TelegramID: 10, TypeIDs: []uint{3}},
		{TelegramID: 20, TypeIDs: []uint{2}},
		{TelegramID: 30, TypeIDs: nil},
	}

	batches := FanOut(components, subs, ByComponentID)
	require.Len(t, batches, 1)
	assert.Equal(t, int64(20), batches[0].TelegramID)
	assert.Equal(t, []uint{2}, ids(batches[0]))
}

func TestFanOutPreservesOrder(t *testing.T) {
	components := []ExpiringComponent{
		{ID: 5, ComponentTypeID: 2},
		{ID: 1, ComponentTypeID: 1},
		{ID: 7, ComponentTypeID: 2},
		{ID: 3, ComponentTypeID: 1},
	}
	subs := []Subscriber{
		{TelegramID: 1, TypeIDs: []uint{2, 1}},
		{TelegramID: 2, TypeIDs: []uint{1}},
	}

	batches := FanOut(components, subs, ByComponentID)
	require.Len(t, batches, 2)
	assert.Equal(t, []uint{5, 7, 1, 3}, ids(batches[0]))
	assert.Equal(t, []uint{1, 3}, ids(batches[1]))
}

func TestFanOutDuplicateTypeInSubscriber(t *testing.T) {
	components := []ExpiringComponent{{ID: 1, ComponentTypeID: 1}}
	subs := []Subscriber{{TelegramID: 1, TypeIDs: []uint{1, 1}}}

	batches := FanOut(components, subs, nil)
	require.Len(t, batches, 1)
	assert.Equal(t, []uint{1}, ids(batches[0]))
}

func TestByNameSerialSeparator(t *testing.T) {
	a := ExpiringComponent{Name: "AB", SerialNumber: strPtr("C")}
	b := ExpiringComponent{Name: "A", SerialNumber: strPtr("BC")}
	assert.NotEqual(t, ByNameSerial(a), ByNameSerial(b))

	// A missing serial and an empty one describe the same part.
	assert.Equal(t, ByNameSerial(ExpiringComponent{Name: "X"}), ByNameSerial(ExpiringComponent{Name: "X", SerialNumber: strPtr("")}))
}

func TestKeyFuncFor(t *testing.T) {
	for _, name := range []string{"", "id", "ID"} {
		fn, err := KeyFuncFor(name)
		require.NoError(t, err)
		assert.Equal(t, "id:9", fn(ExpiringComponent{ID: 9}))
	}

	fn, err := KeyFuncFor("name_serial")
	require.NoError(t, err)
	assert.Equal(t, ByNameSerial(ExpiringComponent{Name: "n"}), fn(ExpiringComponent{Name: "n"}))

	_, err = KeyFuncFor("serial")
	assert.Error(t, err)
}
