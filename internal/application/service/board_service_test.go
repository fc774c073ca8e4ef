package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotuspos/counter/internal/domain/entity"
)

func boardBackend() *fakeBackend {
	return &fakeBackend{
		sections: []entity.Section{
			{ID: "s1", Name: "AC Hall", IsDefault: true},
			{ID: "s2", Name: "Garden"},
		},
		tables: []entity.Table{
			{ID: "t1", Name: "T1", Section: entity.Section{ID: "s1", Name: "AC Hall"}},
			{ID: "t2", Name: "T2", Section: entity.Section{ID: "s1", Name: "AC Hall"}},
			{ID: "t3", Name: "G1", Section: entity.Section{ID: "s2", Name: "Garden"}},
		},
		billsByTable: map[string][]entity.BillSummary{
			"t1": {
				{ID: "b0", OrderNumber: "100", IsTemporary: false, IsPrint: 1, Total: 80},
				{ID: "b1", OrderNumber: "101", IsTemporary: true, IsPrint: 1, Total: 250},
				{ID: "b2", OrderNumber: "102", IsTemporary: true, IsPrint: 0, Total: 40},
			},
			"t3": {
				{ID: "b3", OrderNumber: "103", IsTemporary: true, IsPrint: 0, Total: 120},
			},
		},
	}
}

func newBoard(t *testing.T, backend *fakeBackend) *BoardService {
	t.Helper()
	board := NewBoardService(backend, 3*time.Second, 2*time.Second)
	require.NoError(t, board.Refresh(context.Background()))
	return board
}

func TestRefreshPicksFirstTemporaryBillPerTable(t *testing.T) {
	board := newBoard(t, boardBackend())

	snap := board.Snapshot()
	require.Contains(t, snap.Bills, "t1")
	assert.Equal(t, "101", snap.Bills["t1"].OrderNumber)
	assert.Equal(t, "T1", snap.Bills["t1"].TableName)
	assert.NotContains(t, snap.Bills, "t2")
	assert.Equal(t, 2, snap.InUseCount)
}

func TestSnapshotDefaultsToDefaultSection(t *testing.T) {
	board := newBoard(t, boardBackend())
	assert.Equal(t, "s1", board.Snapshot().SelectedSection)
}

func TestSelectSectionTogglesOff(t *testing.T) {
	board := newBoard(t, boardBackend())

	snap := board.SelectSection("s2")
	assert.Equal(t, "s2", snap.SelectedSection)

	// selecting it again toggles back to the default
	snap = board.SelectSection("s2")
	assert.Equal(t, "s1", snap.SelectedSection)
}

func TestActivateTableOpensPaymentForPrintedTemporaryBill(t *testing.T) {
	board := newBoard(t, boardBackend())

	activation, err := board.ActivateTable("t1")
	require.NoError(t, err)
	assert.True(t, activation.OpenPayment)
	require.NotNil(t, activation.Bill)
	assert.Equal(t, "101", activation.Bill.OrderNumber)
}

func TestActivateTableRoutesToOrderEntryOtherwise(t *testing.T) {
	board := newBoard(t, boardBackend())

	// no bill at all
	activation, err := board.ActivateTable("t2")
	require.NoError(t, err)
	assert.False(t, activation.OpenPayment)
	assert.Equal(t, "/order/t2", activation.OrderRoute)

	// temporary bill not yet printed
	activation, err = board.ActivateTable("t3")
	require.NoError(t, err)
	assert.False(t, activation.OpenPayment)
	assert.Equal(t, "/order/t3", activation.OrderRoute)
}

func TestActivateUnknownTable(t *testing.T) {
	board := newBoard(t, boardBackend())
	_, err := board.ActivateTable("nope")
	assert.Error(t, err)
}

func TestKeyInputResolvesTableInSelectedSection(t *testing.T) {
	board := newBoard(t, boardBackend())

	activation, err := board.KeyInput("T1")
	require.NoError(t, err)
	assert.Nil(t, activation)
	assert.Equal(t, "T1", board.KeyBuffer())

	activation, err = board.KeyInput("\n")
	require.NoError(t, err)
	require.NotNil(t, activation)
	assert.Equal(t, "t1", activation.TableID)
	assert.Empty(t, board.KeyBuffer())
}

func TestKeyInputIgnoresTablesOutsideSelectedSection(t *testing.T) {
	board := newBoard(t, boardBackend())

	// G1 is in Garden, board shows the default AC Hall
	_, err := board.KeyInput("G1\n")
	assert.Error(t, err)

	board.SelectSection("s2")
	activation, err := board.KeyInput("G1\n")
	require.NoError(t, err)
	require.NotNil(t, activation)
	assert.Equal(t, "t3", activation.TableID)
}

func TestKeyBufferExpiresWhenIdle(t *testing.T) {
	board := newBoard(t, boardBackend())

	current := time.Now()
	board.now = func() time.Time { return current }

	_, err := board.KeyInput("T")
	require.NoError(t, err)
	assert.Equal(t, "T", board.KeyBuffer())

	current = current.Add(2500 * time.Millisecond)
	assert.Empty(t, board.KeyBuffer())

	// stale buffer is dropped before new input is appended
	_, err = board.KeyInput("1")
	require.NoError(t, err)
	assert.Equal(t, "1", board.KeyBuffer())
}

func TestKeyInputEmptyEnterIsNoop(t *testing.T) {
	board := newBoard(t, boardBackend())

	activation, err := board.KeyInput("\n")
	require.NoError(t, err)
	assert.Nil(t, activation)
}
