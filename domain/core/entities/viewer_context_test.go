package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewerContext_ExclusionSetIsViewerPlusSortedCounterparts(t *testing.T) {
	viewerID := int64(1)
	ctx := EmptyViewerContext()
	ctx.ViewerID = &viewerID
	ctx.ConnectionStatus = map[int64]string{
		9: ConnectionStatusPending,
		3: ConnectionStatusAccepted,
		5: ConnectionStatusAccepted,
	}

	assert.Equal(t, []int64{1, 3, 5, 9}, ctx.ExclusionSet())
}

func TestViewerContext_ExclusionSetForAnonymousViewer(t *testing.T) {
	ctx := EmptyViewerContext()

	assert.Empty(t, ctx.ExclusionSet())
}

func TestViewerContext_StatusFor(t *testing.T) {
	ctx := EmptyViewerContext()
	ctx.ConnectionStatus = map[int64]string{
		3: ConnectionStatusAccepted,
		5: ConnectionStatusPending,
	}

	assert.Equal(t, "connected", ctx.StatusFor(3))
	assert.Equal(t, "pending", ctx.StatusFor(5))
	assert.Equal(t, "available", ctx.StatusFor(99))
}

func TestConnectionEdge_CounterpartOf(t *testing.T) {
	edge := ConnectionEdge{RequesterID: 1, AddresseeID: 2}

	assert.Equal(t, int64(2), edge.CounterpartOf(1))
	assert.Equal(t, int64(1), edge.CounterpartOf(2))
}
