package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseSessionLifecycle(t *testing.T) {
	t.Run("select then cancel returns to idle", func(t *testing.T) {
		s := NewPurchaseSession()
		p := &Product{Name: "Widget"}

		require.NoError(t, s.Select(p))
		assert.Equal(t, PurchaseSelected, s.State)
		assert.Same(t, p, s.Product)

		s.Cancel()
		assert.Equal(t, PurchaseIdle, s.State)
		assert.Nil(t, s.Product)
	})

	t.Run("select then confirm reaches confirmed", func(t *testing.T) {
		s := NewPurchaseSession()
		p := &Product{Name: "Widget", Stock: 3}

		require.NoError(t, s.Select(p))
		got, err := s.Confirm()
		require.NoError(t, err)
		assert.Same(t, p, got)
		assert.Equal(t, PurchaseConfirmed, s.State)

		s.Cancel()
		assert.Equal(t, PurchaseIdle, s.State)
	})

	t.Run("confirm without selection fails", func(t *testing.T) {
		s := NewPurchaseSession()
		_, err := s.Confirm()
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("select nil product fails", func(t *testing.T) {
		s := NewPurchaseSession()
		assert.ErrorIs(t, s.Select(nil), ErrNoSelection)
	})

	t.Run("double select fails", func(t *testing.T) {
		s := NewPurchaseSession()
		require.NoError(t, s.Select(&Product{Name: "A"}))
		assert.ErrorIs(t, s.Select(&Product{Name: "B"}), ErrInvalidTransition)
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		s := NewPurchaseSession()
		s.Cancel()
		s.Cancel()
		assert.Equal(t, PurchaseIdle, s.State)
	})
}

func TestPurchaseStockDecrement(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		wantStock int
	}{
		{name: "positive stock decrements", stock: 2, wantStock: 1},
		{name: "stock of one reaches zero", stock: 1, wantStock: 0},
		{name: "zero stock stays at zero", stock: 0, wantStock: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPurchaseSession()
			p := &Product{Name: "Widget", Stock: tt.stock}
			require.NoError(t, s.Select(p))

			_, err := s.Confirm()
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, p.Stock)
		})
	}
}
