package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Add_IncrementsFromEmpty(t *testing.T) {
	cart := Cart{}

	cart.Add(7)
	cart.Add(7)

	assert.Equal(t, int64(2), cart["7"])
	assert.Len(t, cart, 1)
}

func TestCart_SetQuantity_OnlyIfPresent(t *testing.T) {
	cart := Cart{"7": 2}

	//未登録の商品は無視される（作成もされない）
	cart.SetQuantity(99, 5)
	assert.Equal(t, Cart{"7": 2}, cart)

	//登録済みは上書き
	cart.SetQuantity(7, 4)
	assert.Equal(t, int64(4), cart["7"])
}

func TestCart_SetQuantity_StoresValueAsIs(t *testing.T) {
	//Cart自体は検証しない。0や負の拒否はusecase側の責務
	cart := Cart{"7": 2}

	cart.SetQuantity(7, 0)
	assert.Equal(t, int64(0), cart["7"])

	cart.SetQuantity(7, -3)
	assert.Equal(t, int64(-3), cart["7"])
}

func TestCart_Remove_NoopWhenAbsent(t *testing.T) {
	cart := Cart{"7": 2}

	cart.Remove(99)
	assert.Equal(t, Cart{"7": 2}, cart)

	cart.Remove(7)
	assert.True(t, cart.IsEmpty())
}

func TestCart_ReplaceAll_DiscardsEverything(t *testing.T) {
	cart := Cart{"7": 2, "8": 1, "9": 10}

	cart.ReplaceAll(5, 1)

	assert.Equal(t, Cart{"5": 1}, cart)
}

func TestCart_Snapshot_IsIndependentCopy(t *testing.T) {
	cart := Cart{"7": 2}

	snap := cart.Snapshot()
	cart.Add(7)

	assert.Equal(t, int64(2), snap["7"])
	assert.Equal(t, int64(3), cart["7"])
}
