package model

import "strconv"

// Cart は1セッションが独占所有する「商品ID→数量」のマップ。
// キーは文字列（セッションデータはJSONで保存するため）。
// バリデーションは持たない純粋なデータ構造で、入力チェックはusecase側の責務。
type Cart map[string]int64

// 数量を1加算する（未登録なら1で作成）。
func (c Cart) Add(productID int64) {
	key := strconv.FormatInt(productID, 10)
	c[key] = c[key] + 1
}

// 既に入っている商品だけ数量を上書きする。未登録なら何もしない。
// 値の検証はしない（0や負も渡された値のまま保存する）。
func (c Cart) SetQuantity(productID int64, qty int64) {
	key := strconv.FormatInt(productID, 10)
	if _, ok := c[key]; !ok {
		return
	}
	c[key] = qty
}

// 商品を取り除く。無ければ何もしない。
func (c Cart) Remove(productID int64) {
	delete(c, strconv.FormatInt(productID, 10))
}

// 「今すぐ購入」用。既存の中身をすべて破棄して1商品だけにする。
func (c Cart) ReplaceAll(productID int64, qty int64) {
	for key := range c {
		delete(c, key)
	}
	c[strconv.FormatInt(productID, 10)] = qty
}

// 読み取り専用利用のためのコピーを返す。
func (c Cart) Snapshot() Cart {
	out := make(Cart, len(c))
	for key, qty := range c {
		out[key] = qty
	}
	return out
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}
