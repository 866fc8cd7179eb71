// Package cartstore はセッションごとのカートをメモリに持つ。
// DBには保存しない。サーバー再起動で消える。
package cartstore

import (
	"sync"

	"supplyconnect/internal/domain/model"
)

type Store struct {
	mu    sync.Mutex
	carts map[string]*model.Cart
	//注文確定中のセッション
	checkingOut map[string]struct{}
}

func New() *Store {
	return &Store{
		carts:       make(map[string]*model.Cart),
		checkingOut: make(map[string]struct{}),
	}
}

// 中身のコピーを返す（無ければ空）
func (s *Store) Get(sessionID string) model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.carts[sessionID])
}

// fnの中でカートを変更する
func (s *Store) Update(sessionID string, fn func(c *model.Cart) bool) (model.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = &model.Cart{}
	}
	changed := fn(c)
	if c.Empty() {
		delete(s.carts, sessionID)
	} else {
		s.carts[sessionID] = c
	}
	return snapshot(c), changed
}

// 注文確定を始める
// 同じセッションで確定中ならfalse（二重送信）。
// trueのときは必ずFinishCheckoutを呼ぶ。
func (s *Store) BeginCheckout(sessionID string) (model.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.checkingOut[sessionID]; busy {
		return model.Cart{}, false
	}
	s.checkingOut[sessionID] = struct{}{}
	return snapshot(s.carts[sessionID]), true
}

// 注文にした明細だけカートから引き、確定中を解除する
func (s *Store) FinishCheckout(sessionID string, placed []model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.checkingOut, sessionID)
	c, ok := s.carts[sessionID]
	if !ok {
		return
	}
	c.Subtract(placed)
	if c.Empty() {
		delete(s.carts, sessionID)
	}
}

// ログアウト時
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func snapshot(c *model.Cart) model.Cart {
	if c == nil || c.Empty() {
		return model.Cart{Items: []model.CartItem{}}
	}
	items := make([]model.CartItem, len(c.Items))
	copy(items, c.Items)
	return model.Cart{Items: items}
}
