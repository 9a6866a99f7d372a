package client

import (
	"context"
	"errors"
	"fmt"
)

type ReorderState int

const (
	StateDisplayed ReorderState = iota
	StatePendingConfirm
	StateCommitted
	StateReverted
)

func (s ReorderState) String() string {
	switch s {
	case StateDisplayed:
		return "displayed"
	case StatePendingConfirm:
		return "pending-confirm"
	case StateCommitted:
		return "committed"
	case StateReverted:
		return "reverted"
	}
	return fmt.Sprintf("ReorderState(%d)", int(s))
}

type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

var (
	ErrPendingChange = errors.New("a reorder is already waiting for confirmation")
	ErrNothingToSave = errors.New("no reorder is waiting for confirmation")
	ErrOutOfRange    = errors.New("item cannot move in that direction")
)

type Item struct {
	ID   int64
	Name string
}

// SiblingSet loads and saves the order of one sibling set.
type SiblingSet interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, orderedIDs []int64) error
}

// ReorderSession applies a move to the local list first and only then asks
// the server to persist it. A rejected save reverts to the server's view, or
// to the pre-move snapshot when the server cannot be reached either.
//
//	displayed -> pending-confirm -> committed | reverted
//
// committed and reverted accept a new move just like displayed.
type ReorderSession struct {
	set      SiblingSet
	state    ReorderState
	items    []Item
	snapshot []Item
	lastErr  error
}

func NewReorderSession(ctx context.Context, set SiblingSet) (*ReorderSession, error) {
	items, err := set.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ReorderSession{set: set, state: StateDisplayed, items: items}, nil
}

func (s *ReorderSession) State() ReorderState {
	return s.state
}

func (s *ReorderSession) Items() []Item {
	return append([]Item(nil), s.items...)
}

func (s *ReorderSession) IDs() []int64 {
	ids := make([]int64, len(s.items))
	for i, item := range s.items {
		ids[i] = item.ID
	}
	return ids
}

// LastError is the save failure that caused the latest revert.
func (s *ReorderSession) LastError() error {
	return s.lastErr
}

// Propose swaps the item at index with its neighbour in the local list.
func (s *ReorderSession) Propose(index int, dir Direction) error {
	if s.state == StatePendingConfirm {
		return ErrPendingChange
	}

	target := index + int(dir)
	if index < 0 || index >= len(s.items) || target < 0 || target >= len(s.items) {
		return ErrOutOfRange
	}

	s.snapshot = append([]Item(nil), s.items...)
	s.items[index], s.items[target] = s.items[target], s.items[index]
	s.state = StatePendingConfirm

	return nil
}

// Confirm persists the proposed order. On failure the session ends up
// reverted and the save error is returned.
func (s *ReorderSession) Confirm(ctx context.Context) error {
	if s.state != StatePendingConfirm {
		return ErrNothingToSave
	}

	err := s.set.Save(ctx, s.IDs())
	if err == nil {
		s.state = StateCommitted
		s.snapshot = nil
		s.lastErr = nil
		return nil
	}

	fresh, loadErr := s.set.Load(ctx)
	if loadErr != nil {
		fresh = s.snapshot
	}

	s.items = fresh
	s.snapshot = nil
	s.state = StateReverted
	s.lastErr = err

	return err
}

func (s *ReorderSession) Move(ctx context.Context, index int, dir Direction) error {
	if err := s.Propose(index, dir); err != nil {
		return err
	}
	return s.Confirm(ctx)
}

type collectionSet struct {
	client *AdminClient
}

// Collections is the top level sibling set.
func Collections(c *AdminClient) SiblingSet {
	return collectionSet{client: c}
}

func (s collectionSet) Load(ctx context.Context) ([]Item, error) {
	list, err := s.client.ListCollections(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(list))
	for _, c := range list {
		items = append(items, Item{ID: c.ID, Name: c.Name})
	}
	return items, nil
}

func (s collectionSet) Save(ctx context.Context, orderedIDs []int64) error {
	return s.client.ReorderCollections(ctx, orderedIDs)
}

type subcollectionSet struct {
	client       *AdminClient
	collectionID int64
}

// Subcollections is the sibling set under one collection.
func Subcollections(c *AdminClient, collectionID int64) SiblingSet {
	return subcollectionSet{client: c, collectionID: collectionID}
}

func (s subcollectionSet) Load(ctx context.Context) ([]Item, error) {
	list, err := s.client.ListSubcollections(ctx, s.collectionID)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(list))
	for _, sub := range list {
		items = append(items, Item{ID: sub.ID, Name: sub.Name})
	}
	return items, nil
}

func (s subcollectionSet) Save(ctx context.Context, orderedIDs []int64) error {
	return s.client.ReorderSubcollections(ctx, s.collectionID, orderedIDs)
}
