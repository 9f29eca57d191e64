package models

import "fmt"

// EditOpKind tags an [EditOp].
type EditOpKind int

const (
	OpInsert EditOpKind = iota + 1
	OpRemove
	OpUpdate
)

func (k EditOpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// EditOp is one step of an edit script. Index refers to the collection as it
// looks after every earlier op of the same script has been applied. Item is
// nil for OpRemove.
type EditOp struct {
	Kind  EditOpKind
	Index int
	Item  Item
}

// InsertOp builds an insert of item at index.
func InsertOp(index int, item Item) EditOp {
	return EditOp{Kind: OpInsert, Index: index, Item: item}
}

// RemoveOp builds a removal of the row at index.
func RemoveOp(index int) EditOp {
	return EditOp{Kind: OpRemove, Index: index}
}

// UpdateOp builds an in-place replacement of the row at index.
func UpdateOp(index int, item Item) EditOp {
	return EditOp{Kind: OpUpdate, Index: index, Item: item}
}

func (op EditOp) String() string {
	if op.Item == nil {
		return fmt.Sprintf("%s@%d", op.Kind, op.Index)
	}
	return fmt.Sprintf("%s@%d(%s)", op.Kind, op.Index, op.Item.Kind())
}

// EditScript is an ordered sequence of ops transforming one snapshot into another.
type EditScript []EditOp

// EditCounts summarises a script by op kind.
type EditCounts struct {
	Inserts int `json:"inserts"`
	Removes int `json:"removes"`
	Updates int `json:"updates"`
}

// Counts tallies the ops of the script.
func (s EditScript) Counts() EditCounts {
	var c EditCounts
	for _, op := range s {
		switch op.Kind {
		case OpInsert:
			c.Inserts++
		case OpRemove:
			c.Removes++
		case OpUpdate:
			c.Updates++
		}
	}
	return c
}

// Empty reports whether the script changes nothing.
func (s EditScript) Empty() bool {
	return len(s) == 0
}
