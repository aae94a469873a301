// Package sorted provides an in-memory red-black tree ordered by an
// ordering.Comparator.
package sorted

import "github.com/peterouob/gobasics/ordering"

type color int

const (
	black color = iota
	red
)

// Index is the ordered key-value surface of Tree.
type Index[K any, V any] interface {
	Insert(K, V)
	Find(K) (V, bool)
	Delete(K) bool
	Ascend(func(K, V) bool)
	Keys() []K
	Len() int
}

var _ Index[string, int] = (*Tree[string, int])(nil)

type Tree[K any, V any] struct {
	root       *node[K, V]
	leaf       *node[K, V]
	comparator ordering.Comparator[K]
	live       int
}

type node[K any, V any] struct {
	key      K
	value    V
	color    color
	left     *node[K, V]
	right    *node[K, V]
	parent   *node[K, V]
	isDelete bool
}

func NewTree[K any, V any](comparator ordering.Comparator[K]) *Tree[K, V] {
	tree := new(Tree[K, V])
	tree.leaf = &node[K, V]{color: black}
	tree.root = tree.leaf
	tree.comparator = comparator
	return tree
}

// Len returns the number of keys that are not deleted.
func (tree *Tree[K, V]) Len() int {
	return tree.live
}

// replaceChild hangs child where old used to hang below old's parent.
func (tree *Tree[K, V]) replaceChild(old, child *node[K, V]) {
	child.parent = old.parent
	switch {
	case old.parent == tree.leaf:
		tree.root = child
	case old == old.parent.left:
		old.parent.left = child
	default:
		old.parent.right = child
	}
}

// rotateLeft lifts pivot's right child above it.
func (tree *Tree[K, V]) rotateLeft(pivot *node[K, V]) {
	up := pivot.right
	pivot.right = up.left
	if up.left != tree.leaf {
		up.left.parent = pivot
	}
	tree.replaceChild(pivot, up)
	up.left = pivot
	pivot.parent = up
}

// rotateRight lifts pivot's left child above it.
func (tree *Tree[K, V]) rotateRight(pivot *node[K, V]) {
	up := pivot.left
	pivot.left = up.right
	if up.right != tree.leaf {
		up.right.parent = pivot
	}
	tree.replaceChild(pivot, up)
	up.right = pivot
	pivot.parent = up
}

// Insert stores value under key, replacing an existing value. A deleted key
// becomes live again.
func (tree *Tree[K, V]) Insert(key K, value V) {
	parent := tree.leaf
	cur := tree.root
	var last ordering.Ordering
	for cur != tree.leaf {
		parent = cur
		last = tree.comparator.Compare(key, cur.key)
		switch last {
		case ordering.Less:
			cur = cur.left
		case ordering.Greater:
			cur = cur.right
		case ordering.Equal:
			cur.value = value
			if cur.isDelete {
				cur.isDelete = false
				tree.live++
			}
			return
		}
	}

	n := &node[K, V]{
		key:    key,
		value:  value,
		color:  red,
		parent: parent,
		left:   tree.leaf,
		right:  tree.leaf,
	}

	switch {
	case parent == tree.leaf:
		tree.root = n
	case last == ordering.Less:
		parent.left = n
	default:
		parent.right = n
	}
	tree.live++
	tree.rebalance(n)
}

// rebalance restores the red-black invariants after n was linked in red.
func (tree *Tree[K, V]) rebalance(n *node[K, V]) {
	for n != tree.root && n.parent.color == red {
		parent, grand := n.parent, n.parent.parent
		onLeft := parent == grand.left

		uncle := grand.left
		if onLeft {
			uncle = grand.right
		}
		if uncle.color == red {
			parent.color, uncle.color, grand.color = black, black, red
			n = grand
			continue
		}

		// Straighten a zig-zag so that n, parent and grand form a line.
		if onLeft && n == parent.right {
			n = parent
			tree.rotateLeft(n)
		} else if !onLeft && n == parent.left {
			n = parent
			tree.rotateRight(n)
		}

		n.parent.color = black
		grand.color = red
		if onLeft {
			tree.rotateRight(grand)
		} else {
			tree.rotateLeft(grand)
		}
	}
	tree.root.color = black
}

func (tree *Tree[K, V]) findNode(key K) *node[K, V] {
	cur := tree.root
	for cur != tree.leaf {
		switch tree.comparator.Compare(key, cur.key) {
		case ordering.Greater:
			cur = cur.right
		case ordering.Less:
			cur = cur.left
		case ordering.Equal:
			return cur
		}
	}
	return nil
}

func (tree *Tree[K, V]) Find(key K) (V, bool) {
	if n := tree.findNode(key); n != nil && !n.isDelete {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Delete marks key as deleted. The node stays in the tree as a tombstone.
func (tree *Tree[K, V]) Delete(key K) bool {
	n := tree.findNode(key)
	if n == nil || n.isDelete {
		return false
	}
	n.isDelete = true
	tree.live--
	return true
}

// Ascend calls fn for every live key in comparator order until fn returns
// false.
func (tree *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	var traverse func(n *node[K, V]) bool
	traverse = func(n *node[K, V]) bool {
		if n == tree.leaf {
			return true
		}
		if !traverse(n.left) {
			return false
		}
		if !n.isDelete && !fn(n.key, n.value) {
			return false
		}
		return traverse(n.right)
	}
	traverse(tree.root)
}

func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.live)
	tree.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
