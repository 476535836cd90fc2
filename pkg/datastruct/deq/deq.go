package deq

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuning888/deq/logger"
)

var (
	ErrorNilDeq    = errors.New("not allowed null deq")
	ErrorDestroyed = errors.New("deq already destroyed")
	ErrorOutIndex  = errors.New("out of index")
)

// End 选择操作的一端
type End int

const (
	Head End = iota
	Tail
	ends
)

func (e End) String() string {
	switch e {
	case Head:
		return "head"
	case Tail:
		return "tail"
	}
	return fmt.Sprintf("End(%d)", int(e))
}

// inward is the neighbour index that walks away from e.
func (e End) inward() End {
	return ends - 1 - e
}

type node[T comparable] struct {
	np   [ends]*node[T]
	data T
}

// Deq is a doubly linked double-ended queue. It is not safe for concurrent use.
//
// Create one with New. After Del the handle is dead and every method panics,
// as does any method called on a nil *Deq.
type Deq[T comparable] struct {
	ht   [ends]*node[T]
	len  int
	dead bool
}

func New[T comparable]() *Deq[T] {
	return &Deq[T]{}
}

// fatal reports a broken usage contract. It never returns.
func fatal(err error) {
	logger.ErrorF("deq: %v", err)
	panic(err)
}

func (q *Deq[T]) live() *Deq[T] {
	if q == nil {
		fatal(errors.WithStack(ErrorNilDeq))
	}
	if q.dead {
		fatal(errors.WithStack(ErrorDestroyed))
	}
	return q
}

func (q *Deq[T]) Len() int {
	return q.live().len
}

// Put links data in as the new endpoint at e.
func (q *Deq[T]) Put(e End, data T) {
	q.live()
	n := &node[T]{data: data}
	if q.len == 0 {
		q.ht[Head] = n
		q.ht[Tail] = n
		q.len = 1
		return
	}
	in := e.inward()
	old := q.ht[e]
	n.np[in] = old
	old.np[e] = n
	q.ht[e] = n
	q.len++
}

// Get detaches the endpoint at e. ok is false when the deq is empty.
func (q *Deq[T]) Get(e End) (data T, ok bool) {
	q.live()
	if q.len == 0 {
		return data, false
	}
	return q.unlink(q.ht[e]), true
}

// Ith returns the element i steps inward from e. It panics unless 0 <= i < Len().
func (q *Deq[T]) Ith(e End, i int) T {
	q.live()
	if i < 0 || i >= q.len {
		fatal(errors.Wrapf(ErrorOutIndex, "%s ith %d of %d", e, i, q.len))
	}
	in := e.inward()
	n := q.ht[e]
	for ; i > 0; i-- {
		n = n.np[in]
	}
	return n.data
}

// Rem removes the first element equal to data, searching inward from e.
// ok is false when nothing matched.
func (q *Deq[T]) Rem(e End, data T) (T, bool) {
	q.live()
	in := e.inward()
	for n := q.ht[e]; n != nil; n = n.np[in] {
		if n.data == data {
			return q.unlink(n), true
		}
	}
	var zero T
	return zero, false
}

// unlink detaches n from the chain and clears it.
func (q *Deq[T]) unlink(n *node[T]) T {
	switch {
	case q.len == 1:
		q.ht[Head] = nil
		q.ht[Tail] = nil
	case n == q.ht[Head]:
		next := n.np[Tail]
		next.np[Head] = nil
		q.ht[Head] = next
	case n == q.ht[Tail]:
		prev := n.np[Head]
		prev.np[Tail] = nil
		q.ht[Tail] = prev
	default:
		prev, next := n.np[Head], n.np[Tail]
		prev.np[Tail] = next
		next.np[Head] = prev
	}
	data := n.data
	var zero T
	n.np[Head], n.np[Tail], n.data = nil, nil, zero
	q.len--
	return data
}

func (q *Deq[T]) HeadPut(data T) { q.Put(Head, data) }
func (q *Deq[T]) HeadGet() (T, bool) { return q.Get(Head) }
func (q *Deq[T]) HeadIth(i int) T { return q.Ith(Head, i) }
func (q *Deq[T]) HeadRem(data T) (T, bool) { return q.Rem(Head, data) }

func (q *Deq[T]) TailPut(data T) { q.Put(Tail, data) }
func (q *Deq[T]) TailGet() (T, bool) { return q.Get(Tail) }
func (q *Deq[T]) TailIth(i int) T { return q.Ith(Tail, i) }
func (q *Deq[T]) TailRem(data T) (T, bool) { return q.Rem(Tail, data) }

// Map calls f on every element from head to tail.
func (q *Deq[T]) Map(f func(data T)) {
	for n := q.live().ht[Head]; n != nil; n = n.np[Tail] {
		f(n.data)
	}
}

// Str renders the elements head to tail separated by single spaces. A nil f
// treats each element as text: strings as is, fmt.Stringer through String,
// everything else through fmt.Sprint.
func (q *Deq[T]) Str(f func(data T) string) string {
	var sb strings.Builder
	for n := q.live().ht[Head]; n != nil; n = n.np[Tail] {
		if n != q.ht[Head] {
			sb.WriteByte(' ')
		}
		if f != nil {
			sb.WriteString(f(n.data))
		} else {
			sb.WriteString(text(n.data))
		}
	}
	return sb.String()
}

func (q *Deq[T]) String() string {
	return q.Str(nil)
}

func text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// Del hands every element to f (when non-nil) from head to tail, then tears
// down the chain. The handle must not be used afterwards.
func (q *Deq[T]) Del(f func(data T)) {
	if f != nil {
		q.Map(f)
	}
	n := q.live().ht[Head]
	for n != nil {
		next := n.np[Tail]
		var zero T
		n.np[Head], n.np[Tail], n.data = nil, nil, zero
		n = next
	}
	q.ht[Head], q.ht[Tail] = nil, nil
	q.len = 0
	q.dead = true
}
