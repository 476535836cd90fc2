package deq

var _ Dequeue[string] = &Deq[string]{}

// Dequeue is the end-symmetric surface of Deq.
type Dequeue[T comparable] interface {
	Len() int
	Put(e End, data T)
	// Get 取出一端的元素, 队列为空时 ok 为 false
	Get(e End) (data T, ok bool)
	// Ith 从一端向内第 i 个元素, 越界时 panic
	Ith(e End, i int) T
	// Rem 从一端开始查找并删除第一个相等的元素
	Rem(e End, data T) (T, bool)
	Map(f func(data T))
	Str(f func(data T) string) string
	Del(f func(data T))
}
