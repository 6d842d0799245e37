// internal/system/clock.go
package system

import "container/heap"

// Clock — часы симуляции с отложенными вызовами.
// Время идёт только через Advance, поэтому пока тик не вызывается (пауза),
// таймеры стоят и после снятия паузы не срабатывают пачкой.
type Clock struct {
	now    float64
	seq    uint64
	timers timerQueue
}

type timer struct {
	at     float64
	seq    uint64 // порядок постановки, для равных at
	action func()
}

func NewClock() *Clock {
	return &Clock{}
}

// Now — текущее время симуляции в секундах
func (c *Clock) Now() float64 {
	return c.now
}

// After ставит action на время Now()+delay. Отрицательная задержка считается нулевой.
func (c *Clock) After(delay float64, action func()) {
	if delay < 0 {
		delay = 0
	}
	c.seq++
	heap.Push(&c.timers, &timer{at: c.now + delay, seq: c.seq, action: action})
}

// Advance сдвигает время на delta секунд и выполняет все наступившие таймеры
// по порядку (время, затем порядок постановки). Таймер, поставленный во время
// обработки и уже наступивший, выполняется в этом же вызове.
func (c *Clock) Advance(delta float64) {
	if delta > 0 {
		c.now += delta
	}
	for c.timers.Len() > 0 && c.timers[0].at <= c.now {
		t := heap.Pop(&c.timers).(*timer)
		t.action()
	}
}

// Pending — сколько таймеров ещё не сработало
func (c *Clock) Pending() int {
	return c.timers.Len()
}

// CancelAll снимает все таймеры. Время не сбрасывается.
func (c *Clock) CancelAll() {
	c.timers = nil
}

// timerQueue реализует heap.Interface
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) {
	*q = append(*q, x.(*timer))
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
