// Public domain.

package almanac

import (
	"context"
	"runtime"

	"github.com/soniakeys/astrocal/observer"
)

// Event is the standard time of a sun or moon event, or the reason there
// is none.
type Event struct {
	Moment float64
	Err    error
}

// Day holds the events of one fixed date at a location.
type Day struct {
	Date     int
	Dawn     Event
	Sunrise  Event
	Sunset   Event
	Dusk     Event
	Moonrise Event
	Moonset  Event
	// Crescent reports first visibility of the new crescent, the evening
	// before Date.
	Crescent    bool
	CrescentErr error
}

// Table describes a daily table for a location.
type Table struct {
	Location observer.Location
	// Twilight is the depression of the sun at dawn and dusk, in degrees.
	Twilight float64
	// Workers is the number of concurrent workers.  Zero means GOMAXPROCS.
	Workers int
}

// Day computes the events of fixed date.
func (tb *Table) Day(date int) Day {
	l := tb.Location
	d := Day{Date: date}
	d.Dawn.Moment, d.Dawn.Err = l.Dawn(date, tb.Twilight)
	d.Sunrise.Moment, d.Sunrise.Err = l.Sunrise(date)
	d.Sunset.Moment, d.Sunset.Err = l.Sunset(date)
	d.Dusk.Moment, d.Dusk.Err = l.Dusk(date, tb.Twilight)
	d.Moonrise.Moment, d.Moonrise.Err = l.Moonrise(date)
	d.Moonset.Moment, d.Moonset.Err = l.Moonset(date)
	d.Crescent, d.CrescentErr = l.VisibleCrescent(date)
	return d
}

type dayJob struct {
	date int
	rch  chan Day
}

// Stream computes the days from through to, inclusive, on concurrent
// workers and delivers them in date order.  The channel is closed after
// the last day, or soon after ctx is done.  A caller that stops reading
// early must cancel ctx to release the goroutines.
func (tb *Table) Stream(ctx context.Context, from, to int) <-chan Day {
	out := make(chan Day)
	maxWorkers := tb.Workers
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	// prCh keeps results in submission order.  It is buffered so a fast
	// worker can drop off a result without waiting for workers ahead of
	// it; the size must be at least maxWorkers.
	prCh := make(chan chan Day, maxWorkers*2)
	jobCh := make(chan *dayJob)

	// dispatcher.  each date gets a return channel that works like a
	// ticket for picking up the result.
	go func() {
		defer close(prCh)
		defer close(jobCh)
		for d := from; d <= to; d++ {
			rch := make(chan Day, 1)
			select {
			case jobCh <- &dayJob{d, rch}:
			case <-ctx.Done():
				return
			}
			select {
			case prCh <- rch:
			case <-ctx.Done():
				return
			}
		}
	}()

	// workers are started only as the dispatcher calls for them, up to
	// maxWorkers.
	go func() {
		for n := 0; n < maxWorkers; n++ {
			j, ok := <-jobCh
			if !ok {
				return
			}
			go tb.work(j, jobCh)
		}
	}()

	go func() {
		defer close(out)
		for rch := range prCh {
			select {
			case out <- <-rch:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// work computes j, then any further jobs from jobCh until it is closed.
func (tb *Table) work(j *dayJob, jobCh chan *dayJob) {
	for ok := true; ok; j, ok = <-jobCh {
		j.rch <- tb.Day(j.date) // buffered.  just drop off and continue
	}
}

// Days is Stream collected into a slice.
func (tb *Table) Days(from, to int) []Day {
	var days []Day
	for d := range tb.Stream(context.Background(), from, to) {
		days = append(days, d)
	}
	return days
}
