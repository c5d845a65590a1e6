// Package delay implements a delay queue: items are held until an associated
// point in time and released earliest-first. It is a thin layer over the
// array-backed priority queue in the heap package, ordered by due time.
//
// The queue does no timekeeping of its own. Callers pass the current time to
// PopDue and Until, which keeps the queue deterministic and trivially
// testable, and lets a poller drive it from a timer:
//
//	q := delay.New[string]()
//	q.Add("reminder", time.Now().Add(5*time.Minute))
//
//	for q.Len() > 0 {
//	    if v, ok := q.PopDue(time.Now()); ok {
//	        fmt.Println(v)
//	        continue
//	    }
//	    d, _ := q.Until(time.Now())
//	    time.Sleep(d)
//	}
//
// A Queue is not safe for concurrent use.
package delay
