package shared

import (
	"sync"
)

// ForEveryStringWithBoundedGoroutines calls f for every value with at most
// limit calls running at once. It returns after every call has finished.
// A limit below 1 is treated as 1.
func ForEveryStringWithBoundedGoroutines(limit int, values []string, f func(i int, value string)) {
	if limit < 1 {
		limit = 1
	}
	guard := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, value := range values {
		guard <- struct{}{} // would block if guard channel is already filled
		wg.Add(1)
		go func(i int, value string) {
			defer wg.Done()
			f(i, value)
			<-guard
		}(i, value)
	}
	wg.Wait()
}
