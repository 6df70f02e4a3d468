package translator

import (
	"sync"

	"linkconv/internal/logger"
	"linkconv/internal/xconf"
)

// TranslateMany translates a list of links, collecting successes.
// Failures are logged and skipped, never raised; result order matches
// the input order minus the skipped entries.
func TranslateMany(links []string) []*xconf.Outbound {
	return TranslateManyN(links, 1, nil)
}

// TranslateManyN is TranslateMany with a worker pool. Every parse is an
// independent pure transform, so links can be translated concurrently;
// the indexed result slice keeps the output in input order. progress,
// when non-nil, is called once per finished link (from worker
// goroutines).
func TranslateManyN(links []string, workers int, progress func()) []*xconf.Outbound {
	if workers < 1 {
		workers = 1
	}
	if workers > len(links) {
		workers = len(links)
	}

	log := logger.Get()
	results := make([]*xconf.Outbound, len(links))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out, err := Translate(links[i])
				if err != nil {
					log.Debugf("skipping link %d: %v", i, err)
				} else {
					results[i] = out
				}
				if progress != nil {
					progress()
				}
			}
		}()
	}
	for i := range links {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Compact, preserving relative order.
	outs := make([]*xconf.Outbound, 0, len(links))
	for _, r := range results {
		if r != nil {
			outs = append(outs, r)
		}
	}
	return outs
}
