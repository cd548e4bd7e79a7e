package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentSearches tests that simultaneous searches with different
// criteria never see each other's state.
func TestConcurrentSearches(t *testing.T) {
	ts := NewTestServer()

	cases := map[string][]string{
		"categories=Beach&sortBy=price":             {"bali", "santorini"},
		"categories=Historical&sortBy=name":         {"kyoto", "machu-picchu"},
		"q=zermatt":                                 {"zermatt"},
		"maxPrice=100":                              {"bali"},
		"categories=Adventure":                      {"cape-town"},
		"categories=City&maxPrice=160&sortBy=price": {"paris", "sydney"},
	}

	const rounds = 20

	type result struct {
		query string
		ids   []string
		err   error
	}
	results := make(chan result, rounds*len(cases))

	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		for query := range cases {
			wg.Add(1)
			go func(query string) {
				defer wg.Done()

				resp := ts.Browse(query)
				if resp.Code != http.StatusOK {
					results <- result{query: query, err: fmt.Errorf("status %d", resp.Code)}
					return
				}
				body, err := resp.ParseSearchResponse()
				if err != nil {
					results <- result{query: query, err: err}
					return
				}
				results <- result{query: query, ids: IDs(body)}
			}(query)
		}
	}
	wg.Wait()
	close(results)

	count := 0
	for r := range results {
		count++
		require.NoError(t, r.err, r.query)
		assert.Equal(t, cases[r.query], r.ids, r.query)
	}
	assert.Equal(t, rounds*len(cases), count)
}

// TestConcurrentBookings tests that parallel bookings each get their own confirmation.
func TestConcurrentBookings(t *testing.T) {
	ts := NewTestServer()

	const bookings = 25
	ids := make(chan string, bookings)

	var wg sync.WaitGroup
	for i := 0; i < bookings; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.Post("/api/v1/bookings", BookingBody("kyoto", "2026-05-01"))
			if resp.Code != http.StatusCreated {
				ids <- ""
				return
			}
			var conf struct {
				ConfirmationID string `json:"confirmation_id"`
			}
			if err := resp.Decode(&conf); err != nil {
				ids <- ""
				return
			}
			ids <- conf.ConfirmationID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, bookings)
	for id := range ids {
		require.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate confirmation id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, bookings)
}
