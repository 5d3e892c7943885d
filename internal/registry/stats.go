package registry

import (
	"sort"

	"github.com/RodneySerpa/cadastro-pf-excel/pkg/types"
)

// topCitiesLimit caps the city distribution in Stats.
const topCitiesLimit = 10

// Stats aggregates the registry for the statistics view.
type Stats struct {
	Total           int          `json:"total"`
	RegisteredToday int          `json:"registered_today"`
	DistinctStates  int          `json:"distinct_states"`
	DistinctCities  int          `json:"distinct_cities"`
	ByState         []CountEntry `json:"by_state"`
	TopCities       []CountEntry `json:"top_cities"`
}

// CountEntry is one bar of a frequency distribution.
type CountEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats computes the aggregate counts and distributions over the current
// registry: total records, records created today, distinct non-empty
// states and cities, the full state distribution, and the ten most
// frequent cities.
func (s *Store) Stats() (Stats, error) {
	people, err := s.storage.Load()
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Total: len(people)}

	today := s.now().Format(types.DateLayout)
	for _, p := range people {
		if !p.CreatedAt.IsZero() && p.CreatedAt.Format(types.DateLayout) == today {
			st.RegisteredToday++
		}
	}

	states := distribution(people, func(p types.Person) string { return p.State })
	cities := distribution(people, func(p types.Person) string { return p.City })

	st.DistinctStates = len(states)
	st.DistinctCities = len(cities)
	st.ByState = states
	st.TopCities = cities
	if len(st.TopCities) > topCitiesLimit {
		st.TopCities = st.TopCities[:topCitiesLimit]
	}
	return st, nil
}

// distribution counts non-empty key values in encounter order, then sorts
// descending by count. The sort is stable, so ties keep their original
// encounter order.
func distribution(people []types.Person, key func(types.Person) string) []CountEntry {
	index := make(map[string]int)
	entries := []CountEntry{}
	for _, p := range people {
		k := key(p)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(entries)
			index[k] = i
			entries = append(entries, CountEntry{Name: k})
		}
		entries[i].Count++
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
