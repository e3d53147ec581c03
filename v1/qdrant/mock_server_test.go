package qdrant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
)

// mockQdrant is an in-memory stand-in for the Qdrant REST API, faithful
// enough for contract tests: collections with fixed dimensionality,
// point storage keyed by id, dot-product search scoring with threshold and
// limit, and the real envelope shapes ({status, time, result}).
//
// It also counts requests per "METHOD path" so tests can assert which
// calls were (not) issued.
type mockQdrant struct {
	mu          sync.Mutex
	collections map[string]*mockCollection
	calls       map[string]int

	server *httptest.Server
}

type mockCollection struct {
	size   uint64
	points map[string]Point
	order  []string // insertion order, for deterministic get_points
}

func newMockQdrant() *mockQdrant {
	m := &mockQdrant{
		collections: make(map[string]*mockCollection),
		calls:       make(map[string]int),
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *mockQdrant) Close() {
	m.server.Close()
}

func (m *mockQdrant) URL() string {
	return m.server.URL
}

// callCount returns how many requests matched "METHOD /path".
func (m *mockQdrant) callCount(methodAndPath string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[methodAndPath]
}

func (m *mockQdrant) handle(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls[r.Method+" "+r.URL.Path]++

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case r.URL.Path == "/healthz":
		w.Write([]byte("healthz check passed"))

	case r.URL.Path == "/collections" && r.Method == http.MethodGet:
		m.listCollections(w)

	case len(parts) == 2 && parts[0] == "collections":
		m.handleCollection(w, r, parts[1])

	case len(parts) == 3 && parts[0] == "collections" && parts[2] == "exists":
		m.writeResult(w, map[string]any{"exists": m.collections[parts[1]] != nil})

	case len(parts) == 3 && parts[0] == "collections" && parts[2] == "points":
		m.handlePoints(w, r, parts[1])

	case len(parts) == 4 && parts[0] == "collections" && parts[2] == "points" && parts[3] == "search":
		m.searchPoints(w, r, parts[1])

	case len(parts) == 4 && parts[0] == "collections" && parts[2] == "points" && parts[3] == "delete":
		m.deletePoints(w, r, parts[1])

	case len(parts) == 4 && parts[0] == "collections" && parts[2] == "points":
		m.getPoint(w, parts[1], parts[3])

	default:
		m.writeError(w, http.StatusNotFound, "no such route: "+r.URL.Path)
	}
}

func (m *mockQdrant) listCollections(w http.ResponseWriter) {
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptions := make([]map[string]any, len(names))
	for i, name := range names {
		descriptions[i] = map[string]any{"name": name}
	}
	m.writeResult(w, map[string]any{"collections": descriptions})
}

func (m *mockQdrant) handleCollection(w http.ResponseWriter, r *http.Request, name string) {
	switch r.Method {
	case http.MethodGet:
		col := m.collections[name]
		if col == nil {
			m.writeError(w, http.StatusNotFound, "collection `"+name+"` doesn't exist")
			return
		}
		m.writeResult(w, map[string]any{
			"status":       "green",
			"points_count": len(col.points),
			"config": map[string]any{
				"params": map[string]any{
					"vectors": map[string]any{"size": col.size, "distance": "Cosine"},
				},
			},
		})

	case http.MethodPut:
		var body struct {
			Vectors struct {
				Size uint64 `json:"size"`
			} `json:"vectors"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Vectors.Size == 0 {
			m.writeError(w, http.StatusBadRequest, "invalid vector params")
			return
		}
		// The real server happily re-creates; the client is expected to
		// guard against that itself.
		m.collections[name] = &mockCollection{
			size:   body.Vectors.Size,
			points: make(map[string]Point),
		}
		m.writeResult(w, true)

	case http.MethodDelete:
		if m.collections[name] == nil {
			m.writeResult(w, false)
			return
		}
		delete(m.collections, name)
		m.writeResult(w, true)

	default:
		m.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (m *mockQdrant) handlePoints(w http.ResponseWriter, r *http.Request, name string) {
	col := m.collections[name]
	if col == nil {
		m.writeError(w, http.StatusNotFound, "collection `"+name+"` doesn't exist")
		return
	}

	switch r.Method {
	case http.MethodPut: // upsert
		var body upsertPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			m.writeError(w, http.StatusBadRequest, "invalid points batch")
			return
		}
		for _, p := range body.Points {
			if uint64(len(p.Vector)) != col.size {
				m.writeError(w, http.StatusBadRequest, "vector dimension error")
				return
			}
		}
		for _, p := range body.Points {
			key := p.ID.String()
			if _, seen := col.points[key]; !seen {
				col.order = append(col.order, key)
			}
			col.points[key] = p
		}
		m.writeResult(w, map[string]any{"operation_id": 0, "status": "completed"})

	case http.MethodPost: // get by ids
		var body getPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			m.writeError(w, http.StatusBadRequest, "invalid ids")
			return
		}
		found := make([]Point, 0, len(body.IDs))
		for _, id := range body.IDs {
			if p, ok := col.points[id.String()]; ok {
				found = append(found, p)
			}
		}
		m.writeResult(w, found)

	default:
		m.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (m *mockQdrant) getPoint(w http.ResponseWriter, name, id string) {
	col := m.collections[name]
	if col == nil {
		m.writeError(w, http.StatusNotFound, "collection `"+name+"` doesn't exist")
		return
	}
	p, ok := col.points[id]
	if !ok {
		m.writeError(w, http.StatusNotFound, "point "+id+" doesn't exist")
		return
	}
	m.writeResult(w, p)
}

func (m *mockQdrant) deletePoints(w http.ResponseWriter, r *http.Request, name string) {
	col := m.collections[name]
	if col == nil {
		m.writeError(w, http.StatusNotFound, "collection `"+name+"` doesn't exist")
		return
	}
	var body deletePointsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		m.writeError(w, http.StatusBadRequest, "invalid selector")
		return
	}
	for _, id := range body.Points {
		key := id.String()
		if _, ok := col.points[key]; !ok {
			continue // deleting unknown ids is fine
		}
		delete(col.points, key)
		for i, k := range col.order {
			if k == key {
				col.order = append(col.order[:i], col.order[i+1:]...)
				break
			}
		}
	}
	m.writeResult(w, map[string]any{"operation_id": 0, "status": "completed"})
}

func (m *mockQdrant) searchPoints(w http.ResponseWriter, r *http.Request, name string) {
	col := m.collections[name]
	if col == nil {
		m.writeError(w, http.StatusNotFound, "collection `"+name+"` doesn't exist")
		return
	}
	var body searchPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		m.writeError(w, http.StatusBadRequest, "invalid search request")
		return
	}
	if uint64(len(body.Vector)) != col.size {
		m.writeError(w, http.StatusBadRequest, "vector dimension error")
		return
	}

	scored := make([]ScoredPoint, 0, len(col.points))
	for _, key := range col.order {
		p := col.points[key]
		score := dot(body.Vector, p.Vector)
		if score < body.ScoreThreshold {
			continue
		}
		sp := ScoredPoint{ID: p.ID, Score: score}
		if body.WithVector {
			sp.Vector = p.Vector
		}
		if body.WithPayload {
			sp.Payload = p.Payload
		}
		scored = append(scored, sp)
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if body.Limit > 0 && uint64(len(scored)) > body.Limit {
		scored = scored[:body.Limit]
	}
	m.writeResult(w, scored)
}

func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func (m *mockQdrant) writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"time":   0.0001,
		"result": result,
	})
}

func (m *mockQdrant) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"status": map[string]any{"error": msg},
		"time":   0.0001,
	})
}
