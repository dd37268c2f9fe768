package uuidhttp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaulFidika/uuidkit/deterministic"
	"github.com/PaulFidika/uuidkit/idfmt"
	"github.com/PaulFidika/uuidkit/registry"
	"github.com/google/uuid"
)

type uuidResponse struct {
	UUID      string `json:"uuid"`
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
}

type batchRequest struct {
	Namespace string   `json:"namespace"`
	Version   int      `json:"version"`
	Format    string   `json:"format"`
	Names     []string `json:"names"`
}

type batchResponse struct {
	Namespace string   `json:"namespace"`
	Version   int      `json:"version"`
	UUIDs     []string `json:"uuids"`
}

type namespacesResponse struct {
	Namespaces []registry.Entry `json:"namespaces"`
}

// Handler returns the HTTP API:
//
//	GET  /v1/uuid?namespace=&name=&version=&format=
//	POST /v1/uuid/batch
//	GET  /v1/namespaces
//	GET  /healthz
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
	mux.HandleFunc("/v1/uuid", s.handleUUIDGet)
	mux.HandleFunc("/v1/uuid/batch", s.handleUUIDBatchPost)
	mux.HandleFunc("/v1/namespaces", s.handleNamespacesGet)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { notFound(w) })
	return mux
}

func (s *Service) handleUUIDGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	if !s.allow(r, RLUUID) {
		tooMany(w)
		return
	}
	q := r.URL.Query()
	ns, nsLabel, ok := s.namespace(q.Get("namespace"))
	if !ok {
		badRequest(w, "invalid_namespace")
		return
	}
	version, ok := s.version(q.Get("version"))
	if !ok {
		badRequest(w, "invalid_version")
		return
	}
	format := q.Get("format")
	if !idfmt.Valid(format) {
		badRequest(w, "invalid_format")
		return
	}
	name := q.Get("name")
	id, err := deterministic.CreateVersion(ns, name, version)
	if err != nil {
		badRequest(w, argumentCode(err))
		return
	}
	text, err := idfmt.Format(id, format)
	if err != nil {
		badRequest(w, "invalid_format")
		return
	}
	writeJSON(w, http.StatusOK, uuidResponse{
		UUID:      text,
		Namespace: nsLabel,
		Name:      name,
		Version:   int(version),
	})
}

func (s *Service) handleUUIDBatchPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if !s.allow(r, RLUUIDBatch) {
		tooMany(w)
		return
	}
	var req batchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		badRequest(w, "invalid_request")
		return
	}
	ns, nsLabel, ok := s.namespace(req.Namespace)
	if !ok {
		badRequest(w, "invalid_namespace")
		return
	}
	version, ok := s.version(strconv.Itoa(req.Version))
	if req.Version == 0 {
		version, ok = s.defaultVersion, true
	}
	if !ok {
		badRequest(w, "invalid_version")
		return
	}
	if !idfmt.Valid(req.Format) {
		badRequest(w, "invalid_format")
		return
	}
	if len(req.Names) == 0 {
		badRequest(w, "invalid_name")
		return
	}
	if len(req.Names) > s.maxBatch {
		badRequest(w, "too_many_names")
		return
	}

	out := make([]string, 0, len(req.Names))
	for _, name := range req.Names {
		id, err := deterministic.CreateVersion(ns, name, version)
		if err != nil {
			badRequest(w, argumentCode(err))
			return
		}
		text, err := idfmt.Format(id, req.Format)
		if err != nil {
			badRequest(w, "invalid_format")
			return
		}
		out = append(out, text)
	}
	writeJSON(w, http.StatusOK, batchResponse{Namespace: nsLabel, Version: int(version), UUIDs: out})
}

func (s *Service) handleNamespacesGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	if !s.allow(r, RLNamespaces) {
		tooMany(w)
		return
	}
	writeJSON(w, http.StatusOK, namespacesResponse{Namespaces: s.reg.Entries()})
}

// namespace resolves a request namespace, falling back to the service default. The label
// echoes what the caller asked for in canonical form.
func (s *Service) namespace(raw string) (uuid.UUID, string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = s.defaultNamespace
	}
	id, err := s.reg.Resolve(raw)
	if err != nil {
		return uuid.Nil, "", false
	}
	if _, named := s.reg.Lookup(raw); named {
		return id, strings.ToLower(raw), true
	}
	return id, id.String(), true
}

func (s *Service) version(raw string) (uuid.Version, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.defaultVersion, true
	}
	switch raw {
	case "3":
		return deterministic.MD5, true
	case "5":
		return deterministic.SHA1, true
	default:
		return 0, false
	}
}

func argumentCode(err error) string {
	var argErr *deterministic.ArgumentError
	if errors.As(err, &argErr) {
		return "invalid_" + argErr.Arg
	}
	return "invalid_request"
}
