package server

import (
	"io"
	"time"

	"github.com/bastiangx/lexivar/pkg/config"
	"github.com/bastiangx/lexivar/pkg/variant"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for variant lookups over a built model.
type Server struct {
	model   *variant.Model
	cfg     *config.Config
	cache   *variant.Cache
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a lookup server reading requests from r and writing
// responses to w, usually stdin/stdout.
func NewServer(model *variant.Model, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		model:   model,
		cfg:     cfg,
		cache:   variant.NewCache(),
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start signals readiness and processes requests until EOF.
func (s *Server) Start() error {
	log.Debug("starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "variants":
		s.handleVariants(req)
	case "match":
		s.handleMatch(req)
	case "ping":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, "unknown op: "+req.Op, 400)
	}
}

func (s *Server) handleVariants(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	if max := s.cfg.Server.MaxQueryLen; max > 0 && len(req.Query) > max {
		s.sendError(req.ID, "query exceeds maximum length", 400)
		return
	}
	params := s.params(req)
	start := time.Now()
	res, err := s.cache.FindVariants(s.model, req.Query, params)
	if err != nil {
		s.sendEngineError(req.ID, err)
		return
	}
	s.send(Response{
		ID:        req.ID,
		Results:   []variant.VariantResult{res},
		Count:     len(res.Variants),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleMatch(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	if max := s.cfg.Server.MaxTextLen; max > 0 && len(req.Query) > max {
		s.sendError(req.ID, "text exceeds maximum length", 400)
		return
	}
	params := s.params(req)
	start := time.Now()
	results, err := s.model.FindAllMatches(req.Query, params)
	if err != nil {
		s.sendEngineError(req.ID, err)
		return
	}
	s.send(Response{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// params merges per-request overrides onto the configured defaults.
func (s *Server) params(req Request) variant.SearchParameters {
	params := s.cfg.SearchParameters()
	if req.MaxDistance > 0 {
		params.MaxEditDistance = req.MaxDistance
	}
	if req.MaxNgram > 0 {
		params.MaxNgram = req.MaxNgram
	}
	if req.Limit > 0 {
		params.MaxMatches = req.Limit
	}
	return params
}

func (s *Server) sendEngineError(id string, err error) {
	status := 500
	switch {
	case errors.Is(err, variant.ErrInvalidInput):
		status = 400
	case errors.Is(err, variant.ErrConfiguration):
		status = 409
	}
	s.sendError(id, err.Error(), status)
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	log.Debugf("request %s failed: %s", id, message)
	s.send(ErrorResponse{ID: id, Error: message, Status: code})
}
