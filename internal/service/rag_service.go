package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ekaya/pdfasistan/internal/assistant"
	"github.com/ekaya/pdfasistan/internal/config"
	"github.com/ekaya/pdfasistan/internal/dto"
	"github.com/ekaya/pdfasistan/internal/library"
	"github.com/ekaya/pdfasistan/internal/pkg/logger"
	"github.com/ekaya/pdfasistan/internal/state"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
)

var (
	// ErrNotIndexed means a question arrived before any index exists.
	ErrNotIndexed = errors.New("henüz indeks yok")
	// ErrNoDocuments means the data folder holds no PDFs to index.
	ErrNoDocuments = errors.New("data klasöründe PDF bulunamadı")
	// ErrModelNotAllowed means the requested model is not on the allow-list.
	ErrModelNotAllowed = errors.New("bu model desteklenmiyor")
)

// IRagService defines the RAG orchestration surface.
type IRagService interface {
	Status(ctx context.Context) (*dto.StatusResponse, error)
	Index(ctx context.Context) (*dto.IndexResponse, error)
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	Questions() []string
}

type ragService struct {
	cfg       *config.Config
	backend   assistant.Backend
	store     *state.Store
	log       logger.ILogger
	questions []string
	answers   *cache.Cache

	// One indexing run at a time; a second button press waits.
	indexMu sync.Mutex
}

func NewRagService(cfg *config.Config, backend assistant.Backend, store *state.Store, log logger.ILogger, questions []string) IRagService {
	return &ragService{
		cfg:       cfg,
		backend:   backend,
		store:     store,
		log:       log,
		questions: questions,
		answers:   cache.New(10*time.Minute, 15*time.Minute),
	}
}

// Status reports the current index state next to what is on disk, so the UI
// can tell whether the index is missing, stale or current.
func (s *ragService) Status(ctx context.Context) (*dto.StatusResponse, error) {
	st, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	docs, err := library.ListPDFs(s.cfg.App.DataDir)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	infos := make([]dto.DocumentInfo, len(docs))
	for i, d := range docs {
		infos[i] = dto.DocumentInfo{Name: d.Name, Size: d.Size}
	}

	return &dto.StatusResponse{
		Indexed:       st.Indexed(),
		UpToDate:      st.Indexed() && library.UpToDate(st.IndexedFiles, docs),
		VectorStoreID: st.VectorStoreID,
		Documents:     infos,
		IndexedFiles:  st.IndexedFiles,
		LastIndexTime: st.LastIndexedAt(),
	}, nil
}

// Index uploads every PDF in the data folder into a fresh hosted index and
// persists the new handle, replacing (not extending) the previous one.
func (s *ragService) Index(ctx context.Context) (*dto.IndexResponse, error) {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	docs, err := library.ListPDFs(s.cfg.App.DataDir)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	prev, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.OpenAI.IndexTimeout)
	defer cancel()

	name := fmt.Sprintf("%s_%s", assistant.AssistantName, uuid.NewString()[:8])
	idx, err := s.backend.CreateIndex(ctx, name, library.Paths(s.cfg.App.DataDir, docs))
	if err != nil {
		s.log.Error("rag", "indexing failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("indeksleme başarısız: %w", err)
	}

	now := time.Now()
	next := &state.State{
		VectorStoreID: idx.VectorStoreID,
		AssistantID:   idx.AssistantID,
		IndexedFiles:  library.Names(docs),
		LastIndexTime: now.Unix(),
	}
	if err := s.store.Save(next); err != nil {
		return nil, fmt.Errorf("saving state: %w", err)
	}

	// The new index supersedes the old one. Hosted cleanup is best effort;
	// a leftover store costs nothing locally.
	if prev.Indexed() {
		old := &assistant.Index{VectorStoreID: prev.VectorStoreID, AssistantID: prev.AssistantID}
		if err := s.backend.DeleteIndex(ctx, old); err != nil {
			s.log.Warn("rag", "could not delete superseded index", map[string]interface{}{
				"vector_store_id": prev.VectorStoreID,
				"error":           err.Error(),
			})
		}
	}
	s.answers.Flush()

	s.log.Info("rag", "indexing completed", map[string]interface{}{
		"vector_store_id": idx.VectorStoreID,
		"status":          idx.BatchStatus,
		"files":           len(docs),
	})

	return &dto.IndexResponse{
		VectorStoreID: idx.VectorStoreID,
		Status:        idx.BatchStatus,
		IndexedFiles:  next.IndexedFiles,
		IndexedAt:     now,
	}, nil
}

// Ask answers one question from the indexed documents. The transcript lives
// in the browser session; nothing conversational is kept here.
func (s *ragService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	st, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}
	if !st.Indexed() {
		return nil, ErrNotIndexed
	}

	model := req.Model
	if model == "" {
		model = s.cfg.OpenAI.DefaultModel
	}
	if !s.cfg.OpenAI.ModelAllowed(model) {
		return nil, fmt.Errorf("%w: %s", ErrModelNotAllowed, model)
	}

	question := strings.TrimSpace(req.Question)
	key := st.VectorStoreID + "|" + model + "|" + question
	if cached, ok := s.answers.Get(key); ok {
		return &dto.AskResponse{Answer: cached.(string), Model: model, Cached: true}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.OpenAI.AskTimeout)
	defer cancel()

	idx := &assistant.Index{VectorStoreID: st.VectorStoreID, AssistantID: st.AssistantID}
	answer, err := s.backend.Ask(ctx, idx, question, model)
	if err != nil {
		s.log.Error("rag", "ask failed", map[string]interface{}{"model": model, "error": err.Error()})
		return nil, fmt.Errorf("yanıt alınamadı: %w", err)
	}
	s.answers.Set(key, answer, cache.DefaultExpiration)

	return &dto.AskResponse{Answer: answer, Model: model}, nil
}

// Questions returns the example questions for the sidebar.
func (s *ragService) Questions() []string {
	return s.questions
}
