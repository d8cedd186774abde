package assistant

import "context"

// Index identifies the hosted resources backing one indexed corpus: the
// vector store holding the documents and the assistant bound to it.
type Index struct {
	VectorStoreID string
	AssistantID   string
	BatchStatus   string
}

// Backend is the hosted RAG service this application delegates to. Indexing
// and retrieval both happen on the hosted side; the application only keeps
// the returned identifiers.
type Backend interface {
	// CreateIndex uploads the given files, indexes them into a fresh vector
	// store and binds an assistant to it. Blocks until indexing finishes.
	CreateIndex(ctx context.Context, name string, paths []string) (*Index, error)
	// DeleteIndex removes the hosted resources of a superseded index.
	DeleteIndex(ctx context.Context, idx *Index) error
	// Ask answers a single question strictly from the indexed documents.
	// An empty model falls back to the assistant's configured model.
	Ask(ctx context.Context, idx *Index, question, model string) (string, error)
}
