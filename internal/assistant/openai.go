package assistant

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend implements Backend on top of OpenAI's hosted vector store
// (file_search) and assistants APIs.
type OpenAIBackend struct {
	client       *openai.Client
	model        string
	pollInterval time.Duration
}

// NewOpenAIBackend creates a backend for the given credential. The model is
// the one assistants are created with; callers may override it per question.
func NewOpenAIBackend(apiKey, model string, pollInterval time.Duration) (*OpenAIBackend, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is empty")
	}
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &OpenAIBackend{
		client:       openai.NewClient(apiKey),
		model:        model,
		pollInterval: pollInterval,
	}, nil
}

// CreateIndex uploads the files, indexes them into a new vector store and
// creates an assistant bound to it. It blocks until the hosted file batch
// reaches a terminal status or ctx expires.
func (b *OpenAIBackend) CreateIndex(ctx context.Context, name string, paths []string) (*Index, error) {
	if len(paths) == 0 {
		return nil, errors.New("no files to index")
	}

	fileIDs := make([]string, 0, len(paths))
	for _, path := range paths {
		file, err := b.client.CreateFile(ctx, openai.FileRequest{
			FileName: filepath.Base(path),
			FilePath: path,
			Purpose:  "assistants",
		})
		if err != nil {
			return nil, fmt.Errorf("uploading %s: %w", filepath.Base(path), err)
		}
		fileIDs = append(fileIDs, file.ID)
	}

	store, err := b.client.CreateVectorStore(ctx, openai.VectorStoreRequest{Name: name})
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	batch, err := b.client.CreateVectorStoreFileBatch(ctx, store.ID, openai.VectorStoreFileBatchRequest{
		FileIDs: fileIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("attaching files to vector store: %w", err)
	}

	status, err := b.waitForBatch(ctx, store.ID, batch.ID)
	if err != nil {
		return nil, err
	}

	asst, err := b.createAssistant(ctx, store.ID)
	if err != nil {
		return nil, fmt.Errorf("creating assistant: %w", err)
	}

	return &Index{
		VectorStoreID: store.ID,
		AssistantID:   asst.ID,
		BatchStatus:   status,
	}, nil
}

// DeleteIndex removes the hosted assistant and vector store of a superseded
// index. Missing identifiers are skipped.
func (b *OpenAIBackend) DeleteIndex(ctx context.Context, idx *Index) error {
	if idx == nil {
		return nil
	}
	if idx.AssistantID != "" {
		if _, err := b.client.DeleteAssistant(ctx, idx.AssistantID); err != nil {
			return fmt.Errorf("deleting assistant: %w", err)
		}
	}
	if idx.VectorStoreID != "" {
		if _, err := b.client.DeleteVectorStore(ctx, idx.VectorStoreID); err != nil {
			return fmt.Errorf("deleting vector store: %w", err)
		}
	}
	return nil
}

// Ask runs a single-shot thread against the assistant: the question goes in,
// the first assistant reply comes back, sanitized.
func (b *OpenAIBackend) Ask(ctx context.Context, idx *Index, question, model string) (string, error) {
	if idx == nil || idx.AssistantID == "" {
		return "", errors.New("no assistant configured")
	}

	run, err := b.client.CreateThreadAndRun(ctx, openai.CreateThreadAndRunRequest{
		RunRequest: openai.RunRequest{
			AssistantID: idx.AssistantID,
			Model:       model,
		},
		Thread: openai.ThreadRequest{
			Messages: []openai.ThreadMessage{
				{Role: openai.ThreadMessageRoleUser, Content: question},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("starting run: %w", err)
	}

	run, err = b.waitForRun(ctx, run)
	if err != nil {
		return "", err
	}

	limit := 10
	order := "desc"
	msgs, err := b.client.ListMessage(ctx, run.ThreadID, &limit, &order, nil, nil, &run.ID)
	if err != nil {
		return "", fmt.Errorf("reading reply: %w", err)
	}
	for _, msg := range msgs.Messages {
		if msg.Role != "assistant" {
			continue
		}
		for _, part := range msg.Content {
			if part.Text != nil {
				return Sanitize(part.Text.Value), nil
			}
		}
	}
	return "", errors.New("run finished without an assistant reply")
}

func (b *OpenAIBackend) createAssistant(ctx context.Context, storeID string) (openai.Assistant, error) {
	name := AssistantName
	instructions := SystemPrompt
	return b.client.CreateAssistant(ctx, openai.AssistantRequest{
		Model:        b.model,
		Name:         &name,
		Instructions: &instructions,
		Tools: []openai.AssistantTool{
			{Type: openai.AssistantToolTypeFileSearch},
		},
		ToolResources: &openai.AssistantToolResource{
			FileSearch: &openai.AssistantToolFileSearch{
				VectorStoreIDs: []string{storeID},
			},
		},
	})
}

// waitForBatch polls the vector store file batch until it completes.
func (b *OpenAIBackend) waitForBatch(ctx context.Context, storeID, batchID string) (string, error) {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		batch, err := b.client.RetrieveVectorStoreFileBatch(ctx, storeID, batchID)
		if err != nil {
			return "", fmt.Errorf("polling file batch: %w", err)
		}
		switch batch.Status {
		case "completed":
			return batch.Status, nil
		case "failed", "cancelled":
			return batch.Status, fmt.Errorf("file batch ended with status %q (%d of %d files indexed)",
				batch.Status, batch.FileCounts.Completed, batch.FileCounts.Total)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// waitForRun polls the run until it reaches a terminal status.
func (b *OpenAIBackend) waitForRun(ctx context.Context, run openai.Run) (openai.Run, error) {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		switch run.Status {
		case openai.RunStatusCompleted:
			return run, nil
		case openai.RunStatusFailed, openai.RunStatusCancelled, openai.RunStatusExpired:
			if run.LastError != nil {
				return run, fmt.Errorf("run ended with status %q: %s", run.Status, run.LastError.Message)
			}
			return run, fmt.Errorf("run ended with status %q", run.Status)
		case openai.RunStatusRequiresAction:
			// file_search needs no client-side tool handling; anything else
			// is a misconfigured assistant.
			return run, errors.New("run requires a tool action this assistant does not support")
		}

		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-ticker.C:
		}

		var err error
		run, err = b.client.RetrieveRun(ctx, run.ThreadID, run.ID)
		if err != nil {
			return run, fmt.Errorf("polling run: %w", err)
		}
	}
}
