// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ocr-workbench/internal/mistral"
	"github.com/pdiddy/ocr-workbench/internal/workspace"
	"github.com/pdiddy/ocr-workbench/pkg/types"
)

// fakeClient records calls and serves canned responses.
type fakeClient struct {
	files     []mistral.File
	signedURL string
	ocrResult *mistral.OCRResponse

	listErr   error
	uploadErr error
	signErr   error
	ocrErr    error
	deleteErr error

	calls     []string
	uploaded  []string
	deleted   []string
	lastModel string
	lastURL   string
	lastOpts  mistral.OCROptions
}

func (f *fakeClient) ListFiles(ctx context.Context, purpose string) ([]mistral.File, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.files, nil
}

func (f *fakeClient) UploadFile(ctx context.Context, filename string, content []byte, purpose string) (mistral.File, error) {
	f.calls = append(f.calls, "upload")
	if f.uploadErr != nil {
		return mistral.File{}, f.uploadErr
	}
	f.uploaded = append(f.uploaded, filename)
	return mistral.File{ID: "file-new", Filename: filename, Purpose: purpose}, nil
}

func (f *fakeClient) SignedURL(ctx context.Context, fileID string) (string, error) {
	f.calls = append(f.calls, "sign")
	if f.signErr != nil {
		return "", f.signErr
	}
	return f.signedURL, nil
}

func (f *fakeClient) ProcessDocument(ctx context.Context, model, documentURL string, opts mistral.OCROptions) (*mistral.OCRResponse, error) {
	f.calls = append(f.calls, "ocr")
	f.lastModel = model
	f.lastURL = documentURL
	f.lastOpts = opts
	if f.ocrErr != nil {
		return nil, f.ocrErr
	}
	return f.ocrResult, nil
}

func (f *fakeClient) DeleteFile(ctx context.Context, fileID string) error {
	f.calls = append(f.calls, "delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileID)
	return nil
}

// fakePrompter returns scripted selections, or cancels every prompt.
type fakePrompter struct {
	picks  []int
	cancel bool
	asked  int
}

func (p *fakePrompter) Select(message string, options []string) (int, error) {
	p.asked++
	if p.cancel {
		return 0, ErrCancelled
	}
	if len(p.picks) == 0 {
		return 0, errors.New("fakePrompter: no picks left")
	}
	pick := p.picks[0]
	p.picks = p.picks[1:]
	if pick < 0 || pick >= len(options) {
		return 0, errors.New("fakePrompter: pick out of range")
	}
	return pick, nil
}

// fakeIndicator is a no-op progress indicator.
type fakeIndicator struct{}

func (fakeIndicator) Start(string)      {}
func (fakeIndicator) Stop(bool, string) {}

func newTestOps(t *testing.T, client *fakeClient, prompter *fakePrompter) *Operations {
	t.Helper()
	root := t.TempDir()
	ws := workspace.New(types.WorkspaceConfig{
		InboxDir:  filepath.Join(root, "pdf"),
		OutputDir: filepath.Join(root, "ocr"),
	})
	require.NoError(t, ws.Init())
	return &Operations{
		Workspace: ws,
		Client:    client,
		Prompter:  prompter,
		Indicator: fakeIndicator{},
		Model:     "mistral-ocr-latest",
		Out:       &bytes.Buffer{},
	}
}

func TestUploadEmptyInboxSkips(t *testing.T) {
	client := &fakeClient{}
	o := newTestOps(t, client, &fakePrompter{})

	res := o.Upload(context.Background())

	assert.Equal(t, StatusSkipped, res.Status)
	assert.Empty(t, client.calls, "no remote call may be made on an empty inbox")
}

func TestUploadSendsSelectedFile(t *testing.T) {
	client := &fakeClient{}
	prompter := &fakePrompter{picks: []int{1}}
	o := newTestOps(t, client, prompter)

	writeInbox(t, o, "a.pdf", "contents-a")
	writeInbox(t, o, "b.pdf", "contents-b")

	res := o.Upload(context.Background())

	require.Equal(t, StatusDone, res.Status, "err: %v", res.Err)
	assert.Equal(t, []string{"b.pdf"}, client.uploaded)
	assert.Contains(t, res.Message, "b.pdf")
}

func TestUploadCancelled(t *testing.T) {
	client := &fakeClient{}
	o := newTestOps(t, client, &fakePrompter{cancel: true})
	writeInbox(t, o, "a.pdf", "x")

	res := o.Upload(context.Background())

	assert.Equal(t, StatusCancelled, res.Status)
	assert.Empty(t, client.calls)
}

func TestUploadRemoteFailure(t *testing.T) {
	client := &fakeClient{uploadErr: errors.New("503 service unavailable")}
	o := newTestOps(t, client, &fakePrompter{picks: []int{0}})
	writeInbox(t, o, "a.pdf", "x")

	res := o.Upload(context.Background())

	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorContains(t, res.Err, "503")
}

func TestDeleteEmptyRemoteListSkips(t *testing.T) {
	client := &fakeClient{}
	o := newTestOps(t, client, &fakePrompter{})

	res := o.Delete(context.Background())

	assert.Equal(t, StatusSkipped, res.Status)
	assert.Equal(t, []string{"list"}, client.calls, "only the list call may run")
}

func TestDeleteSelectedDocument(t *testing.T) {
	client := &fakeClient{files: []mistral.File{
		{ID: "file-1", Filename: "a.pdf"},
		{ID: "file-2", Filename: "b.pdf"},
	}}
	o := newTestOps(t, client, &fakePrompter{picks: []int{1}})

	res := o.Delete(context.Background())

	require.Equal(t, StatusDone, res.Status, "err: %v", res.Err)
	assert.Equal(t, []string{"file-2"}, client.deleted)
}

func TestDeleteFailureSurfaced(t *testing.T) {
	client := &fakeClient{
		files:     []mistral.File{{ID: "file-1", Filename: "a.pdf"}},
		deleteErr: errors.New("not found"),
	}
	o := newTestOps(t, client, &fakePrompter{picks: []int{0}})

	res := o.Delete(context.Background())

	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorContains(t, res.Err, "not found")
}

func writeInbox(t *testing.T, o *Operations, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(o.Workspace.InboxDir, name), []byte(content), 0o644))
}
