package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/virtual-assistant/internal/domain/contact"
	"github.com/hugohenrick/virtual-assistant/internal/domain/email"
	"github.com/hugohenrick/virtual-assistant/internal/domain/file"
	"github.com/hugohenrick/virtual-assistant/internal/domain/history"
	"github.com/hugohenrick/virtual-assistant/pkg/auth"
	"github.com/hugohenrick/virtual-assistant/pkg/chat"
	"github.com/hugohenrick/virtual-assistant/pkg/intent"
)

var errBackend = errors.New("connection refused")

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// withSession simula o middleware JWT
func withSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.SessionIDKey, sessionID)
		c.Next()
	}
}

type fakeAssistant struct {
	lastSession string
	lastMessage string
	reset       []string
	transcript  []chat.Message
	err         error
}

func (a *fakeAssistant) ProcessMessage(_ context.Context, sessionID, message string) (*intent.ActionResult, error) {
	a.lastSession, a.lastMessage = sessionID, message
	if a.err != nil {
		return nil, a.err
	}
	return &intent.ActionResult{Success: true, Message: "ok: " + message, Intent: intent.IntentHelp, OperationID: "op-1"}, nil
}

func (a *fakeAssistant) SaveEditor(_ context.Context, sessionID, filename, content string) (*intent.ActionResult, error) {
	if filename == "" {
		return nil, intent.ErrEmptyFilename
	}
	return &intent.ActionResult{Success: true, Message: "File " + filename + " updated successfully!"}, nil
}

func (a *fakeAssistant) ResetSession(sessionID string) {
	a.reset = append(a.reset, sessionID)
}

func (a *fakeAssistant) Session(sessionID string) intent.ConversationState {
	return intent.ConversationState{Active: true, Kind: intent.ConversationEmail, Step: 2}
}

func (a *fakeAssistant) Transcript(_ context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.transcript, nil
}

func (a *fakeAssistant) ClearTranscript(_ context.Context, sessionID string) (int64, error) {
	return int64(len(a.transcript)), a.err
}

type fakeFileStore struct {
	files map[string]string
	err   error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string]string{}}
}

func (s *fakeFileStore) Create(_ context.Context, filename, content string) (intent.FileResult, error) {
	if s.err != nil {
		return intent.FileResult{}, s.err
	}
	if _, ok := s.files[filename]; ok {
		return intent.FileResult{Outcome: intent.Outcome{Message: "A file with this name already exists."}}, nil
	}
	s.files[filename] = content
	return intent.FileResult{
		Outcome: intent.Outcome{Success: true, Message: "File created successfully."},
		File:    &intent.FileInfo{Filename: filename, Size: int64(len(content))},
	}, nil
}

func (s *fakeFileStore) Read(_ context.Context, filename string) (intent.ReadResult, error) {
	if s.err != nil {
		return intent.ReadResult{}, s.err
	}
	content, ok := s.files[filename]
	if !ok {
		return intent.ReadResult{Outcome: intent.Outcome{Message: "File not found: " + filename}}, nil
	}
	return intent.ReadResult{Outcome: intent.Outcome{Success: true, Message: "File read successfully."}, Content: content}, nil
}

func (s *fakeFileStore) Update(_ context.Context, filename, content string, appendContent bool) (intent.FileResult, error) {
	existing, ok := s.files[filename]
	if !ok {
		return intent.FileResult{Outcome: intent.Outcome{Message: "File not found: " + filename + ". Use create to make a new file."}}, nil
	}
	if appendContent {
		content = existing + "\n" + content
	}
	s.files[filename] = content
	return intent.FileResult{
		Outcome: intent.Outcome{Success: true, Message: "File updated successfully."},
		File:    &intent.FileInfo{Filename: filename, Size: int64(len(content))},
	}, nil
}

func (s *fakeFileStore) Delete(_ context.Context, filename string) (intent.FileResult, error) {
	if _, ok := s.files[filename]; !ok {
		return intent.FileResult{Outcome: intent.Outcome{Message: "File not found: " + filename}}, nil
	}
	delete(s.files, filename)
	return intent.FileResult{Outcome: intent.Outcome{Success: true, Message: "File deleted successfully."}}, nil
}

func (s *fakeFileStore) Search(ctx context.Context, query string) (intent.ListResult, error) {
	res, err := s.List(ctx)
	res.Query = query
	return res, err
}

func (s *fakeFileStore) List(_ context.Context) (intent.ListResult, error) {
	if s.err != nil {
		return intent.ListResult{}, s.err
	}
	files := make([]intent.FileInfo, 0, len(s.files))
	for name := range s.files {
		files = append(files, intent.FileInfo{Filename: name})
	}
	return intent.ListResult{Outcome: intent.Outcome{Success: true, Message: "files"}, Files: files}, nil
}

type fakeMailer struct {
	fail bool
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) (intent.MailResult, error) {
	if m.fail {
		return intent.MailResult{Outcome: intent.Outcome{Message: "SMTP connection failed"}}, nil
	}
	return intent.MailResult{Outcome: intent.Outcome{Success: true, Message: "Email sent successfully to " + to}, EmailID: 7, To: to}, nil
}

type memoryContacts struct {
	saved []*contact.Contact
	err   error
}

func (r *memoryContacts) Create(_ context.Context, c *contact.Contact) error {
	if r.err != nil {
		return r.err
	}
	c.ID = int64(len(r.saved) + 1)
	r.saved = append(r.saved, c)
	return nil
}

func (r *memoryContacts) List(_ context.Context, limit, offset int) ([]*contact.Contact, error) {
	return r.saved, nil
}

type memoryHistory struct {
	entries    []*history.Entry
	lastFilter history.Filter
	cleared    bool
}

func (r *memoryHistory) Create(_ context.Context, e *history.Entry) error {
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, e)
	return nil
}

func (r *memoryHistory) List(_ context.Context, f history.Filter) ([]*history.Entry, error) {
	r.lastFilter = f
	out := make([]*history.Entry, 0)
	for _, e := range r.entries {
		if f.Action != "" && e.CommandType != f.Action {
			continue
		}
		if f.Status != "" && string(e.Result) != f.Status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memoryHistory) Count(_ context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func (r *memoryHistory) Delete(_ context.Context, id int64) (bool, error) {
	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryHistory) Clear(_ context.Context) error {
	r.entries = nil
	r.cleared = true
	return nil
}

func (r *memoryHistory) Stats(_ context.Context) (*history.Stats, error) {
	s := &history.Stats{Total: int64(len(r.entries)), Distribution: []history.ActionCount{}, Recent: r.entries}
	for _, e := range r.entries {
		if e.Result == history.ResultSuccess {
			s.Successful++
		} else {
			s.Failed++
		}
	}
	return s, nil
}

type statsFiles struct {
	file.Repository
	stats *file.Stats
}

func (r statsFiles) Stats(_ context.Context) (*file.Stats, error) {
	return r.stats, nil
}

type statsEmails struct {
	email.Repository
	stats *email.Stats
	err   error
}

func (r statsEmails) Stats(_ context.Context) (*email.Stats, error) {
	return r.stats, r.err
}

func (r statsEmails) List(_ context.Context, limit int) ([]*email.Email, error) {
	return []*email.Email{{ID: 1, Recipient: "a@b.com", Status: email.StatusSent}}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
