package intent

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hugohenrick/virtual-assistant/pkg/chat"
)

var errUnreachable = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

type fakeFileStore struct {
	mu    sync.Mutex
	files map[string]string
	calls []string
	err   error
}

func newFakeFileStore(files map[string]string) *fakeFileStore {
	if files == nil {
		files = make(map[string]string)
	}
	return &fakeFileStore{files: files}
}

func (f *fakeFileStore) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeFileStore) info(name string) *FileInfo {
	return &FileInfo{Filename: name, Size: int64(len(f.files[name])), MimeType: "text/plain"}
}

func (f *fakeFileStore) Create(_ context.Context, filename, content string) (FileResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("create:" + filename); err != nil {
		return FileResult{}, err
	}
	if _, exists := f.files[filename]; exists {
		return FileResult{Outcome: Outcome{Message: "A file with this name already exists"}}, nil
	}
	f.files[filename] = content
	return FileResult{Outcome: Outcome{Success: true, Message: "File created successfully"}, File: f.info(filename)}, nil
}

func (f *fakeFileStore) Read(_ context.Context, filename string) (ReadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("read:" + filename); err != nil {
		return ReadResult{}, err
	}
	content, ok := f.files[filename]
	if !ok {
		return ReadResult{Outcome: Outcome{Message: "File not found"}}, nil
	}
	return ReadResult{Outcome: Outcome{Success: true}, Content: content, File: f.info(filename)}, nil
}

func (f *fakeFileStore) Update(_ context.Context, filename, content string, appendContent bool) (FileResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("update:" + filename); err != nil {
		return FileResult{}, err
	}
	existing, ok := f.files[filename]
	if !ok {
		return FileResult{Outcome: Outcome{Message: "File not found"}}, nil
	}
	if appendContent {
		content = existing + "\n" + content
	}
	f.files[filename] = content
	return FileResult{Outcome: Outcome{Success: true}, File: f.info(filename)}, nil
}

func (f *fakeFileStore) Delete(_ context.Context, filename string) (FileResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("delete:" + filename); err != nil {
		return FileResult{}, err
	}
	if _, ok := f.files[filename]; !ok {
		return FileResult{Outcome: Outcome{Message: "File not found"}}, nil
	}
	delete(f.files, filename)
	return FileResult{Outcome: Outcome{Success: true}}, nil
}

func (f *fakeFileStore) Search(_ context.Context, query string) (ListResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("search:" + query); err != nil {
		return ListResult{}, err
	}
	return ListResult{Outcome: Outcome{Success: true}, Files: f.matching(query), Query: query}, nil
}

func (f *fakeFileStore) List(_ context.Context) (ListResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("list"); err != nil {
		return ListResult{}, err
	}
	return ListResult{Outcome: Outcome{Success: true}, Files: f.matching("")}, nil
}

func (f *fakeFileStore) matching(query string) []FileInfo {
	names := make([]string, 0, len(f.files))
	for name := range f.files {
		if strings.Contains(name, query) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	files := make([]FileInfo, 0, len(names))
	for _, name := range names {
		files = append(files, *f.info(name))
	}
	return files
}

func (f *fakeFileStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []Action
	fail string
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) (MailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return MailResult{}, m.err
	}
	if m.fail != "" {
		return MailResult{Outcome: Outcome{Message: m.fail}, To: to}, nil
	}
	m.sent = append(m.sent, Action{Kind: ActionSendEmail, To: to, Subject: subject, Body: body})
	return MailResult{Outcome: Outcome{Success: true, Message: "Email sent successfully to " + to}, EmailID: int64(len(m.sent)), To: to}, nil
}

type historyEntry struct {
	sessionID string
	action    Action
	success   bool
}

type fakeHistory struct {
	mu      sync.Mutex
	entries []historyEntry
	err     error
}

func (h *fakeHistory) Record(_ context.Context, sessionID string, action Action, success bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, historyEntry{sessionID: sessionID, action: action, success: success})
	return h.err
}

type fakeTranscript struct {
	mu       sync.Mutex
	messages []chat.Message
}

func (t *fakeTranscript) SaveMessage(_ context.Context, message *chat.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	message.ID = fmt.Sprintf("msg-%d", len(t.messages)+1)
	t.messages = append(t.messages, *message)
	return nil
}

func (t *fakeTranscript) GetSessionHistory(_ context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []chat.Message
	for _, m := range t.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	if offset >= len(out) {
		return []chat.Message{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (t *fakeTranscript) DeleteSessionHistory(_ context.Context, sessionID string) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.messages[:0]
	var removed int64
	for _, m := range t.messages {
		if m.SessionID == sessionID {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	t.messages = kept
	return removed, nil
}

func (t *fakeTranscript) CountSessionMessages(_ context.Context, sessionID string) (int, error) {
	msgs, _ := t.GetSessionHistory(context.Background(), sessionID, 0, 0)
	return len(msgs), nil
}
