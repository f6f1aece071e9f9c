package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/catalog"
	"github.com/heartmarshall/wosa-backend/internal/service/idalloc"
	"github.com/heartmarshall/wosa-backend/internal/service/ingest"
	"github.com/heartmarshall/wosa-backend/internal/service/report"
	"github.com/heartmarshall/wosa-backend/internal/service/topic"
	"github.com/heartmarshall/wosa-backend/internal/service/user"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

// ---------------------------------------------------------------------------
// ingestService
// ---------------------------------------------------------------------------

type fakeIngest struct {
	upload  func(ctx context.Context, in ingest.UploadInput) (*domain.UploadedFile, *domain.Document, error)
	process func(ctx context.Context, fileID int64, records []domain.TopicRecord) (*domain.ProcessingResult, error)
	get     func(ctx context.Context, id int64) (*domain.UploadedFile, error)
	list    func(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error)
}

func (f *fakeIngest) UploadDocument(ctx context.Context, in ingest.UploadInput) (*domain.UploadedFile, *domain.Document, error) {
	return f.upload(ctx, in)
}

func (f *fakeIngest) ProcessDocument(ctx context.Context, fileID int64, records []domain.TopicRecord) (*domain.ProcessingResult, error) {
	return f.process(ctx, fileID, records)
}

func (f *fakeIngest) GetFile(ctx context.Context, id int64) (*domain.UploadedFile, error) {
	if f.get == nil {
		return &domain.UploadedFile{ID: id, Status: domain.FileStatusPending}, nil
	}
	return f.get(ctx, id)
}

func (f *fakeIngest) ListFiles(ctx context.Context, page domain.Page) ([]domain.UploadedFile, error) {
	return f.list(ctx, page)
}

// ---------------------------------------------------------------------------
// catalogService
// ---------------------------------------------------------------------------

type fakeCatalog struct {
	createComponent func(ctx context.Context, in catalog.CreateNamedInput) (*domain.ApplicationComponent, error)
	createInterface func(ctx context.Context, in catalog.CreateInterfaceInput) (*domain.Interface, error)
	components      []domain.ApplicationComponent
}

func (f *fakeCatalog) CreateApplicationComponent(ctx context.Context, in catalog.CreateNamedInput) (*domain.ApplicationComponent, error) {
	return f.createComponent(ctx, in)
}

func (f *fakeCatalog) ListApplicationComponents(context.Context) ([]domain.ApplicationComponent, error) {
	return f.components, nil
}

func (f *fakeCatalog) CreateInterfaceType(_ context.Context, in catalog.CreateNamedInput) (*domain.InterfaceType, error) {
	return &domain.InterfaceType{ID: 1, Name: in.Name, Description: in.Description}, nil
}

func (f *fakeCatalog) ListInterfaceTypes(context.Context) ([]domain.InterfaceType, error) {
	return []domain.InterfaceType{}, nil
}

func (f *fakeCatalog) CreateInterface(ctx context.Context, in catalog.CreateInterfaceInput) (*domain.Interface, error) {
	return f.createInterface(ctx, in)
}

func (f *fakeCatalog) ListInterfaces(context.Context) ([]domain.Interface, error) {
	return []domain.Interface{}, nil
}

// ---------------------------------------------------------------------------
// topicService
// ---------------------------------------------------------------------------

type fakeTopics struct {
	topics      []domain.Topic
	members     map[int64]domain.TopicMembers
	memberCalls int
	listInput   topic.ListInput
	history     []domain.TopicHistory
	historyN    int
	link        func(ctx context.Context, in topic.LinkInterfaceInput) (*domain.Topic, error)
	err         error
}

func (f *fakeTopics) ListTopics(_ context.Context, in topic.ListInput) ([]domain.Topic, error) {
	f.listInput = in
	return f.topics, f.err
}

func (f *fakeTopics) GetTopic(_ context.Context, id int64) (*domain.TopicDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.topics {
		if t.ID == id {
			m, ok := f.members[id]
			if !ok {
				m = domain.NewTopicMembers()
			}
			return &domain.TopicDetail{Topic: t, Members: m}, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTopics) MembersByTopicIDs(_ context.Context, ids []int64) (map[int64]domain.TopicMembers, error) {
	f.memberCalls++
	out := make(map[int64]domain.TopicMembers, len(ids))
	for _, id := range ids {
		if m, ok := f.members[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

// GetMembersByTopicIDs lets the fake stand in as the dataloader member repo.
func (f *fakeTopics) GetMembersByTopicIDs(ctx context.Context, ids []int64) (map[int64]domain.TopicMembers, error) {
	return f.MembersByTopicIDs(ctx, ids)
}

func (f *fakeTopics) TopicHistory(_ context.Context, _ int64, limit int) ([]domain.TopicHistory, error) {
	f.historyN = limit
	return f.history, f.err
}

func (f *fakeTopics) LinkInterface(ctx context.Context, in topic.LinkInterfaceInput) (*domain.Topic, error) {
	return f.link(ctx, in)
}

func (f *fakeTopics) Deprecate(_ context.Context, id int64) (*domain.Topic, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Topic{ID: id, IsDeprecated: true}, nil
}

// ---------------------------------------------------------------------------
// reportService / idService
// ---------------------------------------------------------------------------

type fakeReports struct {
	generated report.GenerateInput
	listed    report.ListInput
	items     []domain.ReportItem
	err       error
}

func (f *fakeReports) GenerateReport(_ context.Context, in report.GenerateInput) (*domain.Report, error) {
	f.generated = in
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Report{ID: 9, Type: domain.ReportType(in.Type), Name: domain.ReportType(in.Type).Name(), Parameters: in.Parameters}, nil
}

func (f *fakeReports) GetReport(_ context.Context, id int64) (*domain.Report, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Report{ID: id, Type: domain.ReportNoProducers}, nil
}

func (f *fakeReports) ListReports(_ context.Context, in report.ListInput) ([]domain.Report, error) {
	f.listed = in
	return []domain.Report{}, f.err
}

func (f *fakeReports) ListReportItems(_ context.Context, _ int64) ([]domain.ReportItem, error) {
	return f.items, f.err
}

type fakeIDs struct {
	fn func(ctx context.Context, in idalloc.Input) (*idalloc.Result, error)
}

func (f *fakeIDs) NextAvailableID(ctx context.Context, in idalloc.Input) (*idalloc.Result, error) {
	return f.fn(ctx, in)
}

// ---------------------------------------------------------------------------
// userService
// ---------------------------------------------------------------------------

type fakeUsers struct {
	users   map[int64]*domain.User
	listed  domain.Page
	updated user.UpdateInput
	create  func(ctx context.Context, in user.CreateInput) (*domain.User, error)
}

func (f *fakeUsers) Create(ctx context.Context, in user.CreateInput) (*domain.User, error) {
	return f.create(ctx, in)
}

func (f *fakeUsers) Get(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) List(_ context.Context, page domain.Page) ([]domain.User, error) {
	f.listed = page
	out := []domain.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsers) Update(ctx context.Context, id int64, in user.UpdateInput) (*domain.User, error) {
	f.updated = in
	return f.Get(ctx, id)
}

func (f *fakeUsers) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUsers) Activate(ctx context.Context, id int64) (*domain.User, error) {
	return f.setActive(id, true)
}

func (f *fakeUsers) Deactivate(ctx context.Context, id int64) (*domain.User, error) {
	return f.setActive(id, false)
}

func (f *fakeUsers) setActive(id int64, active bool) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u.IsActive = active
	return u, nil
}
