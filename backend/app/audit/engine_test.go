package audit

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"droidsweep/backend/app/cmdlog"
	"droidsweep/backend/app/gateway"
	"droidsweep/backend/app/models"
	"droidsweep/backend/app/repo"
	"droidsweep/backend/app/services"
	"droidsweep/bridge"
)

type fakeTransport struct {
	toggleFn func(pkg string, enable bool) error
	toggled  []string
}

func (f *fakeTransport) Shell(context.Context, string) (bridge.ShellResult, error) {
	return bridge.ShellResult{}, nil
}

func (f *fakeTransport) TogglePackage(_ context.Context, pkg string, enable bool) error {
	f.toggled = append(f.toggled, pkg)
	if f.toggleFn == nil {
		return nil
	}
	return f.toggleFn(pkg, enable)
}

func (f *fakeTransport) ListEnabledPackages(context.Context) ([]string, error) { return nil, nil }

const manifest = `{"audit_results":[
	{"package_id":"com.vendor.one","recommendation":"debloat"},
	{"package_id":"com.vendor.keep","recommendation":"keep"},
	{"package_id":"com.vendor.two","recommendation":"debloat"}
]}`

func newTestEngine(t *testing.T, ft *fakeTransport) (*Engine, *services.AuditService, *services.ActionService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.UserAction{}, &models.MobileAudit{}, &models.Device{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	audits := services.NewAuditService(repo.NewMobileAuditRepository(db))
	actions := services.NewActionService(repo.NewUserActionRepository(db), repo.NewDeviceRepository(db))
	toggles := services.NewToggleService(gateway.New(ft, cmdlog.NewStore(100)), actions)
	return NewEngine(audits, toggles, 0), audits, actions
}

func TestApplyReplaysDebloatRecommendations(t *testing.T) {
	ft := &fakeTransport{}
	eng, audits, actions := newTestEngine(t, ft)
	if err := audits.Ingest(&models.MobileAudit{ID: "aud-1", DeviceModel: "Pixel 8", ManifestData: manifest}); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	tally, err := eng.Apply(context.Background(), "aud-1", "dev-1")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tally.Succeeded != 2 || tally.Failed != 0 {
		t.Fatalf("tally = %d/%d, want 2/0", tally.Succeeded, tally.Failed)
	}
	if len(ft.toggled) != 2 || ft.toggled[0] != "com.vendor.one" || ft.toggled[1] != "com.vendor.two" {
		t.Fatalf("toggled %v, want debloat entries in manifest order", ft.toggled)
	}

	// recorder entries identical to manual toggles
	history, err := actions.ForDevice("dev-1")
	if err != nil {
		t.Fatalf("ForDevice: %v", err)
	}
	if len(history) != 2 || history[0].Action != models.ActionDisable {
		t.Fatalf("history = %+v, want two disable rows", history)
	}

	rec, err := audits.Find("aud-1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !rec.Executed {
		t.Fatal("audit not marked executed after batch")
	}
}

func TestApplyMarksExecutedDespiteFailures(t *testing.T) {
	ft := &fakeTransport{toggleFn: func(pkg string, enable bool) error {
		if pkg == "com.vendor.two" {
			return errors.New("pm failed")
		}
		return nil
	}}
	eng, audits, _ := newTestEngine(t, ft)
	if err := audits.Ingest(&models.MobileAudit{ID: "aud-2", ManifestData: manifest}); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	tally, err := eng.Apply(context.Background(), "aud-2", "dev-1")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if tally.Succeeded != 1 || tally.Failed != 1 {
		t.Fatalf("tally = %d/%d, want 1/1", tally.Succeeded, tally.Failed)
	}
	rec, _ := audits.Find("aud-2")
	if rec == nil || !rec.Executed {
		t.Fatal("audit with partial failures must still be marked executed")
	}
}

func TestApplyRefusesExecutedAudit(t *testing.T) {
	ft := &fakeTransport{}
	eng, audits, _ := newTestEngine(t, ft)
	if err := audits.Ingest(&models.MobileAudit{ID: "aud-3", ManifestData: manifest}); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if _, err := eng.Apply(context.Background(), "aud-3", "dev-1"); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	issued := len(ft.toggled)
	if _, err := eng.Apply(context.Background(), "aud-3", "dev-1"); err == nil {
		t.Fatal("second Apply succeeded, want refusal")
	}
	if len(ft.toggled) != issued {
		t.Fatalf("second Apply issued commands: %v", ft.toggled[issued:])
	}
}

func TestApplyUnknownAudit(t *testing.T) {
	eng, _, _ := newTestEngine(t, &fakeTransport{})
	if _, err := eng.Apply(context.Background(), "nope", "dev-1"); err == nil {
		t.Fatal("Apply(nope) succeeded, want error")
	}
}
